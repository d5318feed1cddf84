package evergreen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// syntheticTap represents a single injected activation. Screen coordinates
// are kept for logging and scripted tests; activation is position independent.
type syntheticTap struct {
	screenX, screenY float64
}

// InjectTap queues a synthetic tap at the given screen coordinates. The tap is
// consumed on the next frame's processInput call.
func (g *Game) InjectTap(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticTap{screenX: x, screenY: y})
}

// processInput reports whether the user activated the scene this tick. At
// most one activation is produced per tick, however many pointers went down.
// Injected taps take priority over real input.
func (g *Game) processInput() bool {
	if len(g.injectQueue) > 0 {
		copy(g.injectQueue, g.injectQueue[1:])
		g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
		return true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	return len(g.touchBuf) > 0
}
