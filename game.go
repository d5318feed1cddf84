package evergreen

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Font renders the greeting. Nil loads the bundled Go Regular font.
	Font *Font
	// Logger receives window lifecycle logs. Nil disables logging.
	Logger *zap.Logger
	// TestScript, when set, is loaded with LoadTestScript and attached to
	// the game.
	TestScript []byte
}

// Game adapts a Scene to ebiten.Game: it polls activation input, advances
// the scene every tick, and tracks window size and device scale.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	scene   *Scene
	surface *ImageSurface
	logger  *zap.Logger
	showFPS bool
	fps     fpsWidget

	deviceScale   float64
	logicalW      int
	logicalH      int
	deviceScaleFn func() float64

	injectQueue     []syntheticTap
	touchBuf        []ebiten.TouchID
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewGame wraps scene for use with ebiten.RunGame.
func NewGame(scene *Scene, cfg RunConfig) (*Game, error) {
	font := cfg.Font
	if font == nil {
		var err error
		font, err = DefaultFont()
		if err != nil {
			return nil, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		ScreenshotDir: "screenshots",
		scene:         scene,
		surface:       NewImageSurface(font),
		logger:        logger,
		showFPS:       cfg.ShowFPS,
		deviceScale:   1,
		deviceScaleFn: func() float64 { return ebiten.Monitor().DeviceScaleFactor() },
	}
	if len(cfg.TestScript) > 0 {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return nil, fmt.Errorf("evergreen: %w", err)
		}
		g.SetTestRunner(runner)
	}
	return g, nil
}

// Scene returns the scene driven by g.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Update advances one tick: scripted steps, input, then the scene.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if g.processInput() {
		g.scene.Activate()
	}
	g.scene.Update()
	if g.showFPS {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw renders the scene onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen, g.deviceScale)
	g.scene.Draw(g.surface)
	if g.showFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout reports a back buffer of the logical window size times the device
// scale, capped at the scene's MaxDeviceScale. The scene sees logical sizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := clampDeviceScale(g.deviceScaleFn(), g.scene.cfg.MaxDeviceScale)
	if outsideWidth != g.logicalW || outsideHeight != g.logicalH || scale != g.deviceScale {
		g.logicalW, g.logicalH = outsideWidth, outsideHeight
		g.deviceScale = scale
		g.logger.Debug("layout",
			zap.Int("width", outsideWidth),
			zap.Int("height", outsideHeight),
			zap.Float64("scale", scale),
		)
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}

// Run creates a resizable window and runs scene until it is closed.
func Run(scene *Scene, cfg RunConfig) error {
	g, err := NewGame(scene, cfg)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("evergreen: %w", err)
	}
	return nil
}
