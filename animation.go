package evergreen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade tweens an opacity from 0 to 1 once and then holds it. A zero duration
// starts fully opaque.
type fade struct {
	tween   *gween.Tween
	current float64
	done    bool
}

func newFade(duration float32) *fade {
	if duration <= 0 {
		return &fade{current: 1, done: true}
	}
	return &fade{tween: gween.New(0, 1, duration, ease.OutQuad)}
}

// update advances the fade by dt seconds.
func (f *fade) update(dt float32) {
	if f.done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.current = float64(val)
	if finished {
		f.current = 1
		f.done = true
	}
}

func (f *fade) value() float64 {
	return f.current
}
