package evergreen

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ticksPerSecond is the host tick rate the fixed per-tick steps are tuned for.
const ticksPerSecond = 60

// EventType identifies a scene lifecycle event.
type EventType uint8

const (
	EventActivate EventType = iota // the user toggled light density
	EventRebuild                   // a new tree replaced the old one
	EventResize                    // the viewport changed size
)

// SceneEvent carries lifecycle data to an EventSink.
type SceneEvent struct {
	Type          EventType
	Dense         bool
	Width, Height float64
	Foliage       int
	Lights        int
	Trunk         int
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// Scene owns everything the animation mutates: the current tree, the density
// flag, the rotation angle, and the snowfall.
type Scene struct {
	cfg     Config
	logger  *zap.Logger
	sink    EventSink
	debug   bool
	builder *Builder

	geom     Geometry
	tree     atomic.Pointer[Tree]
	dense    bool
	rotation float64

	snow     *Snow
	overlay  *overlay
	renderer *renderer
}

// NewScene validates cfg and builds a sparse tree for a w×h logical viewport.
func NewScene(w, h float64, cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := &Scene{
		cfg:      cfg,
		logger:   zap.NewNop(),
		renderer: newRenderer(),
	}
	s.builder = NewBuilder(&s.cfg, rng)
	s.snow = NewSnow(s.cfg.Snow, rng)
	s.overlay = newOverlay(&s.cfg.Overlay)
	s.geom = s.cfg.Geometry(w, h)
	s.tree.Store(s.builder.Build(s.geom, s.dense))
	return s, nil
}

// SetLogger replaces the scene's logger. A nil logger disables logging.
func (s *Scene) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

// SetDebugMode enables or disables per-frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetEventSink sets the optional lifecycle event sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Config returns a copy of the scene's configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Geometry returns the current tree layout.
func (s *Scene) Geometry() Geometry {
	return s.geom
}

// Tree returns the current particle collections. The returned Tree MUST NOT
// be mutated.
func (s *Scene) Tree() *Tree {
	return s.tree.Load()
}

// Dense reports whether the dense light tier is active.
func (s *Scene) Dense() bool {
	return s.dense
}

// Rotation returns the accumulated rotation angle in radians.
func (s *Scene) Rotation() float64 {
	return s.rotation
}

// Snow returns the scene's snowfall.
func (s *Scene) Snow() *Snow {
	return s.snow
}

// Update advances the animation by one tick. Steps are fixed per tick rather
// than scaled by elapsed time.
func (s *Scene) Update() {
	s.rotation += s.cfg.RotationStep
	s.snow.Update(s.geom.Width, s.geom.Height)
	s.overlay.update(1.0 / ticksPerSecond)
}

// Draw renders the current frame: the depth-sorted tree, then the star and
// greeting, then the snow on top.
func (s *Scene) Draw(dst Surface) {
	var stats *frameStats
	if s.debug {
		stats = &frameStats{}
	}

	dst.Clear()
	s.renderer.drawTree(dst, s.tree.Load(), s.cfg.View(s.geom), s.rotation, stats)
	s.overlay.draw(dst, s.geom, s.cfg.CrownScale)
	s.snow.Draw(dst)

	if stats != nil {
		stats.snowCount = s.snow.AliveCount()
		s.debugLog(stats)
	}
}

// Tick runs Update then Draw, for hosts that drive the scene from a single
// per-frame callback.
func (s *Scene) Tick(dst Surface) {
	s.Update()
	s.Draw(dst)
}

// Activate toggles the light density and rebuilds the tree. Every call is
// independent; rapid repeated calls are not debounced.
func (s *Scene) Activate() {
	s.dense = !s.dense
	s.logger.Debug("activate", zap.Bool("dense", s.dense))
	s.emit(SceneEvent{Type: EventActivate, Dense: s.dense})
	s.Rebuild()
}

// Rebuild samples a new tree for the current geometry and density and swaps
// it in whole.
func (s *Scene) Rebuild() {
	t := s.builder.Build(s.geom, s.dense)
	s.tree.Store(t)
	s.logTree("rebuild", t)
	s.emit(SceneEvent{
		Type:    EventRebuild,
		Dense:   t.Dense,
		Width:   s.geom.Width,
		Height:  s.geom.Height,
		Foliage: len(t.Foliage),
		Lights:  len(t.Lights),
		Trunk:   len(t.Trunk),
	})
}

// Resize recomputes the tree geometry for a new logical viewport size. When
// RebuildOnResize is set the particles are regenerated to match.
func (s *Scene) Resize(w, h float64) {
	if w == s.geom.Width && h == s.geom.Height {
		return
	}
	s.geom = s.cfg.Geometry(w, h)
	s.logger.Debug("resize", zap.Float64("width", w), zap.Float64("height", h))
	s.emit(SceneEvent{Type: EventResize, Dense: s.dense, Width: w, Height: h})
	if s.cfg.RebuildOnResize {
		s.Rebuild()
	}
}

func (s *Scene) emit(e SceneEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}
