package evergreen

import (
	"errors"
	"math"
	"math/rand/v2"
)

// Snowflake is a falling particle in screen space.
type Snowflake struct {
	X, Y   float64
	Radius float64
	VY     float64 // pixels per tick, always positive
	Phase  float64 // drives the horizontal sway
}

// SnowConfig controls how snowflakes are spawned and move.
type SnowConfig struct {
	// Max is the pool size. No flake spawns on a tick where the pool is full.
	Max int
	// SpawnChance is the probability of spawning one flake per tick.
	SpawnChance float64
	// SpawnY is the starting y, just above the top edge.
	SpawnY float64
	// Radius is the range of flake radii.
	Radius Range
	// Speed is the range of fall speeds in pixels per tick.
	Speed Range
	// PhaseStep is added to each flake's phase every tick.
	PhaseStep float64
	// Sway scales the per-tick horizontal drift sin(phase)·Sway.
	Sway float64
	// ExitMargin is how far below the bottom edge a flake falls before it
	// is removed.
	ExitMargin float64
	// Alpha is the constant opacity used to draw flakes.
	Alpha float64
	Color Color
}

// DefaultSnowConfig returns light snowfall capped at 100 flakes.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		Max:         100,
		SpawnChance: 0.6,
		SpawnY:      -10,
		Radius:      Range{0.6, 2.4},
		Speed:       Range{0.4, 0.9},
		PhaseStep:   0.01,
		Sway:        0.15,
		ExitMargin:  10,
		Alpha:       0.45,
		Color:       ColorWhite,
	}
}

func (c SnowConfig) validate() error {
	if c.Max < 0 {
		return errors.New("snow cap must not be negative")
	}
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return errors.New("snow speed range must be positive")
	}
	return nil
}

// Snow manages a fixed pool of snowflakes.
type Snow struct {
	config SnowConfig
	flakes []Snowflake
	alive  int
	rng    *rand.Rand
}

// NewSnow creates a Snow with a preallocated pool of cfg.Max flakes.
func NewSnow(cfg SnowConfig, rng *rand.Rand) *Snow {
	return &Snow{
		config: cfg,
		flakes: make([]Snowflake, max(cfg.Max, 0)),
		rng:    rng,
	}
}

// AliveCount returns the number of falling flakes.
func (s *Snow) AliveCount() int {
	return s.alive
}

// Flakes returns the falling flakes. The returned slice MUST NOT be retained
// across Update calls.
func (s *Snow) Flakes() []Snowflake {
	return s.flakes[:s.alive]
}

// Reset removes every flake.
func (s *Snow) Reset() {
	s.alive = 0
}

// Update advances snowfall by one tick over a w×h viewport: maybe spawn a
// flake, move every flake, then drop the ones that fell past the bottom.
func (s *Snow) Update(w, h float64) {
	if s.alive < len(s.flakes) && s.rng.Float64() < s.config.SpawnChance {
		s.spawn(w)
	}

	for i := 0; i < s.alive; i++ {
		f := &s.flakes[i]
		f.Phase += s.config.PhaseStep
		f.X += math.Sin(f.Phase) * s.config.Sway
		f.Y += f.VY
	}

	limit := h + s.config.ExitMargin
	i := 0
	for i < s.alive {
		if s.flakes[i].Y >= limit {
			// Swap with last alive flake.
			s.alive--
			s.flakes[i] = s.flakes[s.alive]
			continue
		}
		i++
	}
}

// spawn initializes the flake at slot s.alive and increments alive.
func (s *Snow) spawn(w float64) {
	s.flakes[s.alive] = Snowflake{
		X:      s.rng.Float64() * w,
		Y:      s.config.SpawnY,
		Radius: s.config.Radius.Random(s.rng),
		VY:     s.config.Speed.Random(s.rng),
		Phase:  s.rng.Float64() * 2 * math.Pi,
	}
	s.alive++
}

// Draw renders every flake as a translucent disc.
func (s *Snow) Draw(dst Surface) {
	for _, f := range s.flakes[:s.alive] {
		dst.FillCircle(f.X, f.Y, f.Radius, s.config.Color, s.config.Alpha)
	}
}
