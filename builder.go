package evergreen

import (
	"math"
	"math/rand/v2"
)

// Tree is one generation of particles. A Tree is never mutated after Build
// returns; rebuilding produces a new Tree that replaces the old one whole.
type Tree struct {
	Foliage []Particle
	Lights  []Particle
	Trunk   []Particle
	Dense   bool
}

// Len returns the total number of particles across all three collections.
func (t *Tree) Len() int {
	return len(t.Foliage) + len(t.Lights) + len(t.Trunk)
}

// AppendAll appends trunk, foliage, and light particles to dst, in that order.
func (t *Tree) AppendAll(dst []Particle) []Particle {
	dst = append(dst, t.Trunk...)
	dst = append(dst, t.Foliage...)
	return append(dst, t.Lights...)
}

// Builder samples particle collections from a Config.
type Builder struct {
	cfg *Config
	rng *rand.Rand
}

// NewBuilder creates a Builder drawing from rng. The config is read on every
// Build, so later edits to it take effect on the next rebuild.
func NewBuilder(cfg *Config, rng *rand.Rand) *Builder {
	return &Builder{cfg: cfg, rng: rng}
}

// Build samples a fresh Tree for geometry g at the given light density.
func (b *Builder) Build(g Geometry, dense bool) *Tree {
	return &Tree{
		Foliage: b.foliage(g),
		Lights:  b.lights(g, dense),
		Trunk:   b.trunk(g),
		Dense:   dense,
	}
}

// LayerSize returns how many foliage particles layer i receives. Higher
// layers are sparser; every layer keeps at least one particle.
func (c *Config) LayerSize(i int) int {
	return max(1, c.FoliageBase-i*c.FoliageStep)
}

// foliage stacks LayerCount jittered disks whose radius shrinks linearly from
// the full tree radius at the base to zero at the crown.
func (b *Builder) foliage(g Geometry) []Particle {
	c := b.cfg
	crown := g.TreeHeight * c.CrownScale
	band := crown / float64(c.LayerCount)

	total := 0
	for i := 0; i < c.LayerCount; i++ {
		total += c.LayerSize(i)
	}
	out := make([]Particle, 0, total)

	for i := 0; i < c.LayerCount; i++ {
		lt := float64(i) / float64(c.LayerCount-1)
		layerY := lt * crown
		layerR := (1 - lt) * g.TreeRadius
		for n := c.LayerSize(i); n > 0; n-- {
			out = append(out, Particle{
				R:     layerR * c.FoliageOuter.Random(b.rng),
				Y:     layerY + b.rng.Float64()*band,
				Theta: b.angle(),
				Size:  c.FoliageSize.Random(b.rng),
				Color: c.LeafColor,
				Kind:  KindLeaf,
			})
		}
	}
	return out
}

// lights scatters string lights over the crown, hugging a slightly narrower
// cone than the foliage so they sit on its surface.
func (b *Builder) lights(g Geometry, dense bool) []Particle {
	c := b.cfg
	n := c.LightsSparse
	if dense {
		n = c.LightsDense
	}
	out := make([]Particle, n)
	for i := range out {
		t := b.rng.Float64() * c.CrownScale
		out[i] = Particle{
			R:     (1 - t) * g.TreeRadius * c.LightRadiusScale,
			Y:     t * g.TreeHeight,
			Theta: b.angle(),
			Size:  c.LightSize,
			Color: c.LightPalette[b.rng.IntN(len(c.LightPalette))],
			Kind:  KindLight,
		}
	}
	return out
}

// trunk fills a cone from the base radius at the ground to a point at the
// trunk top.
func (b *Builder) trunk(g Geometry) []Particle {
	c := b.cfg
	height := g.TreeHeight * c.TrunkHeightScale
	base := g.TreeRadius * c.TrunkBaseScale
	out := make([]Particle, c.TrunkCount)
	for i := range out {
		t := b.rng.Float64()
		out[i] = Particle{
			R:     (1 - t) * base,
			Y:     t * height,
			Theta: b.angle(),
			Size:  c.TrunkSize.Random(b.rng),
			Color: c.BarkTones[b.rng.IntN(len(c.BarkTones))],
			Kind:  KindTrunk,
		}
	}
	return out
}

func (b *Builder) angle() float64 {
	return b.rng.Float64() * 2 * math.Pi
}
