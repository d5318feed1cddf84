package evergreen

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default snow and text color.
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// nrgba converts c to straight-alpha 8-bit color with its alpha multiplied by a.
func (c Color) nrgba(a float64) color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A * a),
	}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for screen positions and polygon vertices.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range for randomized attributes.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Kind tags a Particle with the role it plays in the tree. It selects both the
// generation rule in the builder and the opacity rule in the renderer.
type Kind uint8

const (
	KindLeaf  Kind = iota // foliage needle
	KindLight             // string light
	KindTrunk             // bark
)

// Opacity per kind. Trunk particles are shaded by which half of the trunk
// they sit on so the bark reads as a solid cylinder.
const (
	leafAlpha       = 0.6
	lightAlpha      = 0.85
	trunkFrontAlpha = 0.9
	trunkBackAlpha  = 0.65
)

// Alpha returns the opacity used to draw a particle of this kind at the given
// projected depth.
func (k Kind) Alpha(depth float64) float64 {
	switch k {
	case KindLight:
		return lightAlpha
	case KindTrunk:
		if depth > 0 {
			return trunkFrontAlpha
		}
		return trunkBackAlpha
	default:
		return leafAlpha
	}
}

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindLight:
		return "light"
	case KindTrunk:
		return "trunk"
	default:
		return "unknown"
	}
}
