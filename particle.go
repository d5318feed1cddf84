package evergreen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a point on the tree in cylindrical coordinates around the
// vertical trunk axis. Particles are immutable once built; a density toggle
// replaces the whole Tree rather than editing particles in place.
type Particle struct {
	R     float64 // distance from the trunk axis
	Y     float64 // height above the ground line
	Theta float64 // angular position in radians
	Size  float64 // radius before perspective scaling
	Color Color
	Kind  Kind
}

// View holds the screen-space anchors used to project particles.
type View struct {
	CenterX        float64 // screen x of the trunk axis
	GroundY        float64 // screen y of the ground line
	CameraDistance float64 // virtual camera distance K
	MinScale       float64 // floor for the perspective scale
}

// Projected is a particle's screen-space position for a single frame. It is
// never stored on the particle because rotation changes every tick.
type Projected struct {
	X, Y   float64
	Radius float64
	Depth  float64 // signed z; positive is toward the viewer
	Scale  float64
}

// Project maps p onto the screen for the rotation angle rot.
func (p Particle) Project(v View, rot float64) Projected {
	// Rotating (r, y, 0) about the vertical axis by -(theta+rot) yields
	// (r·cos a, y, r·sin a).
	w := mgl64.Rotate3DY(-(p.Theta + rot)).Mul3x1(mgl64.Vec3{p.R, p.Y, 0})
	x3, z3 := w.X(), w.Z()

	scale := perspective(v.CameraDistance, z3, v.MinScale)
	return Projected{
		X:      v.CenterX + x3*scale,
		Y:      v.GroundY - p.Y*scale,
		Radius: p.Size * scale,
		Depth:  z3,
		Scale:  scale,
	}
}

// perspective returns k/(k+z) floored at minScale. Particles farther than
// the camera plane would otherwise divide by zero or flip sign.
func perspective(k, z, minScale float64) float64 {
	if minScale <= 0 {
		minScale = defaultMinScale
	}
	d := k + z
	if d <= 0 {
		return minScale
	}
	s := k / d
	if s < minScale || math.IsNaN(s) {
		return minScale
	}
	return s
}
