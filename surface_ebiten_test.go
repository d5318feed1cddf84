package evergreen

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFalloff(t *testing.T) {
	if got := falloff(0, 0, 10); got != 1 {
		t.Errorf("center = %v, want 1", got)
	}
	if got := falloff(10, 0, 10); got != 0 {
		t.Errorf("edge = %v, want 0", got)
	}
	if got := falloff(1, 1, 0); got != 0 {
		t.Errorf("zero radius = %v, want 0", got)
	}
	prev := 1.0
	for d := 1.0; d < 10; d++ {
		v := falloff(d, 0, 10)
		if v >= prev {
			t.Fatalf("falloff(%v) = %v, not decreasing", d, v)
		}
		prev = v
	}
	if math.Abs(falloff(5, 0, 10)-0.5) > eps {
		t.Errorf("midpoint = %v, want 0.5", falloff(5, 0, 10))
	}
}

func TestImageSurfaceSize(t *testing.T) {
	s := NewImageSurface(nil)
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("unbound Size = %vx%v, want 0x0", w, h)
	}
	s.Bind(ebiten.NewImage(400, 300), 2)
	if w, h := s.Size(); w != 200 || h != 150 {
		t.Errorf("Size = %vx%v, want 200x150", w, h)
	}
	s.Bind(ebiten.NewImage(400, 300), 0)
	if w, h := s.Size(); w != 400 || h != 300 {
		t.Errorf("Size with zero scale = %vx%v, want 400x300", w, h)
	}
}

func TestImageSurfaceGlowCache(t *testing.T) {
	s := NewImageSurface(nil)
	a := s.glowImage(12)
	b := s.glowImage(12)
	if a != b {
		t.Error("glow image for the same radius was regenerated")
	}
	if s.glowImage(13) == a {
		t.Error("different radii share a glow image")
	}
	if got := a.Bounds().Dx(); got != 24 {
		t.Errorf("glow image width = %d, want 24", got)
	}
}

func TestImageSurfaceFillPolygonFan(t *testing.T) {
	s := NewImageSurface(nil)
	s.Bind(ebiten.NewImage(64, 64), 1)
	s.FillPolygon(StarPoints(32, 32, 12, 5, 5), ColorWhite, 1)

	if len(s.verts) != 11 {
		t.Errorf("verts = %d, want hub plus 10 rim vertices", len(s.verts))
	}
	if len(s.inds) != 30 {
		t.Fatalf("indices = %d, want 30", len(s.inds))
	}
	// Last triangle closes back to the first rim vertex.
	if s.inds[27] != 0 || s.inds[28] != 10 || s.inds[29] != 1 {
		t.Errorf("closing triangle = %v", s.inds[27:30])
	}
}
