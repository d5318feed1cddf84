package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

func newTestSurface(t *testing.T, cols, rows int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewSurface(screen), screen
}

func TestSurfaceSize(t *testing.T) {
	s, screen := newTestSurface(t, 80, 24)
	if w, h := s.Size(); w != 80 || h != 48 {
		t.Errorf("Size = %vx%v, want 80x48", w, h)
	}

	screen.SetSize(100, 30)
	s.Sync()
	if w, h := s.Size(); w != 100 || h != 60 {
		t.Errorf("Size after Sync = %vx%v, want 100x60", w, h)
	}
	if len(s.pix) != 100*60 {
		t.Errorf("framebuffer len = %d", len(s.pix))
	}
}

func TestSurfaceClear(t *testing.T) {
	s, _ := newTestSurface(t, 10, 5)
	s.Background = evergreen.RGB(0, 0, 255)
	s.Clear()
	for i, p := range s.pix {
		if p != (rgb{0, 0, 1}) {
			t.Fatalf("pix[%d] = %+v", i, p)
		}
	}
}

func TestFillCircle(t *testing.T) {
	s, _ := newTestSurface(t, 20, 10)
	s.Background = evergreen.Color{A: 1}
	s.Clear()
	s.FillCircle(10, 10, 3, evergreen.RGB(255, 0, 0), 1)

	if p := s.pix[10*s.w+10]; p.r != 1 {
		t.Errorf("center pixel = %+v, want red", p)
	}
	if p := s.pix[10*s.w+15]; p.r != 0 {
		t.Errorf("pixel outside radius = %+v, want untouched", p)
	}
}

func TestFillCircleSubPixel(t *testing.T) {
	s, _ := newTestSurface(t, 20, 10)
	s.Background = evergreen.Color{A: 1}
	s.Clear()
	s.FillCircle(4.7, 6.2, 0.2, evergreen.ColorWhite, 0.5)

	p := s.pix[6*s.w+4]
	if p.r != 0.5 || p.g != 0.5 || p.b != 0.5 {
		t.Errorf("pixel = %+v, want half white", p)
	}
	n := 0
	for _, p := range s.pix {
		if p.r > 0 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("touched %d pixels, want 1", n)
	}
}

func TestFillCircleClipped(t *testing.T) {
	s, _ := newTestSurface(t, 10, 5)
	s.Clear()
	// Partly and wholly off-screen discs must not panic.
	s.FillCircle(-2, -2, 4, evergreen.ColorWhite, 1)
	s.FillCircle(500, 500, 4, evergreen.ColorWhite, 1)
	s.FillCircle(5, 5, 0, evergreen.ColorWhite, 1)
}

func TestFillPolygon(t *testing.T) {
	s, _ := newTestSurface(t, 40, 20)
	s.Background = evergreen.Color{A: 1}
	s.Clear()
	star := evergreen.StarPoints(20, 20, 10, 4, 5)
	s.FillPolygon(star, evergreen.RGB(255, 255, 0), 1)

	if p := s.pix[20*s.w+20]; p.r != 1 || p.g != 1 {
		t.Errorf("star center = %+v, want yellow", p)
	}
	if p := s.pix[2*s.w+2]; p.r != 0 {
		t.Errorf("corner = %+v, want untouched", p)
	}
}

func TestInside(t *testing.T) {
	square := []evergreen.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0.5, 9.5, true},
		{-1, 5, false},
		{11, 5, false},
		{5, 12, false},
	}
	for _, tt := range tests {
		if got := inside(square, tt.x, tt.y); got != tt.want {
			t.Errorf("inside(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGlowFalloff(t *testing.T) {
	s, _ := newTestSurface(t, 40, 20)
	s.Background = evergreen.Color{A: 1}
	s.Clear()
	s.Glow(20, 20, 8, evergreen.ColorWhite, 1)

	center := s.pix[20*s.w+20].r
	edge := s.pix[20*s.w+26].r
	if center <= edge || edge <= 0 {
		t.Errorf("center %v, edge %v: want bright center fading out", center, edge)
	}
	if s.pix[20*s.w+30].r != 0 {
		t.Error("glow reached beyond its radius")
	}
}

func TestShowHalfBlocks(t *testing.T) {
	s, screen := newTestSurface(t, 4, 2)
	s.Background = evergreen.Color{A: 1}
	s.Clear()
	// Top pixel of cell (1, 0) red, bottom pixel green.
	s.blend(1, 0, evergreen.RGB(255, 0, 0), 1)
	s.blend(1, 1, evergreen.RGB(0, 255, 0), 1)
	s.Show()

	r, _, style, _ := screen.GetContent(1, 0)
	if r != upperHalf {
		t.Fatalf("rune = %q, want %q", r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("fg %v bg %v, want red over green", fg, bg)
	}
}

func TestShowText(t *testing.T) {
	s, screen := newTestSurface(t, 20, 4)
	s.Clear()
	s.DrawText("Hi!", 10, 5, evergreen.TextStyle{Color: evergreen.ColorWhite, Alpha: 1})
	s.Show()

	// Centered on column 10, in the row containing pixel y=5.
	for i, want := range "Hi!" {
		r, _, _, _ := screen.GetContent(9+i, 2)
		if r != want {
			t.Errorf("col %d = %q, want %q", 9+i, r, want)
		}
	}
}

func TestDrawTextHidden(t *testing.T) {
	s, _ := newTestSurface(t, 20, 4)
	s.Clear()
	s.DrawText("fading", 10, 2, evergreen.TextStyle{Alpha: 0})
	s.DrawText("", 10, 2, evergreen.TextStyle{Alpha: 1})
	if len(s.text) != 0 {
		t.Errorf("queued %d runs, want 0", len(s.text))
	}
}

func TestSceneDrawsToTerminal(t *testing.T) {
	s, _ := newTestSurface(t, 80, 40)
	cfg := evergreen.DefaultConfig()
	cfg.Seed = 5
	cfg.Overlay.GreetingFadeIn = 0
	w, h := s.Size()
	scene, err := evergreen.NewScene(w, h, cfg)
	if err != nil {
		t.Fatal(err)
	}
	scene.Tick(s)
	s.Show()

	bg := rgb{s.Background.R, s.Background.G, s.Background.B}
	painted := 0
	for _, p := range s.pix {
		if p != bg {
			painted++
		}
	}
	if painted == 0 {
		t.Error("scene painted nothing")
	}
	if len(s.text) != 1 {
		t.Errorf("text runs = %d, want the greeting", len(s.text))
	}
}
