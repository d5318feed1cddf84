// Package term draws an evergreen scene into a terminal through tcell.
//
// Each terminal cell holds two vertically stacked pixels rendered with the
// upper half block glyph, so a W×H terminal is a W×2H logical surface.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/evergreen"
)

const upperHalf = '▀'

type rgb struct {
	r, g, b float64
}

// Surface is an evergreen.Surface backed by a tcell.Screen.
type Surface struct {
	// Background is the color the frame is cleared to.
	Background evergreen.Color

	screen tcell.Screen
	w, h   int // in pixels; h is twice the row count
	pix    []rgb
	text   []textRun
}

type textRun struct {
	x, row int
	s      string
	style  tcell.Style
}

var _ evergreen.Surface = (*Surface)(nil)

// NewSurface creates a surface sized to screen.
func NewSurface(screen tcell.Screen) *Surface {
	s := &Surface{
		Background: evergreen.Color{R: 0.02, G: 0.03, B: 0.08, A: 1},
		screen:     screen,
	}
	s.Sync()
	return s
}

// Sync resizes the framebuffer to the screen's current size. Call it after a
// tcell.EventResize.
func (s *Surface) Sync() {
	cols, rows := s.screen.Size()
	s.w, s.h = max(cols, 0), max(rows, 0)*2
	if cap(s.pix) < s.w*s.h {
		s.pix = make([]rgb, s.w*s.h)
	}
	s.pix = s.pix[:s.w*s.h]
}

// Size returns the logical size in half-cell pixels.
func (s *Surface) Size() (w, h float64) {
	return float64(s.w), float64(s.h)
}

// Clear resets every pixel to Background and drops queued text.
func (s *Surface) Clear() {
	bg := rgb{s.Background.R, s.Background.G, s.Background.B}
	for i := range s.pix {
		s.pix[i] = bg
	}
	s.text = s.text[:0]
}

// FillCircle blends every pixel whose center lies inside the disc. Discs
// smaller than a pixel still cover the pixel under their center.
func (s *Surface) FillCircle(x, y, r float64, c evergreen.Color, alpha float64) {
	if r <= 0 {
		return
	}
	a := c.A * alpha
	if r < 0.5 {
		s.blend(int(math.Floor(x)), int(math.Floor(y)), c, a)
		return
	}
	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	r2 := r * r
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				s.blend(px, py, c, a)
			}
		}
	}
}

// FillPolygon fills points with an even-odd test over their bounding box.
func (s *Surface) FillPolygon(points []evergreen.Vec2, c evergreen.Color, alpha float64) {
	if len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	a := c.A * alpha
	for py := int(math.Floor(minY)); py <= int(math.Ceil(maxY)); py++ {
		for px := int(math.Floor(minX)); px <= int(math.Ceil(maxX)); px++ {
			if inside(points, float64(px)+0.5, float64(py)+0.5) {
				s.blend(px, py, c, a)
			}
		}
	}
}

// inside reports whether (x, y) is inside the polygon by ray crossing.
func inside(points []evergreen.Vec2, x, y float64) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

// Glow blends a smoothstep halo.
func (s *Surface) Glow(x, y, radius float64, c evergreen.Color, alpha float64) {
	if radius <= 0 {
		return
	}
	for py := int(math.Floor(y - radius)); py <= int(math.Ceil(y+radius)); py++ {
		for px := int(math.Floor(x - radius)); px <= int(math.Ceil(x+radius)); px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			d := math.Sqrt(dx*dx+dy*dy) / radius
			if d >= 1 {
				continue
			}
			t := 1 - d
			s.blend(px, py, c, c.A*alpha*t*t*(3-2*t)*0.5)
		}
	}
}

// DrawText queues s centered on x in the cell row containing y. Text is
// written over the pixels when the frame is shown.
func (s *Surface) DrawText(str string, x, y float64, style evergreen.TextStyle) {
	if str == "" || style.Alpha <= 0 {
		return
	}
	runes := []rune(str)
	col := int(math.Round(x)) - len(runes)/2
	row := int(y) / 2
	fg := toTcell(rgb{style.Color.R, style.Color.G, style.Color.B})
	s.text = append(s.text, textRun{x: col, row: row, s: str, style: tcell.StyleDefault.Foreground(fg).Bold(true)})
}

func (s *Surface) blend(px, py int, c evergreen.Color, a float64) {
	if px < 0 || py < 0 || px >= s.w || py >= s.h || a <= 0 {
		return
	}
	a = math.Min(a, 1)
	p := &s.pix[py*s.w+px]
	p.r += (c.R - p.r) * a
	p.g += (c.G - p.g) * a
	p.b += (c.B - p.b) * a
}

// Show writes the framebuffer and queued text to the screen.
func (s *Surface) Show() {
	rows := s.h / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < s.w; col++ {
			top := s.pix[(row*2)*s.w+col]
			bottom := s.pix[(row*2+1)*s.w+col]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			s.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	for _, t := range s.text {
		col := t.x
		for _, r := range t.s {
			if col >= 0 && col < s.w && t.row >= 0 && t.row < rows {
				bg := s.pix[(t.row*2+1)*s.w+col]
				s.screen.SetContent(col, t.row, r, nil, t.style.Background(toTcell(bg)))
			}
			col++
		}
	}
	s.screen.Show()
}

func toTcell(c rgb) tcell.Color {
	return tcell.NewRGBColor(channel(c.r), channel(c.g), channel(c.b))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
