package evergreen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an *ebiten.Image. Callers work in logical pixels;
// every coordinate is multiplied by the bound device scale.
type ImageSurface struct {
	// Background fills the image on Clear.
	Background Color

	dst   *ebiten.Image
	scale float64
	font  *Font
	glows map[int]*ebiten.Image
	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageSurface creates a surface that renders text with font. A nil font
// disables text.
func NewImageSurface(font *Font) *ImageSurface {
	return &ImageSurface{
		Background: Color{R: 0.02, G: 0.03, B: 0.08, A: 1},
		scale:      1,
		font:       font,
		glows:      make(map[int]*ebiten.Image),
	}
}

// Bind points the surface at dst for the current frame. scale is the ratio of
// physical to logical pixels.
func (s *ImageSurface) Bind(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.scale = scale
}

// Size returns the logical size of the bound image.
func (s *ImageSurface) Size() (w, h float64) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// Clear fills the bound image with Background.
func (s *ImageSurface) Clear() {
	s.dst.Fill(s.Background.nrgba(1))
}

// FillCircle draws an anti-aliased disc.
func (s *ImageSurface) FillCircle(x, y, r float64, c Color, alpha float64) {
	if r <= 0 {
		return
	}
	k := s.scale
	vector.DrawFilledCircle(s.dst, float32(x*k), float32(y*k), float32(r*k), c.nrgba(alpha), true)
}

// FillPolygon fan-triangulates points around their centroid.
func (s *ImageSurface) FillPolygon(points []Vec2, c Color, alpha float64) {
	n := len(points)
	if n < 3 {
		return
	}
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(n)
	cy /= float64(n)

	k := s.scale
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A*alpha)
	vertex := func(x, y float64) ebiten.Vertex {
		// Untextured: map to center of white pixel (0.5, 0.5), premultiplied color.
		return ebiten.Vertex{
			DstX: float32(x * k), DstY: float32(y * k),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r * a, ColorG: g * a, ColorB: b * a, ColorA: a,
		}
	}

	s.verts = append(s.verts[:0], vertex(cx, cy))
	for _, p := range points {
		s.verts = append(s.verts, vertex(p.X, p.Y))
	}
	// Fan triangulation: vertex 0 is the hub, closing back to the first rim vertex.
	s.inds = s.inds[:0]
	for i := 1; i <= n; i++ {
		next := i%n + 1
		s.inds = append(s.inds, 0, uint16(i), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(s.verts, s.inds, whitePixel(), op)
}

// Glow draws a feathered halo tinted with c.
func (s *ImageSurface) Glow(x, y, radius float64, c Color, alpha float64) {
	if radius <= 0 {
		return
	}
	pr := int(math.Ceil(radius * s.scale))
	img := s.glowImage(pr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x*s.scale-float64(pr), y*s.scale-float64(pr))
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A * alpha))
	op.Blend = ebiten.BlendLighter
	s.dst.DrawImage(img, op)
}

func (s *ImageSurface) glowImage(radius int) *ebiten.Image {
	if img, ok := s.glows[radius]; ok {
		return img
	}
	img := generateCircle(float64(radius))
	s.glows[radius] = img
	return img
}

// glowOffsets are the unit directions of the shadow passes behind text.
var glowOffsets = [8][2]float64{
	{1, 0}, {0.7071, 0.7071}, {0, 1}, {-0.7071, 0.7071},
	{-1, 0}, {-0.7071, -0.7071}, {0, -1}, {0.7071, -0.7071},
}

// DrawText draws s centered on x with its baseline at y. The glow is
// approximated by faint copies offset around the text.
func (s *ImageSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.font == nil || str == "" || style.Alpha <= 0 {
		return
	}
	k := s.scale
	face := s.font.Face(style.Size * k)
	top := y*k - face.Metrics().HAscent

	draw := func(dx, dy float64, c Color, alpha float64) {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(x*k+dx, top+dy)
		op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
		op.ColorScale.ScaleAlpha(float32(c.A * alpha))
		text.Draw(s.dst, str, face, op)
	}

	if style.GlowRadius > 0 {
		for _, ring := range [2]float64{0.2, 0.45} {
			d := style.GlowRadius * ring * k
			for _, o := range glowOffsets {
				draw(o[0]*d, o[1]*d, style.GlowColor, style.Alpha*0.12)
			}
		}
	}
	draw(0, 0, style.Color, style.Alpha)
}

var whiteImage *ebiten.Image

// whitePixel returns a shared 1x1 white image for untextured triangles.
func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(ColorWhite.nrgba(1))
	}
	return whiteImage
}

// generateCircle creates a feathered white circle image with the given radius.
// Uses smoothstep falloff and premultiplied alpha.
func generateCircle(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := uint8(falloff(float64(x)+0.5-radius, float64(y)+0.5-radius, radius) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}

// falloff is 1 at the center of a circle of the given radius, easing to 0 at
// its edge with a smoothstep curve.
func falloff(dx, dy, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	dist := math.Sqrt(dx*dx+dy*dy) / radius
	if dist >= 1 {
		return 0
	}
	t := 1 - dist
	return t * t * (3 - 2*t)
}
