package evergreen

import "math"

// OverlayConfig controls the decorations drawn on top of the tree.
type OverlayConfig struct {
	StarOffset float64 // gap between the crown tip and the star center
	StarOuter  float64
	StarInner  float64
	StarPoints int
	StarColor  Color
	StarGlow   float64 // halo radius; zero disables it

	Greeting       string
	GreetingY      float64 // baseline as a fraction of viewport height
	GreetingSize   float64
	GreetingColor  Color
	GreetingGlow   Color
	GreetingBlur   float64
	GreetingFadeIn float32 // seconds; zero shows the text immediately
}

// DefaultOverlayConfig returns a gold five-pointed star and a glowing
// "Merry Christmas!" greeting.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		StarOffset: 26,
		StarOuter:  12,
		StarInner:  5,
		StarPoints: 5,
		StarColor:  RGB(0xff, 0xe0, 0x66),
		StarGlow:   18,

		Greeting:       "Merry Christmas!",
		GreetingY:      0.16,
		GreetingSize:   28,
		GreetingColor:  ColorWhite,
		GreetingGlow:   RGB(0xff, 0xcc, 0x66),
		GreetingBlur:   14,
		GreetingFadeIn: 1.2,
	}
}

// StarPoints returns the vertices of a star centered at (cx, cy) with its
// first point straight up. Vertices alternate between the outer and inner
// radius, 2·points in total.
func StarPoints(cx, cy, outer, inner float64, points int) []Vec2 {
	if points < 2 {
		return nil
	}
	return appendStar(make([]Vec2, 0, points*2), cx, cy, outer, inner, points)
}

// overlay draws the star and greeting. It never takes part in depth sorting.
type overlay struct {
	cfg  *OverlayConfig
	fade *fade
	buf  []Vec2
}

func newOverlay(cfg *OverlayConfig) *overlay {
	return &overlay{cfg: cfg, fade: newFade(cfg.GreetingFadeIn)}
}

func (o *overlay) update(dt float32) {
	o.fade.update(dt)
}

func (o *overlay) draw(dst Surface, g Geometry, crown float64) {
	c := o.cfg
	cx := g.CenterX
	cy := g.GroundY - g.TreeHeight*crown - c.StarOffset

	if c.StarGlow > 0 {
		dst.Glow(cx, cy, c.StarGlow+c.StarOuter, c.StarColor, 0.8)
	}
	o.buf = appendStar(o.buf[:0], cx, cy, c.StarOuter, c.StarInner, c.StarPoints)
	if len(o.buf) > 0 {
		dst.FillPolygon(o.buf, c.StarColor, 1)
	}

	if c.Greeting != "" {
		dst.DrawText(c.Greeting, g.CenterX, g.Height*c.GreetingY, TextStyle{
			Size:       c.GreetingSize,
			Color:      c.GreetingColor,
			Alpha:      o.fade.value(),
			GlowColor:  c.GreetingGlow,
			GlowRadius: c.GreetingBlur,
		})
	}
}

// appendStar is StarPoints into a reusable buffer.
func appendStar(dst []Vec2, cx, cy, outer, inner float64, points int) []Vec2 {
	if points < 2 {
		return dst
	}
	step := math.Pi / float64(points)
	for k := 0; k < points*2; k++ {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		sin, cos := math.Sincos(float64(k) * step)
		dst = append(dst, Vec2{cx + r*sin, cy - r*cos})
	}
	return dst
}
