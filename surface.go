package evergreen

// Surface is a 2D drawing target measured in logical pixels. The scene issues
// all of its output through it; backends handle device scaling.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a filled disc of color c at opacity alpha.
	FillCircle(x, y, r float64, c Color, alpha float64)
	// FillPolygon fills a polygon that is star-shaped around its centroid.
	FillPolygon(points []Vec2, c Color, alpha float64)
	// Glow draws a soft radial halo fading out at radius.
	Glow(x, y, radius float64, c Color, alpha float64)
	// DrawText draws s horizontally centered on x with its baseline near y.
	DrawText(s string, x, y float64, style TextStyle)
}

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Size       float64
	Color      Color
	Alpha      float64
	GlowColor  Color
	GlowRadius float64 // zero disables the glow
}
