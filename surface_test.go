package evergreen

// call records one Surface operation.
type call struct {
	op    string
	x, y  float64
	r     float64
	color Color
	alpha float64
	text  string
	n     int
}

// recordingSurface is a Surface that remembers every draw call.
type recordingSurface struct {
	w, h  float64
	calls []call
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.calls = append(s.calls, call{op: "clear"})
}

func (s *recordingSurface) FillCircle(x, y, r float64, c Color, alpha float64) {
	s.calls = append(s.calls, call{op: "circle", x: x, y: y, r: r, color: c, alpha: alpha})
}

func (s *recordingSurface) FillPolygon(points []Vec2, c Color, alpha float64) {
	s.calls = append(s.calls, call{op: "polygon", color: c, alpha: alpha, n: len(points)})
}

func (s *recordingSurface) Glow(x, y, radius float64, c Color, alpha float64) {
	s.calls = append(s.calls, call{op: "glow", x: x, y: y, r: radius, color: c, alpha: alpha})
}

func (s *recordingSurface) DrawText(str string, x, y float64, style TextStyle) {
	s.calls = append(s.calls, call{op: "text", x: x, y: y, text: str, alpha: style.Alpha, color: style.Color})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}
