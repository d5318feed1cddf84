package evergreen

import "time"

const defaultCommandCap = 1024

// drawCommand is a single particle draw emitted during projection.
type drawCommand struct {
	proj  Projected
	color Color
	kind  Kind
	order int // position in the unsorted list, for a stable sort
}

// renderer projects, depth-sorts, and draws a Tree. Buffers are reused across
// frames so steady-state rendering does not allocate.
type renderer struct {
	particles []Particle
	commands  []drawCommand
	sortBuf   []drawCommand
}

func newRenderer() *renderer {
	return &renderer{
		particles: make([]Particle, 0, defaultCommandCap),
		commands:  make([]drawCommand, 0, defaultCommandCap),
		sortBuf:   make([]drawCommand, 0, defaultCommandCap),
	}
}

// drawTree draws t with painter's ordering: farthest (most negative depth)
// first so nearer particles overdraw them.
func (r *renderer) drawTree(dst Surface, t *Tree, v View, rot float64, stats *frameStats) {
	var t0 time.Time
	if stats != nil {
		t0 = time.Now()
	}

	r.particles = t.AppendAll(r.particles[:0])
	r.commands = r.commands[:0]
	for i := range r.particles {
		p := &r.particles[i]
		r.commands = append(r.commands, drawCommand{
			proj:  p.Project(v, rot),
			color: p.Color,
			kind:  p.Kind,
			order: i,
		})
	}

	if stats != nil {
		stats.projectTime = time.Since(t0)
		stats.particleCount = len(r.commands)
		t0 = time.Now()
	}

	r.mergeSort()

	if stats != nil {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range r.commands {
		cmd := &r.commands[i]
		dst.FillCircle(cmd.proj.X, cmd.proj.Y, cmd.proj.Radius, cmd.color, cmd.kind.Alpha(cmd.proj.Depth))
	}

	if stats != nil {
		stats.drawTime = time.Since(t0)
	}
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for order ensures stability.
func commandLessOrEqual(a, b *drawCommand) bool {
	if a.proj.Depth != b.proj.Depth {
		return a.proj.Depth < b.proj.Depth
	}
	return a.order <= b.order
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *renderer) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]drawCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
