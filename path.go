package raster

import "github.com/chewxy/math32"

// PathVerb identifies one path element.
type PathVerb uint8

const (
	// VerbMove starts a new contour.
	VerbMove PathVerb = iota
	// VerbLine is a straight segment to one point.
	VerbLine
	// VerbQuad is a quadratic Bezier with one control point.
	VerbQuad
	// VerbCubic is a cubic Bezier with two control points.
	VerbCubic
)

// Path is an immutable sequence of verbs and control points produced by a
// PathBuilder. Contours are implicitly closed when the path is filled.
type Path struct {
	verbs []PathVerb
	pts   []Point
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.pts) == 0
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		verbs: p.verbs,
		pts:   make([]Point, len(p.pts)),
	}
	m.MapPoints(out.pts, p.pts)
	return out
}

// Bounds returns the bounding rect of the path. Endpoints are exact; for
// curves the local extrema are solved so the bounds are tight, not just
// the control-point hull.
//
// An empty path reports the zero rect.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}

	bounds := RectLTRB(math32.MaxFloat32, math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32)

	var pts [4]Point
	it := newEdger(p)
	for {
		verb, ok := it.next(&pts)
		if !ok {
			break
		}
		switch verb {
		case VerbLine:
			growBounds(&bounds, pts[0])
			growBounds(&bounds, pts[1])
		case VerbQuad:
			growBoundsQuad(&bounds, pts[0], pts[1], pts[2])
		case VerbCubic:
			growBoundsCubic(&bounds, pts[0], pts[1], pts[2], pts[3])
		}
	}
	if bounds.Left > bounds.Right {
		// Only bare moves; nothing drawable.
		return Rect{}
	}
	return bounds
}

func growBounds(b *Rect, p Point) {
	if p.X < b.Left {
		b.Left = p.X
	}
	if p.Y < b.Top {
		b.Top = p.Y
	}
	if p.X > b.Right {
		b.Right = p.X
	}
	if p.Y > b.Bottom {
		b.Bottom = p.Y
	}
}

func quadAt(a, b, c Point, t float32) Point {
	u := 1 - t
	return Point{
		X: u*u*a.X + 2*u*t*b.X + t*t*c.X,
		Y: u*u*a.Y + 2*u*t*b.Y + t*t*c.Y,
	}
}

func cubicAt(a, b, c, d Point, t float32) Point {
	u := 1 - t
	return Point{
		X: u*u*u*a.X + 3*u*u*t*b.X + 3*u*t*t*c.X + t*t*t*d.X,
		Y: u*u*u*a.Y + 3*u*u*t*b.Y + 3*u*t*t*c.Y + t*t*t*d.Y,
	}
}

func growBoundsQuad(bounds *Rect, a, b, c Point) {
	growBounds(bounds, a)
	growBounds(bounds, c)

	// dX/dt = 0 at t = (a-b) / (a-2b+c); a straight control polygon has a
	// zero denominator and no interior extremum.
	extreme := func(a, b, c float32) (float32, bool) {
		den := 2*a - 4*b + 2*c
		if math32.Abs(den) < 1e-6 {
			return 0, false
		}
		return (2*a - 2*b) / den, true
	}

	if t, ok := extreme(a.X, b.X, c.X); ok && t >= -0.0001 && t <= 1.0001 {
		pt := quadAt(a, b, c, t)
		if pt.X < bounds.Left {
			bounds.Left = pt.X
		}
		if pt.X > bounds.Right {
			bounds.Right = pt.X
		}
	}
	if t, ok := extreme(a.Y, b.Y, c.Y); ok && t >= -0.0001 && t <= 1.0001 {
		pt := quadAt(a, b, c, t)
		if pt.Y < bounds.Top {
			bounds.Top = pt.Y
		}
		if pt.Y > bounds.Bottom {
			bounds.Bottom = pt.Y
		}
	}
}

func growBoundsCubic(bounds *Rect, a, b, c, d Point) {
	growBounds(bounds, a)
	growBounds(bounds, d)

	// The derivative is quadratic; solve per axis for up to two roots.
	extremes := func(a, b, c, d float32) (float32, float32, bool) {
		qa := -a + 3*b - 3*c + d
		qb := 2 * (a - 2*b + c)
		qc := -a + b

		if math32.Abs(qa) < 0.0001 {
			if math32.Abs(qb) < 1e-6 {
				return 0, 0, false
			}
			t := -qc / qb
			return t, t, true
		}

		disc := qb*qb - 4*qa*qc
		if disc < 0 {
			return 0, 0, false
		}
		root := math32.Sqrt(disc)
		return (-qb + root) / (2 * qa), (-qb - root) / (2 * qa), true
	}

	checkX := func(t float32) {
		if t >= -0.0001 && t <= 1.0001 {
			pt := cubicAt(a, b, c, d, t)
			if pt.X < bounds.Left {
				bounds.Left = pt.X
			}
			if pt.X > bounds.Right {
				bounds.Right = pt.X
			}
		}
	}
	checkY := func(t float32) {
		if t >= -0.0001 && t <= 1.0001 {
			pt := cubicAt(a, b, c, d, t)
			if pt.Y < bounds.Top {
				bounds.Top = pt.Y
			}
			if pt.Y > bounds.Bottom {
				bounds.Bottom = pt.Y
			}
		}
	}

	if t0, t1, ok := extremes(a.X, b.X, c.X, d.X); ok {
		checkX(t0)
		checkX(t1)
	}
	if t0, t1, ok := extremes(a.Y, b.Y, c.Y, d.Y); ok {
		checkY(t0)
		checkY(t1)
	}
}

// edger walks a path one drawing segment at a time. pts[0] always carries
// the previous endpoint; each contour is implicitly closed with a final
// line segment back to its starting point.
type edger struct {
	p       *Path
	vi, pi  int
	start   Point
	current Point
	open    bool
}

func newEdger(p *Path) *edger {
	return &edger{p: p}
}

// next returns the next drawing verb and its points. Move verbs are never
// returned; they only reposition the contour start. ok is false when the
// path is exhausted.
func (e *edger) next(pts *[4]Point) (PathVerb, bool) {
	for e.vi < len(e.p.verbs) {
		verb := e.p.verbs[e.vi]

		if verb == VerbMove && e.open && e.current != e.start {
			// Close the previous contour before starting the next.
			pts[0] = e.current
			pts[1] = e.start
			e.current = e.start
			e.open = false
			return VerbLine, true
		}

		e.vi++
		switch verb {
		case VerbMove:
			e.start = e.p.pts[e.pi]
			e.current = e.start
			e.pi++
			e.open = false
		case VerbLine:
			pts[0] = e.current
			pts[1] = e.p.pts[e.pi]
			e.current = pts[1]
			e.pi++
			e.open = true
			return VerbLine, true
		case VerbQuad:
			pts[0] = e.current
			pts[1] = e.p.pts[e.pi]
			pts[2] = e.p.pts[e.pi+1]
			e.current = pts[2]
			e.pi += 2
			e.open = true
			return VerbQuad, true
		case VerbCubic:
			pts[0] = e.current
			pts[1] = e.p.pts[e.pi]
			pts[2] = e.p.pts[e.pi+1]
			pts[3] = e.p.pts[e.pi+2]
			e.current = pts[3]
			e.pi += 3
			e.open = true
			return VerbCubic, true
		}
	}

	if e.open && e.current != e.start {
		pts[0] = e.current
		pts[1] = e.start
		e.current = e.start
		e.open = false
		return VerbLine, true
	}
	return 0, false
}

// ChopQuadAt subdivides the quadratic src at t into two quadratics:
// 0..t lands in dst[0:3], t..1 in dst[2:5].
func ChopQuadAt(src *[3]Point, dst *[5]Point, t float32) {
	ab := src[0].Lerp(src[1], t)
	bc := src[1].Lerp(src[2], t)

	dst[0] = src[0]
	dst[1] = ab
	dst[2] = ab.Lerp(bc, t)
	dst[3] = bc
	dst[4] = src[2]
}

// ChopCubicAt subdivides the cubic src at t into two cubics:
// 0..t lands in dst[0:4], t..1 in dst[3:7].
func ChopCubicAt(src *[4]Point, dst *[7]Point, t float32) {
	ab := src[0].Lerp(src[1], t)
	bc := src[1].Lerp(src[2], t)
	cd := src[2].Lerp(src[3], t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)

	dst[0] = src[0]
	dst[1] = ab
	dst[2] = abc
	dst[3] = abc.Lerp(bcd, t)
	dst[4] = bcd
	dst[5] = cd
	dst[6] = src[3]
}
