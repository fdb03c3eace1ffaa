package raster

import "github.com/chewxy/math32"

// PathDirection selects the winding direction of builder-generated
// contours.
type PathDirection uint8

const (
	// DirectionCW winds clockwise in device orientation (y down).
	DirectionCW PathDirection = iota
	// DirectionCCW winds counterclockwise.
	DirectionCCW
)

// PathBuilder accumulates verbs and points and detaches them into an
// immutable Path.
type PathBuilder struct {
	verbs   []PathVerb
	pts     []Point
	hasMove bool
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new contour at p.
func (b *PathBuilder) MoveTo(p Point) {
	b.verbs = append(b.verbs, VerbMove)
	b.pts = append(b.pts, p)
	b.hasMove = true
}

// LineTo appends a straight segment. An implicit MoveTo(p) is inserted
// when the builder has no current contour.
func (b *PathBuilder) LineTo(p Point) {
	b.ensureMove(p)
	b.verbs = append(b.verbs, VerbLine)
	b.pts = append(b.pts, p)
}

// QuadTo appends a quadratic Bezier through control point c to p.
func (b *PathBuilder) QuadTo(c, p Point) {
	b.ensureMove(p)
	b.verbs = append(b.verbs, VerbQuad)
	b.pts = append(b.pts, c, p)
}

// CubicTo appends a cubic Bezier through control points c0, c1 to p.
func (b *PathBuilder) CubicTo(c0, c1, p Point) {
	b.ensureMove(p)
	b.verbs = append(b.verbs, VerbCubic)
	b.pts = append(b.pts, c0, c1, p)
}

func (b *PathBuilder) ensureMove(p Point) {
	if !b.hasMove {
		b.MoveTo(p)
	}
}

// AddRect appends the rect as a new contour, starting at the top-left
// corner and winding in the given direction.
func (b *PathBuilder) AddRect(r Rect, dir PathDirection) {
	b.MoveTo(Pt(r.Left, r.Top))
	switch dir {
	case DirectionCW:
		b.LineTo(Pt(r.Right, r.Top))
		b.LineTo(Pt(r.Right, r.Bottom))
		b.LineTo(Pt(r.Left, r.Bottom))
	default:
		b.LineTo(Pt(r.Left, r.Bottom))
		b.LineTo(Pt(r.Right, r.Bottom))
		b.LineTo(Pt(r.Right, r.Top))
	}
	b.LineTo(Pt(r.Left, r.Top))
}

// AddPolygon appends the points as a new contour: MoveTo(pts[0]) followed
// by lines through the remaining points.
func (b *PathBuilder) AddPolygon(pts []Point) {
	if len(pts) < 1 {
		return
	}
	b.MoveTo(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
}

// AddCircle appends an approximate circle (four cubic curves) with the
// given center and radius, winding in the given direction.
func (b *PathBuilder) AddCircle(center Point, radius float32, dir PathDirection) {
	// Unit-circle control points, counterclockwise in device (y-down) terms.
	k := (4*math32.Sqrt(2) - 4) / 3
	unit := [13]Point{
		{1, 0}, {1, -k}, {k, -1},
		{0, -1}, {-k, -1}, {-1, -k},
		{-1, 0}, {-1, k}, {-k, 1},
		{0, 1}, {k, 1}, {1, k},
		{1, 0},
	}

	m := Translate(center.X, center.Y).Multiply(Scale(radius, radius))
	var pts [13]Point
	m.MapPoints(pts[:], unit[:])

	switch dir {
	case DirectionCW:
		b.MoveTo(pts[12])
		for i := 11; i > 0; i -= 3 {
			b.CubicTo(pts[i], pts[i-1], pts[i-2])
		}
	default:
		b.MoveTo(pts[0])
		for i := 1; i < 13; i += 3 {
			b.CubicTo(pts[i], pts[i+1], pts[i+2])
		}
	}
}

// Detach returns the accumulated path and resets the builder.
func (b *PathBuilder) Detach() *Path {
	p := &Path{verbs: b.verbs, pts: b.pts}
	b.verbs = nil
	b.pts = nil
	b.hasMove = false
	return p
}
