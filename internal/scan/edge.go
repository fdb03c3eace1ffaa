// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

// Edge is one monotone-in-y line segment prepared for scanline traversal,
// parameterized as x = M*y + B. An edge is live on scanlines
// Top <= y < Bottom. Winding is +1 when the source segment pointed upward
// (p0 below p1 in device coordinates), -1 downward; horizontal segments
// never become edges.
type Edge struct {
	M, B        float32
	Top, Bottom int
	Left, Right int
	Winding     int8
}

// XAt returns the edge's x coordinate at the given y.
func (e *Edge) XAt(y float32) float32 {
	return e.M*y + e.B
}

func (e *Edge) validAt(y int) bool {
	return e.Top <= y && y < e.Bottom
}

// windingOf returns the winding contribution of the directed segment
// p0 -> p1, or 0 for horizontal segments.
func windingOf(p0, p1 Point) int8 {
	switch {
	case p0.Y > p1.Y:
		return 1
	case p0.Y < p1.Y:
		return -1
	default:
		return 0
	}
}

// slopeInterceptOf solves x = m*y + b through two points.
func slopeInterceptOf(p0, p1 Point) (m, b float32) {
	m = (p1.X - p0.X) / (p1.Y - p0.Y)
	b = p0.X - m*p0.Y
	return m, b
}

// edgeFromPoints builds an edge with an explicit winding. ok is false when
// the rounded vertical extent is empty.
func edgeFromPoints(p0, p1 Point, winding int8) (Edge, bool) {
	m, b := slopeInterceptOf(p0, p1)
	e := Edge{
		M:       m,
		B:       b,
		Top:     roundToInt(min(p0.Y, p1.Y)),
		Bottom:  roundToInt(max(p0.Y, p1.Y)),
		Left:    roundToInt(min(p0.X, p1.X)),
		Right:   roundToInt(max(p0.X, p1.X)),
		Winding: winding,
	}
	return e, e.Top < e.Bottom
}

// xAtY evaluates the segment through p0, p1 at the given y.
func xAtY(p0, p1 Point, y float32) float32 {
	m, b := slopeInterceptOf(p0, p1)
	return m*y + b
}

// yAtX evaluates the segment through p0, p1 at the given x.
func yAtX(p0, p1 Point, x float32) float32 {
	m, _ := slopeInterceptOf(p0, p1)
	return p0.Y + (x-p0.X)/m
}
