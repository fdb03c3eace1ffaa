// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import "github.com/chewxy/math32"

// flattenTolerance is the maximum pixel distance between a curve and its
// polyline approximation.
const flattenTolerance = 0.25

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

// AddQuad flattens the quadratic a, b, c into segments. The segment count
// comes from the curvature error bound |a - 2b + c|/4: n = ceil(sqrt(E/tol)).
func (el *EdgeList) AddQuad(a, b, c Point) {
	ex := a.X - 2*b.X + c.X
	ey := a.Y - 2*b.Y + c.Y
	err := math32.Sqrt(ex*ex+ey*ey) / 4

	n := ceilToInt(math32.Sqrt(err / flattenTolerance))
	if n < 1 {
		n = 1
	}
	dt := 1 / float32(n)

	p0 := a
	for i := 1; i < n; i++ {
		p1 := quadAt(a, b, c, float32(i)*dt)
		el.AddSegment(p0, p1)
		p0 = p1
	}
	el.AddSegment(p0, c)
}

// AddCubic flattens the cubic a, b, c, d into segments. The error bound is
// the per-axis maximum of the two second differences:
// n = ceil(sqrt(3E/(4*tol))).
func (el *EdgeList) AddCubic(a, b, c, d Point) {
	ex := max(math32.Abs(a.X-2*b.X+c.X), math32.Abs(b.X-2*c.X+d.X))
	ey := max(math32.Abs(a.Y-2*b.Y+c.Y), math32.Abs(b.Y-2*c.Y+d.Y))
	err := math32.Sqrt(ex*ex + ey*ey)

	n := ceilToInt(math32.Sqrt(3 * err / (4 * flattenTolerance)))
	if n < 1 {
		n = 1
	}
	dt := 1 / float32(n)

	p0 := a
	for i := 1; i < n; i++ {
		p1 := cubicAt(a, b, c, d, float32(i)*dt)
		el.AddSegment(p0, p1)
		p0 = p1
	}
	el.AddSegment(p0, d)
}
