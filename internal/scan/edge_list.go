// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

// EdgeList accumulates edges from segments and curves, optionally clipping
// every segment to a rectangle as it is added.
type EdgeList struct {
	edges   []Edge
	clip    Rect
	clipped bool
}

// NewEdgeList creates an edge list. When clipped is true every added
// segment is clipped to the given rect, with vertical boundary edges
// inserted so winding counts stay balanced.
func NewEdgeList(clip Rect, clipped bool) *EdgeList {
	return &EdgeList{
		edges:   make([]Edge, 0, 64),
		clip:    clip,
		clipped: clipped,
	}
}

// Len returns the number of accumulated edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

func (el *EdgeList) appendValid(e Edge, ok bool) {
	if ok {
		el.edges = append(el.edges, e)
	}
}

// AddSegment adds the directed segment p0 -> p1. Horizontal segments are
// discarded.
func (el *EdgeList) AddSegment(p0, p1 Point) {
	if !el.clipped {
		el.appendValid(edgeFromPoints(p0, p1, windingOf(p0, p1)))
		return
	}
	el.clipSegment(p0, p1)
}

// clipSegment trims the segment to the clip rect. Parts beyond the left or
// right side collapse onto a vertical edge along that side, preserving the
// winding a horizontal ray through the interior would have seen.
func (el *EdgeList) clipSegment(p0, p1 Point) {
	clip := el.clip

	if (p0.Y < clip.Top && p1.Y < clip.Top) || (p0.Y > clip.Bottom && p1.Y > clip.Bottom) {
		return
	}

	// The winding is fixed before any swapping below.
	winding := windingOf(p0, p1)
	if winding == 0 {
		return
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p0.Y < clip.Top {
		p0.X = xAtY(p0, p1, clip.Top)
		p0.Y = clip.Top
	}
	if p1.Y > clip.Bottom {
		p1.X = xAtY(p0, p1, clip.Bottom)
		p1.Y = clip.Bottom
	}

	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	// Entirely beyond a vertical side: project onto that side.
	if p0.X < clip.Left && p1.X < clip.Left {
		el.appendValid(edgeFromPoints(
			Point{X: clip.Left, Y: p0.Y},
			Point{X: clip.Left, Y: p1.Y},
			winding,
		))
		return
	}
	if p0.X > clip.Right && p1.X > clip.Right {
		el.appendValid(edgeFromPoints(
			Point{X: clip.Right, Y: p0.Y},
			Point{X: clip.Right, Y: p1.Y},
			winding,
		))
		return
	}

	// Straddling a vertical side: clip the endpoint and add a catch-up
	// edge along the side covering the trimmed y range.
	if p0.X < clip.Left {
		oldY := p0.Y
		p0.Y = yAtX(p0, p1, clip.Left)
		p0.X = clip.Left
		el.appendValid(edgeFromPoints(
			Point{X: clip.Left, Y: oldY},
			Point{X: clip.Left, Y: p0.Y},
			winding,
		))
	}
	if p1.X > clip.Right {
		oldY := p1.Y
		p1.Y = yAtX(p0, p1, clip.Right)
		p1.X = clip.Right
		el.appendValid(edgeFromPoints(
			Point{X: clip.Right, Y: oldY},
			Point{X: clip.Right, Y: p1.Y},
			winding,
		))
	}

	el.appendValid(edgeFromPoints(p0, p1, winding))
}
