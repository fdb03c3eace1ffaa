// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scan

import "sort"

// FillWinding sweeps the accumulated edges top to bottom and emits the
// spans where the non-zero winding rule reports inside. Edges are
// intersected with each scanline at y+0.5 and rounded to pixel columns.
//
// The edge slice doubles as the active list: edges are globally sorted by
// (top, x at top+0.5), the live prefix is walked per scanline, expired
// edges are removed in place, and the prefix that stays live is re-sorted
// by its x at the next scanline since edges may cross.
func (el *EdgeList) FillWinding(span SpanFunc) {
	edges := el.edges
	if len(edges) == 0 {
		return
	}

	sort.Slice(edges, func(i, j int) bool {
		a, b := &edges[i], &edges[j]
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.XAt(float32(a.Top)+0.5) < b.XAt(float32(b.Top)+0.5)
	})

	minY := edges[0].Top
	maxY := edges[0].Bottom
	for i := range edges {
		if edges[i].Bottom > maxY {
			maxY = edges[i].Bottom
		}
	}

	for y := minY; y < maxY; y++ {
		winding := 0
		left := 0

		i := 0
		for i < len(edges) {
			e := edges[i]
			if !e.validAt(y) {
				break
			}

			x := roundToInt(e.XAt(float32(y) + 0.5))
			if winding == 0 {
				left = x
			}
			winding += int(e.Winding)
			if winding == 0 {
				span(left, x, y)
			}

			if e.validAt(y + 1) {
				i++
			} else {
				edges = append(edges[:i], edges[i+1:]...)
			}
		}

		// Pull in edges that start on the next scanline so the prefix
		// re-sort sees the complete active set.
		for i < len(edges) && edges[i].validAt(y+1) {
			i++
		}
		sortActiveByX(edges[:i], float32(y)+1.5)
	}

	el.edges = edges
}

// sortActiveByX insertion-sorts the active edges by their x at the given
// scanline center. The list is nearly sorted already, so insertion sort is
// the right tool.
func sortActiveByX(active []Edge, y float32) {
	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && active[j].XAt(y) < active[j-1].XAt(y); j-- {
			active[j], active[j-1] = active[j-1], active[j]
		}
	}
}

// FillConvex scan-converts a convex polygon: exactly two edges cross any
// scanline, so the sweep tracks just those two and replaces whichever
// expires from a queue of the remaining edges. Points must already be in
// device space; segments are clipped to the given rect.
//
// Polygons with collinear vertices (three or more edges straddling one
// scanline) are not supported and produce undefined spans.
func FillConvex(pts []Point, clip Rect, span SpanFunc) {
	el := NewEdgeList(clip, true)
	for i := range pts {
		j := i + 1
		if j == len(pts) {
			j = 0
		}
		el.AddSegment(pts[i], pts[j])
	}

	edges := el.edges
	if len(edges) < 2 {
		return
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Top < edges[j].Top
	})

	minY := edges[0].Top
	maxY := edges[0].Bottom
	for i := range edges {
		if edges[i].Bottom > maxY {
			maxY = edges[i].Bottom
		}
	}

	e0, e1 := edges[0], edges[1]
	next := 2

	for y := minY; y < maxY; y++ {
		yc := float32(y) + 0.5
		x0 := roundToInt(e0.XAt(yc))
		x1 := roundToInt(e1.XAt(yc))
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		span(x0, x1, y)

		if y+1 >= e0.Bottom && next < len(edges) {
			e0 = edges[next]
			next++
		}
		if y+1 >= e1.Bottom && next < len(edges) {
			e1 = edges[next]
			next++
		}
	}
}
