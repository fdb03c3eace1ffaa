package raster

import "github.com/gogpu/raster/internal/scan"

// DrawConvexPolygon fills the convex polygon with the paint, following the
// same pixel-center containment rule as rectangles. The points are
// transformed by the current matrix and clipped to the bitmap.
//
// The polygon must be strictly convex: collinear vertices can put more
// than two edges on a scanline and produce undefined spans.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint Paint) {
	if len(pts) < 3 {
		return
	}

	blit, ok := c.prepareBlit(paint)
	if !ok {
		return
	}

	ctm := c.ctm()
	mapped := make([]scan.Point, len(pts))
	for i, p := range pts {
		q := ctm.TransformPoint(p)
		mapped[i] = scan.Point{X: q.X, Y: q.Y}
	}

	clip := c.clipRect()
	scan.FillConvex(mapped, scan.Rect{
		Left:   clip.Left,
		Top:    clip.Top,
		Right:  clip.Right,
		Bottom: clip.Bottom,
	}, scan.SpanFunc(blit))
}
