package raster

// DrawRect fills the rect with the paint. The affected pixels are those
// whose centers are contained in the rect under the half-open rule:
// center > min edge and center <= max edge.
//
// Under an identity transform the rect is filled directly from its rounded
// integer bounds; otherwise the four corners go through the convex polygon
// rasterizer.
func (c *Canvas) DrawRect(rect Rect, paint Paint) {
	if !c.ctm().IsIdentity() {
		pts := [4]Point{
			{rect.Left, rect.Top}, {rect.Right, rect.Top},
			{rect.Right, rect.Bottom}, {rect.Left, rect.Bottom},
		}
		c.DrawConvexPolygon(pts[:], paint)
		return
	}

	bounds := IRectLTRB(0, 0, c.bitmap.Width(), c.bitmap.Height())
	clipped := rect.Round().Intersect(bounds)
	if clipped.Empty() {
		return
	}

	blit, ok := c.prepareBlit(paint)
	if !ok {
		return
	}
	for y := clipped.Top; y < clipped.Bottom; y++ {
		blit(clipped.Left, clipped.Right, y)
	}
}
