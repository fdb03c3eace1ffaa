package raster

import "github.com/gogpu/raster/internal/scan"

// DrawPath fills the path with the paint under the non-zero winding rule.
// The path is transformed by the current matrix, flattened, converted to
// edges (clipping to the bitmap when its bounds spill over), and swept one
// scanline at a time.
func (c *Canvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.Empty() {
		return
	}

	blit, ok := c.prepareBlit(paint)
	if !ok {
		return
	}

	transformed := path.Transform(c.ctm())

	w := c.bitmap.Width()
	h := c.bitmap.Height()
	rb := transformed.Bounds().Round()
	if rb.Left > w-1 || rb.Right < 0 || rb.Top > h-1 || rb.Bottom < 0 {
		return
	}
	// When the path stays inside the bitmap the per-segment clipper is
	// pure overhead.
	inside := rb.Left >= 0 && rb.Right <= w-1 && rb.Top >= 0 && rb.Bottom <= h-1

	clip := c.clipRect()
	edges := scan.NewEdgeList(scan.Rect{
		Left:   clip.Left,
		Top:    clip.Top,
		Right:  clip.Right,
		Bottom: clip.Bottom,
	}, !inside)

	var pts [4]Point
	it := newEdger(transformed)
	for {
		verb, more := it.next(&pts)
		if !more {
			break
		}
		switch verb {
		case VerbLine:
			edges.AddSegment(scanPt(pts[0]), scanPt(pts[1]))
		case VerbQuad:
			edges.AddQuad(scanPt(pts[0]), scanPt(pts[1]), scanPt(pts[2]))
		case VerbCubic:
			edges.AddCubic(scanPt(pts[0]), scanPt(pts[1]), scanPt(pts[2]), scanPt(pts[3]))
		}
	}

	edges.FillWinding(scan.SpanFunc(blit))
}

func scanPt(p Point) scan.Point {
	return scan.Point{X: p.X, Y: p.Y}
}
