package raster

// Rect is an axis-aligned rectangle in float32 coordinates.
// A rect is considered empty when Left >= Right or Top >= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectLTRB creates a rect from its four edges.
func RectLTRB(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH creates a rect from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Empty reports whether the rect encloses no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Round returns the rect with each edge rounded to the nearest integer.
func (r Rect) Round() IRect {
	return IRect{
		Left:   roundToInt(r.Left),
		Top:    roundToInt(r.Top),
		Right:  roundToInt(r.Right),
		Bottom: roundToInt(r.Bottom),
	}
}

// IRect is an axis-aligned rectangle with integer edges.
type IRect struct {
	Left, Top, Right, Bottom int
}

// IRectLTRB creates an integer rect from its four edges.
func IRectLTRB(left, top, right, bottom int) IRect {
	return IRect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Empty reports whether the rect encloses no pixels.
func (r IRect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Intersect returns the intersection of two rects. The result may be empty.
func (r IRect) Intersect(other IRect) IRect {
	return IRect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}
}
