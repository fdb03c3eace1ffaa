package raster

import "testing"

func newTestCanvas(t *testing.T, w, h int) (*Canvas, *Bitmap) {
	t.Helper()
	bm := NewBitmap(w, h)
	if bm == nil {
		t.Fatalf("NewBitmap(%d, %d) = nil", w, h)
	}
	cv := NewCanvas(bm)
	if cv == nil {
		t.Fatal("NewCanvas returned nil")
	}
	return cv, bm
}

func countPixels(bm *Bitmap, want Pixel) int {
	n := 0
	for _, p := range bm.Pix() {
		if p == want {
			n++
		}
	}
	return n
}

func pixelNear(t *testing.T, got Pixel, want Pixel, tol uint32, context string) {
	t.Helper()
	diff := func(a, b uint32) uint32 {
		if a > b {
			return a - b
		}
		return b - a
	}
	if diff(got.A(), want.A()) > tol || diff(got.R(), want.R()) > tol ||
		diff(got.G(), want.G()) > tol || diff(got.B(), want.B()) > tol {
		t.Errorf("%s: pixel = %#08x, want within %d of %#08x", context, uint32(got), tol, uint32(want))
	}
}

func TestCanvasNilBitmap(t *testing.T) {
	if NewCanvas(nil) != nil {
		t.Error("NewCanvas(nil) != nil")
	}
}

func TestClearFillsEveryPixel(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)
	cv.Clear(RGBA(1, 0, 0, 1))
	if got := countPixels(bm, 0xFFFF0000); got != 100*100 {
		t.Errorf("cleared pixels = %d, want %d", got, 100*100)
	}
}

func TestDrawRectSrc(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	paint := NewPaint()
	paint.Color = RGBA(0, 1, 0, 1)
	paint.Blend = BlendSrc
	cv.DrawRect(RectLTRB(10, 10, 20, 20), paint)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			want := Pixel(0)
			if x >= 10 && x < 20 && y >= 10 && y < 20 {
				want = 0xFF00FF00
			}
			if got := bm.Get(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestDrawRectClipsToBitmap(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	paint := NewPaint()
	paint.Color = Blue
	paint.Blend = BlendSrc
	cv.DrawRect(RectLTRB(-50, -50, 200, 200), paint)

	if got := countPixels(bm, 0xFF0000FF); got != 20*20 {
		t.Errorf("filled pixels = %d, want %d", got, 400)
	}

	cv.Clear(Transparent)
	cv.DrawRect(RectLTRB(200, 200, 300, 300), paint)
	if got := countPixels(bm, 0); got != 20*20 {
		t.Error("off-bitmap rect touched pixels")
	}
}

func TestDrawConvexPolygonTriangle(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	paint := NewPaint()
	paint.Color = RGBA(0, 0, 1, 1)
	paint.Blend = BlendSrc
	cv.DrawConvexPolygon([]Point{{50, 10}, {90, 90}, {10, 90}}, paint)

	if got := bm.Get(50, 50); got != 0xFF0000FF {
		t.Errorf("pixel (50,50) = %#08x, want 0xFF0000FF", uint32(got))
	}
	if got := bm.Get(0, 0); got != 0 {
		t.Errorf("pixel (0,0) = %#08x, want 0", uint32(got))
	}
}

func TestDrawConvexPolygonDegenerate(t *testing.T) {
	cv, bm := newTestCanvas(t, 10, 10)
	paint := NewPaint()
	paint.Blend = BlendSrc

	cv.DrawConvexPolygon(nil, paint)
	cv.DrawConvexPolygon([]Point{{1, 1}, {5, 5}}, paint)
	// All points on one horizontal line: no usable edges.
	cv.DrawConvexPolygon([]Point{{1, 5}, {4, 5}, {8, 5}}, paint)

	if got := countPixels(bm, 0); got != 100 {
		t.Error("degenerate polygons touched pixels")
	}
}

func TestLinearGradientAcrossCanvas(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	shader := NewLinearGradient(Pt(0, 50), Pt(100, 50), []Color{Red, Blue}, TileClamp)
	paint := NewPaint()
	paint.Shader = shader
	paint.Blend = BlendSrc
	cv.DrawRect(RectLTRB(0, 0, 100, 100), paint)

	pixelNear(t, bm.Get(0, 50), 0xFFFF0000, 3, "left edge")
	pixelNear(t, bm.Get(99, 50), 0xFF0000FF, 3, "right edge")

	mid := bm.Get(50, 50)
	if mid.A() != 255 {
		t.Errorf("midpoint alpha = %d, want 255", mid.A())
	}
	if diff := int(mid.R()) - int(mid.B()); diff > 8 || diff < -8 {
		t.Errorf("midpoint = %#08x, want red approximately equal to blue", uint32(mid))
	}
}

func TestSaveTranslateRestore(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	red := NewPaint()
	red.Color = Red
	red.Blend = BlendSrc

	green := NewPaint()
	green.Color = Green
	green.Blend = BlendSrc

	cv.Save()
	cv.Translate(10, 0)
	cv.DrawRect(RectLTRB(0, 0, 5, 5), red)
	cv.Restore()
	cv.DrawRect(RectLTRB(0, 0, 5, 5), green)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := bm.Get(x, y); got != 0xFF00FF00 {
				t.Fatalf("pixel (%d,%d) = %#08x, want green", x, y, uint32(got))
			}
			if got := bm.Get(x+10, y); got != 0xFFFF0000 {
				t.Fatalf("pixel (%d,%d) = %#08x, want red", x+10, y, uint32(got))
			}
		}
	}
}

func TestRestoreBelowFirstSaveRestoresIdentity(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	cv.Translate(5, 5)
	cv.Restore() // no matching Save: falls back to identity
	cv.Restore()

	paint := NewPaint()
	paint.Color = Red
	paint.Blend = BlendSrc
	cv.DrawRect(RectLTRB(0, 0, 2, 2), paint)

	if got := bm.Get(0, 0); got != 0xFFFF0000 {
		t.Errorf("pixel (0,0) = %#08x, want red under identity", uint32(got))
	}
	if got := bm.Get(5, 5); got != 0 {
		t.Errorf("pixel (5,5) = %#08x, want untouched", uint32(got))
	}
}

func TestDrawPathCubicRegion(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	var b PathBuilder
	b.MoveTo(Pt(10, 50))
	b.CubicTo(Pt(10, 10), Pt(90, 10), Pt(90, 50))
	b.LineTo(Pt(10, 50))

	paint := NewPaint()
	paint.Color = Black
	paint.Blend = BlendSrcOver
	cv.DrawPath(b.Detach(), paint)

	// The curve passes through (50, 20); everything between it and the
	// base line at y=50 is inside.
	if got := bm.Get(50, 30); got != 0xFF000000 {
		t.Errorf("pixel (50,30) = %#08x, want filled black", uint32(got))
	}
	if got := bm.Get(50, 10); got != 0 {
		t.Errorf("pixel (50,10) = %#08x, want empty above curve", uint32(got))
	}
	if got := bm.Get(5, 30); got != 0 {
		t.Errorf("pixel (5,30) = %#08x, want empty left of region", uint32(got))
	}

	// Opaque source over a cleared buffer: coverage is binary.
	for i, p := range bm.Pix() {
		if a := p.A(); a != 0 && a != 255 {
			t.Fatalf("pixel %d alpha = %d, want 0 or 255", i, a)
		}
	}
	// Nothing outside the control bounds may change.
	for y := 51; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if bm.Get(x, y) != 0 {
				t.Fatalf("pixel (%d,%d) below base line is filled", x, y)
			}
		}
	}
}

func TestDrawPathWindingDirectionIrrelevant(t *testing.T) {
	ccw := []Point{{50, 10}, {10, 90}, {90, 90}}
	cw := []Point{{50, 10}, {90, 90}, {10, 90}}

	render := func(pts []Point) *Bitmap {
		cv, bm := newTestCanvas(t, 100, 100)
		var b PathBuilder
		b.AddPolygon(pts)
		paint := NewPaint()
		paint.Color = Red
		paint.Blend = BlendSrc
		cv.DrawPath(b.Detach(), paint)
		return bm
	}

	a := render(ccw)
	bb := render(cw)
	for i := range a.Pix() {
		if a.Pix()[i] != bb.Pix()[i] {
			t.Fatalf("pixel %d differs between CW and CCW fills", i)
		}
	}
	if countPixels(a, 0xFFFF0000) == 0 {
		t.Fatal("triangle fill produced no pixels")
	}
}

func TestDrawWithBlendDstIsNoOp(t *testing.T) {
	cv, bm := newTestCanvas(t, 50, 50)
	cv.Clear(RGBA(0.2, 0.4, 0.6, 0.8))
	before := make([]Pixel, len(bm.Pix()))
	copy(before, bm.Pix())

	paint := NewPaint()
	paint.Color = White
	paint.Blend = BlendDst
	cv.DrawRect(RectLTRB(0, 0, 50, 50), paint)

	var b PathBuilder
	b.AddCircle(Pt(25, 25), 20, DirectionCW)
	cv.DrawPath(b.Detach(), paint)

	for i, p := range bm.Pix() {
		if p != before[i] {
			t.Fatalf("pixel %d changed under BlendDst", i)
		}
	}
}

func TestDrawSrcIsIdempotent(t *testing.T) {
	cv, bm := newTestCanvas(t, 60, 60)

	paint := NewPaint()
	paint.Color = RGBA(0.3, 0.7, 0.2, 0.5)
	paint.Blend = BlendSrc

	draw := func() {
		cv.DrawConvexPolygon([]Point{{30, 5}, {55, 50}, {5, 50}}, paint)
	}

	draw()
	first := make([]Pixel, len(bm.Pix()))
	copy(first, bm.Pix())

	draw()
	for i, p := range bm.Pix() {
		if p != first[i] {
			t.Fatalf("pixel %d differs after redrawing with Src", i)
		}
	}
}

func TestDrawSkipsSingularShaderTransform(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	paint := NewPaint()
	paint.Shader = NewLinearGradient(Pt(0, 0), Pt(20, 0), []Color{Red, Blue}, TileClamp)
	paint.Blend = BlendSrc

	cv.Scale(0, 0)
	cv.DrawRect(RectLTRB(0, 0, 20, 20), paint)

	if got := countPixels(bm, 0); got != 400 {
		t.Error("draw under singular transform touched pixels")
	}
}

func TestDrawRectTransformedMatchesPolygon(t *testing.T) {
	paint := NewPaint()
	paint.Color = Blue
	paint.Blend = BlendSrc

	cv1, bm1 := newTestCanvas(t, 40, 40)
	cv1.Translate(3, 4)
	cv1.DrawRect(RectLTRB(5, 5, 20, 15), paint)

	cv2, bm2 := newTestCanvas(t, 40, 40)
	cv2.DrawRect(RectLTRB(8, 9, 23, 19), paint)

	for i := range bm1.Pix() {
		if bm1.Pix()[i] != bm2.Pix()[i] {
			t.Fatalf("pixel %d: translated rect differs from pre-translated rect", i)
		}
	}
}
