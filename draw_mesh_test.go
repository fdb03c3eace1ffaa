package raster

import "testing"

func TestDrawMeshVertexColors(t *testing.T) {
	cv, bm := newTestCanvas(t, 100, 100)

	verts := []Point{{0, 0}, {100, 0}, {0, 100}}
	colors := []Color{Red, Red, Red}
	paint := NewPaint()
	paint.Blend = BlendSrc
	cv.DrawMesh(verts, colors, nil, 1, []int{0, 1, 2}, paint)

	if got := bm.Get(10, 10); got != 0xFFFF0000 {
		t.Errorf("interior pixel = %#08x, want red", uint32(got))
	}
	if got := bm.Get(99, 99); got != 0 {
		t.Errorf("pixel outside triangle = %#08x, want empty", uint32(got))
	}
}

func TestDrawMeshInterpolatesAcrossTriangles(t *testing.T) {
	cv, bm := newTestCanvas(t, 40, 40)

	// Two triangles forming a square, distinct corner colors.
	verts := []Point{{0, 0}, {40, 0}, {40, 40}, {0, 40}}
	colors := []Color{Red, Green, Blue, White}
	paint := NewPaint()
	paint.Blend = BlendSrc
	cv.DrawMesh(verts, colors, nil, 2, []int{0, 1, 3, 1, 2, 3}, paint)

	if got := bm.Get(1, 1); got.R() < 200 {
		t.Errorf("corner 0 = %#08x, want red dominant", uint32(got))
	}
	if got := bm.Get(38, 1); got.G() < 200 {
		t.Errorf("corner 1 = %#08x, want green dominant", uint32(got))
	}
	if got := bm.Get(38, 38); got.B() < 200 {
		t.Errorf("corner 2 = %#08x, want blue dominant", uint32(got))
	}
	// Edge clipping pins geometry to the last pixel-center row/column, so
	// the interior up to 39x39 must be seamless.
	for y := 0; y < 39; y++ {
		for x := 0; x < 39; x++ {
			if bm.Get(x, y) == 0 {
				t.Fatalf("hole at (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawMeshTexture(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	tex := NewBitmap(1, 1)
	tex.Set(0, 0, 0xFF0000FF)
	tex.SetOpaque(true)

	paint := NewPaint()
	paint.Blend = BlendSrc
	paint.Shader = NewBitmapShader(tex, Identity(), TileClamp)

	verts := []Point{{0, 0}, {20, 0}, {0, 20}}
	texs := []Point{{0, 0}, {1, 0}, {0, 1}}
	cv.DrawMesh(verts, nil, texs, 1, []int{0, 1, 2}, paint)

	if got := bm.Get(2, 2); got != 0xFF0000FF {
		t.Errorf("textured pixel = %#08x, want blue", uint32(got))
	}
}

func TestDrawMeshTextureIgnoredWithoutShader(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	paint := NewPaint()
	paint.Blend = BlendSrc
	verts := []Point{{0, 0}, {20, 0}, {0, 20}}
	texs := []Point{{0, 0}, {1, 0}, {0, 1}}
	cv.DrawMesh(verts, nil, texs, 1, []int{0, 1, 2}, paint)

	if countPixels(bm, 0) != 400 {
		t.Error("mesh with texs but no shader drew pixels")
	}
}

func TestDrawMeshModulates(t *testing.T) {
	cv, bm := newTestCanvas(t, 20, 20)

	tex := NewBitmap(1, 1)
	tex.Set(0, 0, 0xFFFFFFFF)
	tex.SetOpaque(true)

	paint := NewPaint()
	paint.Blend = BlendSrc
	paint.Shader = NewBitmapShader(tex, Identity(), TileClamp)

	verts := []Point{{0, 0}, {20, 0}, {0, 20}}
	colors := []Color{Green, Green, Green}
	texs := []Point{{0, 0}, {1, 0}, {0, 1}}
	cv.DrawMesh(verts, colors, texs, 1, []int{0, 1, 2}, paint)

	// White texture times green vertices stays green.
	pixelNear(t, bm.Get(2, 2), 0xFF00FF00, 2, "modulated mesh")
}

func TestDrawMeshEmpty(t *testing.T) {
	cv, bm := newTestCanvas(t, 10, 10)
	paint := NewPaint()
	paint.Blend = BlendSrc

	// Zero triangles with an empty index slice must be skipped, even when
	// color or texture arrays are present.
	cv.DrawMesh([]Point{{0, 0}, {10, 0}, {0, 10}}, []Color{Red, Green, Blue}, nil, 0, nil, paint)

	tex := NewBitmap(1, 1)
	tex.Set(0, 0, 0xFFFFFFFF)
	paint.Shader = NewBitmapShader(tex, Identity(), TileClamp)
	cv.DrawMesh([]Point{{0, 0}, {10, 0}, {0, 10}}, nil, []Point{{0, 0}, {1, 0}, {0, 1}}, 0, []int{}, paint)

	if countPixels(bm, 0) != 100 {
		t.Error("empty mesh drew pixels")
	}
}

func TestDrawMeshNothingToDraw(t *testing.T) {
	cv, bm := newTestCanvas(t, 10, 10)
	paint := NewPaint()
	paint.Blend = BlendSrc
	cv.DrawMesh([]Point{{0, 0}, {10, 0}, {0, 10}}, nil, nil, 1, []int{0, 1, 2}, paint)
	if countPixels(bm, 0) != 100 {
		t.Error("mesh without colors or texs drew pixels")
	}
}

func TestDrawQuadCoversAndInterpolates(t *testing.T) {
	for _, level := range []int{0, 1, 4} {
		cv, bm := newTestCanvas(t, 40, 40)

		paint := NewPaint()
		paint.Blend = BlendSrc
		cv.DrawQuad(
			[4]Point{{0, 0}, {40, 0}, {40, 40}, {0, 40}},
			[]Color{Red, Red, Red, Red},
			nil, level, paint,
		)

		// The convex rasterizer clips to the last pixel-center row and
		// column, so a full-canvas quad covers 39x39 of a 40x40 target.
		if got := countPixels(bm, 0xFFFF0000); got != 39*39 {
			t.Errorf("level %d: covered pixels = %d, want %d", level, got, 39*39)
		}
	}
}

func TestDrawQuadCornerColors(t *testing.T) {
	cv, bm := newTestCanvas(t, 40, 40)

	paint := NewPaint()
	paint.Blend = BlendSrc
	cv.DrawQuad(
		[4]Point{{0, 0}, {40, 0}, {40, 40}, {0, 40}},
		[]Color{Red, Green, Blue, White},
		nil, 3, paint,
	)

	if got := bm.Get(1, 1); got.R() < 180 {
		t.Errorf("top-left = %#08x, want red dominant", uint32(got))
	}
	if got := bm.Get(38, 1); got.G() < 180 {
		t.Errorf("top-right = %#08x, want green dominant", uint32(got))
	}
	if got := bm.Get(38, 38); got.B() < 180 {
		t.Errorf("bottom-right = %#08x, want blue dominant", uint32(got))
	}
	// Bottom-left corner is white: everything high.
	got := bm.Get(1, 38)
	if got.R() < 180 || got.G() < 180 || got.B() < 180 {
		t.Errorf("bottom-left = %#08x, want near white", uint32(got))
	}
}
