// Package raster is a software scanline rasterizer for 2D vector graphics.
//
// The package renders filled geometry (rectangles, convex polygons,
// winding-filled paths, triangle meshes and tessellated quads) into an
// in-memory premultiplied ARGB pixel buffer. Geometry passes through an
// affine transform stack, is scan-converted with the non-zero winding rule
// at pixel centers (no antialiasing), and is composited with one of the
// twelve Porter-Duff blend modes. Color can come from a constant paint
// color or from a pluggable Shader: bitmap sampling with tiling, linear
// and sweep gradients, Voronoi cells, color-matrix proxies, and
// barycentric triangle shaders used by mesh drawing.
//
// A minimal session:
//
//	bm := raster.NewBitmap(256, 256)
//	cv := raster.NewCanvas(bm)
//	cv.Clear(raster.RGB(1, 1, 1))
//
//	paint := raster.NewPaint()
//	paint.Color = raster.RGBA(0.2, 0.4, 0.9, 1)
//	cv.DrawRect(raster.RectLTRB(16, 16, 240, 240), paint)
//
// Canvases are not safe for concurrent use; every draw call completes all
// pixel writes before returning.
package raster
