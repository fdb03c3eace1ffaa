package raster

// Shader produces premultiplied source pixels for a draw call. A shader is
// stateful per draw: the canvas calls SetContext with the current transform
// before any ShadeRow calls, and shaders hold the resulting inverse matrix.
// A single shader instance must therefore not be used from concurrent
// draws; distinct instances are independent.
type Shader interface {
	// IsOpaque conservatively reports whether every pixel the shader can
	// emit has alpha 255.
	IsOpaque() bool

	// SetContext prepares the shader for a draw under the given transform.
	// It returns false when the composite transform is not invertible, in
	// which case the caller must skip the draw.
	SetContext(ctm Matrix) bool

	// ShadeRow fills row[0:count] with the source pixels for the device
	// coordinates (x+0.5, y+0.5) ... (x+count-0.5, y+0.5). The caller
	// guarantees len(row) >= count.
	ShadeRow(x, y, count int, row []Pixel)
}
