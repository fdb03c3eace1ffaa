package raster

// Paint carries the styling for a draw call: a constant color, a blend
// mode, and an optional shader. When Shader is non-nil it supplies the
// source pixels and the paint color is ignored.
//
// Paint is a value type; draw calls never retain it.
type Paint struct {
	// Color is the unpremultiplied paint color.
	Color Color

	// Blend is the Porter-Duff compositing mode.
	Blend BlendMode

	// Shader optionally supplies per-pixel source colors.
	Shader Shader
}

// NewPaint creates a Paint with the default values: opaque black,
// source-over, no shader.
func NewPaint() Paint {
	return Paint{
		Color: Black,
		Blend: BlendSrcOver,
	}
}
