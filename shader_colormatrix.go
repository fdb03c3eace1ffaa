package raster

// ColorMatrix is a 4x5 color transform over unpremultiplied colors,
// stored row-major: each output channel row is [Mr Mg Mb Ma T], so
//
//	R' = m[0]*R + m[1]*G + m[2]*B + m[3]*A + m[4]
//
// and so on for G', B', A'. Results are pinned to [0, 1] before packing.
type ColorMatrix [20]float32

// ColorMatrixIdentity returns the matrix that leaves colors unchanged.
func ColorMatrixIdentity() ColorMatrix {
	var m ColorMatrix
	m[0], m[6], m[12], m[18] = 1, 1, 1, 1
	return m
}

// Apply transforms an unpremultiplied color and pins the result.
func (m ColorMatrix) Apply(c Color) Color {
	out := Color{
		R: m[0]*c.R + m[1]*c.G + m[2]*c.B + m[3]*c.A + m[4],
		G: m[5]*c.R + m[6]*c.G + m[7]*c.B + m[8]*c.A + m[9],
		B: m[10]*c.R + m[11]*c.G + m[12]*c.B + m[13]*c.A + m[14],
		A: m[15]*c.R + m[16]*c.G + m[17]*c.B + m[18]*c.A + m[19],
	}
	return out.PinToUnit()
}

// NewColorMatrixShader wraps base and runs every emitted pixel through the
// color matrix: unpremultiply, transform, pin, repremultiply.
//
// Returns nil when base is nil.
func NewColorMatrixShader(matrix ColorMatrix, base Shader) Shader {
	if base == nil {
		return nil
	}
	return &colorMatrixShader{matrix: matrix, base: base}
}

type colorMatrixShader struct {
	matrix ColorMatrix
	base   Shader
	buf    []Pixel
}

// IsOpaque is conservatively false: the matrix may lower alpha anywhere.
func (s *colorMatrixShader) IsOpaque() bool { return false }

func (s *colorMatrixShader) SetContext(ctm Matrix) bool {
	return s.base.SetContext(ctm)
}

func (s *colorMatrixShader) ShadeRow(x, y, count int, row []Pixel) {
	if cap(s.buf) < count {
		s.buf = make([]Pixel, count)
	}
	base := s.buf[:count]
	s.base.ShadeRow(x, y, count, base)

	for i, p := range base {
		row[i] = s.matrix.Apply(p.Color()).Pixel()
	}
}
