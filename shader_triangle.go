package raster

// barycentricMatrix maps unit barycentric coordinates (u, v) onto the
// triangle p0, p1, p2: the unit x axis lands on p0->p1 and the unit y axis
// on p0->p2.
func barycentricMatrix(p0, p1, p2 Point) Matrix {
	return Matrix{
		A: p1.X - p0.X, B: p2.X - p0.X, C: p0.X,
		D: p1.Y - p0.Y, E: p2.Y - p0.Y, F: p0.Y,
	}
}

// TriangleColorShader interpolates three vertex colors across a triangle
// using barycentric weights. Mesh drawing reuses one instance across
// triangles via Update.
type TriangleColorShader struct {
	c0, c1, c2 Color

	unitToDevice Matrix
	inv          Matrix
}

// NewTriangleColorShader creates a shader for the triangle p0, p1, p2 with
// a color at each vertex.
func NewTriangleColorShader(p0, p1, p2 Point, c0, c1, c2 Color) *TriangleColorShader {
	s := &TriangleColorShader{}
	s.Update(p0, p1, p2, c0, c1, c2)
	return s
}

// Update re-targets the shader at a new triangle without reallocating.
func (s *TriangleColorShader) Update(p0, p1, p2 Point, c0, c1, c2 Color) {
	s.c0, s.c1, s.c2 = c0, c1, c2
	s.unitToDevice = barycentricMatrix(p0, p1, p2)
}

// IsOpaque implements Shader.
func (s *TriangleColorShader) IsOpaque() bool {
	return s.c0.A == 1 && s.c1.A == 1 && s.c2.A == 1
}

// SetContext implements Shader.
func (s *TriangleColorShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(s.unitToDevice).Invert()
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

// ShadeRow implements Shader. The color is evaluated once at the row start
// and then stepped by the per-pixel color delta implied by the inverse
// transform's x column.
func (s *TriangleColorShader) ShadeRow(x, y, count int, row []Pixel) {
	pack := colorPacker(s.IsOpaque())

	fx := float32(x) + 0.5
	fy := float32(y) + 0.5
	u := s.inv.A*fx + s.inv.B*fy + s.inv.C
	v := s.inv.D*fx + s.inv.E*fy + s.inv.F

	w0 := pinToUnit(1 - u - v)
	w1 := pinToUnit(u)
	w2 := pinToUnit(v)
	col := s.c0.Scale(w0).Add(s.c1.Scale(w1)).Add(s.c2.Scale(w2))

	step := s.c0.Scale(-s.inv.A - s.inv.D).
		Add(s.c1.Scale(s.inv.A)).
		Add(s.c2.Scale(s.inv.D))

	for i := 0; i < count; i++ {
		row[i] = pack(col)
		col = col.Add(step)
	}
}

// TriangleTextureShader remaps a base shader so that the given texture
// coordinates land on the triangle's vertices. It forwards ShadeRow to the
// base shader; the remapping happens entirely in SetContext by composing
// device->unit->texture into the base shader's transform.
type TriangleTextureShader struct {
	base Shader

	unitToDevice  Matrix
	unitToTexture Matrix
}

// NewTriangleTextureShader creates a texture remap over base for the
// triangle p0, p1, p2 with texture coordinates t0, t1, t2.
// Returns nil when base is nil.
func NewTriangleTextureShader(base Shader, p0, p1, p2, t0, t1, t2 Point) *TriangleTextureShader {
	if base == nil {
		return nil
	}
	s := &TriangleTextureShader{base: base}
	s.Update(p0, p1, p2, t0, t1, t2)
	return s
}

// Update re-targets the shader at a new triangle without reallocating.
func (s *TriangleTextureShader) Update(p0, p1, p2, t0, t1, t2 Point) {
	s.unitToDevice = barycentricMatrix(p0, p1, p2)
	s.unitToTexture = barycentricMatrix(t0, t1, t2)
}

// IsOpaque implements Shader.
func (s *TriangleTextureShader) IsOpaque() bool {
	return s.base.IsOpaque()
}

// SetContext implements Shader.
func (s *TriangleTextureShader) SetContext(ctm Matrix) bool {
	texToUnit, ok := s.unitToTexture.Invert()
	if !ok {
		return false
	}
	return s.base.SetContext(ctm.Multiply(s.unitToDevice).Multiply(texToUnit))
}

// ShadeRow implements Shader.
func (s *TriangleTextureShader) ShadeRow(x, y, count int, row []Pixel) {
	s.base.ShadeRow(x, y, count, row)
}

// TriangleModulatingShader multiplies a triangle color shader with a
// triangle texture shader component-wise, producing per-vertex color
// modulation over a textured triangle.
type TriangleModulatingShader struct {
	color   *TriangleColorShader
	texture *TriangleTextureShader

	colorBuf []Pixel
	texBuf   []Pixel
}

// NewTriangleModulatingShader combines the two sub-shaders. Both are
// shared handles: Update calls on them affect this shader too.
// Returns nil when either sub-shader is nil.
func NewTriangleModulatingShader(color *TriangleColorShader, texture *TriangleTextureShader) *TriangleModulatingShader {
	if color == nil || texture == nil {
		return nil
	}
	return &TriangleModulatingShader{color: color, texture: texture}
}

// Update re-targets both sub-shaders at a new triangle.
func (s *TriangleModulatingShader) Update(p0, p1, p2 Point, c0, c1, c2 Color, t0, t1, t2 Point) {
	s.color.Update(p0, p1, p2, c0, c1, c2)
	s.texture.Update(p0, p1, p2, t0, t1, t2)
}

// IsOpaque implements Shader.
func (s *TriangleModulatingShader) IsOpaque() bool {
	return s.color.IsOpaque() && s.texture.IsOpaque()
}

// SetContext implements Shader.
func (s *TriangleModulatingShader) SetContext(ctm Matrix) bool {
	return s.color.SetContext(ctm) && s.texture.SetContext(ctm)
}

// ShadeRow implements Shader.
func (s *TriangleModulatingShader) ShadeRow(x, y, count int, row []Pixel) {
	if cap(s.colorBuf) < count {
		s.colorBuf = make([]Pixel, count)
		s.texBuf = make([]Pixel, count)
	}
	cr := s.colorBuf[:count]
	tr := s.texBuf[:count]

	s.color.ShadeRow(x, y, count, cr)
	s.texture.ShadeRow(x, y, count, tr)

	for i := 0; i < count; i++ {
		row[i] = blendModulate(cr[i], tr[i])
	}
}
