package raster

// DrawMesh draws triangleCount triangles, each given by three successive
// entries of indices referencing verts. Optional per-vertex colors are
// interpolated across each triangle; optional per-vertex texture
// coordinates map the paint's shader onto each triangle. When both are
// present the two are multiplied component-wise per pixel. Texture
// coordinates are ignored when the paint has no shader; with neither
// colors nor usable texture coordinates nothing is drawn.
//
// One triangle shader instance is reused across all triangles.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, triangleCount int, indices []int, paint Paint) {
	if triangleCount < 1 || len(indices) < 3 {
		return
	}

	hasColors := colors != nil
	hasTexs := texs != nil && paint.Shader != nil

	var shader Shader
	var update func(i0, i1, i2 int)

	switch {
	case hasColors && hasTexs:
		colorShader := NewTriangleColorShader(
			verts[indices[0]], verts[indices[1]], verts[indices[2]],
			colors[indices[0]], colors[indices[1]], colors[indices[2]],
		)
		texShader := NewTriangleTextureShader(paint.Shader,
			verts[indices[0]], verts[indices[1]], verts[indices[2]],
			texs[indices[0]], texs[indices[1]], texs[indices[2]],
		)
		modulating := NewTriangleModulatingShader(colorShader, texShader)
		shader = modulating
		update = func(i0, i1, i2 int) {
			modulating.Update(
				verts[i0], verts[i1], verts[i2],
				colors[i0], colors[i1], colors[i2],
				texs[i0], texs[i1], texs[i2],
			)
		}
	case hasColors:
		colorShader := NewTriangleColorShader(
			verts[indices[0]], verts[indices[1]], verts[indices[2]],
			colors[indices[0]], colors[indices[1]], colors[indices[2]],
		)
		shader = colorShader
		update = func(i0, i1, i2 int) {
			colorShader.Update(
				verts[i0], verts[i1], verts[i2],
				colors[i0], colors[i1], colors[i2],
			)
		}
	case hasTexs:
		texShader := NewTriangleTextureShader(paint.Shader,
			verts[indices[0]], verts[indices[1]], verts[indices[2]],
			texs[indices[0]], texs[indices[1]], texs[indices[2]],
		)
		shader = texShader
		update = func(i0, i1, i2 int) {
			texShader.Update(
				verts[i0], verts[i1], verts[i2],
				texs[i0], texs[i1], texs[i2],
			)
		}
	default:
		return
	}

	triPaint := paint
	triPaint.Shader = shader

	var tri [3]Point
	for i := 0; i < triangleCount*3; i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		update(i0, i1, i2)

		tri[0] = verts[i0]
		tri[1] = verts[i1]
		tri[2] = verts[i2]
		c.DrawConvexPolygon(tri[:], triPaint)
	}
}

// DrawQuad draws the quad, optionally carrying a color and/or texture
// coordinate at each corner, tessellated into 2*(level+1)^2 triangles:
// level 0 is two triangles, level 1 is eight, and so on. Corners are given
// top-left, top-right, bottom-right, bottom-left, and every sub-quad is
// split along its top-right to bottom-left diagonal.
func (c *Canvas) DrawQuad(verts [4]Point, colors []Color, texs []Point, level int, paint Paint) {
	if level < 0 {
		level = 0
	}

	samples := level + 2 // grid vertices per side
	subQuads := level + 1

	gridVerts := make([]Point, 0, samples*samples)
	var gridColors []Color
	if colors != nil {
		gridColors = make([]Color, 0, samples*samples)
	}
	var gridTexs []Point
	if texs != nil {
		gridTexs = make([]Point, 0, samples*samples)
	}

	for row := 0; row < samples; row++ {
		v := float32(row) / float32(subQuads)
		for col := 0; col < samples; col++ {
			u := float32(col) / float32(subQuads)
			gridVerts = append(gridVerts, quadSamplePoint(verts, u, v))
			if colors != nil {
				gridColors = append(gridColors, quadSampleColor(colors, u, v))
			}
			if texs != nil {
				gridTexs = append(gridTexs, quadSamplePoint([4]Point{texs[0], texs[1], texs[2], texs[3]}, u, v))
			}
		}
	}

	indices := make([]int, 0, subQuads*subQuads*6)
	for row := 0; row < subQuads; row++ {
		for col := 0; col < subQuads; col++ {
			topLeft := row*samples + col
			topRight := topLeft + 1
			bottomLeft := topLeft + samples
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, topRight, bottomLeft,
				topRight, bottomRight, bottomLeft,
			)
		}
	}

	c.DrawMesh(gridVerts, gridColors, gridTexs, subQuads*subQuads*2, indices, paint)
}

// quadSamplePoint bilinearly samples the quad corners (top-left,
// top-right, bottom-right, bottom-left) at (u, v).
func quadSamplePoint(corners [4]Point, u, v float32) Point {
	return corners[0].Mul((1 - u) * (1 - v)).
		Add(corners[1].Mul(u * (1 - v))).
		Add(corners[3].Mul((1 - u) * v)).
		Add(corners[2].Mul(u * v))
}

func quadSampleColor(corners []Color, u, v float32) Color {
	return corners[0].Scale((1 - u) * (1 - v)).
		Add(corners[1].Scale(u * (1 - v))).
		Add(corners[3].Scale((1 - u) * v)).
		Add(corners[2].Scale(u * v))
}
