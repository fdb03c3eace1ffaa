package raster

import "github.com/chewxy/math32"

// NewLinearGradient creates a shader that sweeps the given colors along the
// line from p0 to p1, evenly spaced: colors[0] sits at p0, the last color
// at p1. The tile mode controls sampling outside the line segment.
//
// Returns nil when no colors are given. With one color the shader is a
// constant; with two colors a specialized incremental loop is used.
func NewLinearGradient(p0, p1 Point, colors []Color, tile TileMode) Shader {
	switch {
	case len(colors) < 1:
		return nil
	case len(colors) == 1:
		return &constantShader{color: colors[0], pixel: colors[0].Pixel()}
	case len(colors) == 2:
		return newLinearGradient2(p0, p1, colors[0], colors[1], tile)
	default:
		return newLinearGradientN(p0, p1, colors, tile)
	}
}

// gradientMatrix maps the unit interval on the x axis onto the segment
// p0..p1 in geometry space.
func gradientMatrix(p0, p1 Point) Matrix {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	return Matrix{
		A: dx, B: -dy, C: p0.X,
		D: dy, E: dx, F: p0.Y,
	}
}

// unitTile wraps a unit-space parameter according to the tile mode.
// Repeat takes the fractional part; mirror is a triangle wave of period 2.
func unitTile(tile TileMode) func(float32) float32 {
	switch tile {
	case TileRepeat:
		return func(t float32) float32 {
			return t - float32(floorToInt(t))
		}
	case TileMirror:
		return func(t float32) float32 {
			half := t / 2
			return 2 * math32.Abs(half-float32(floorToInt(half+0.5)))
		}
	default:
		return pinToUnit
	}
}

// constantShader emits a single premultiplied pixel everywhere.
type constantShader struct {
	color Color
	pixel Pixel
}

func (s *constantShader) IsOpaque() bool { return s.color.A == 1 }

func (s *constantShader) SetContext(ctm Matrix) bool { return true }

func (s *constantShader) ShadeRow(x, y, count int, row []Pixel) {
	p := s.pixel
	for i := 0; i < count; i++ {
		row[i] = p
	}
}

// linearGradient2 interpolates between exactly two colors.
type linearGradient2 struct {
	c0, c1 Color
	diff   Color
	opaque bool
	tile   TileMode

	unitToDevice Matrix
	inv          Matrix
}

func newLinearGradient2(p0, p1 Point, c0, c1 Color, tile TileMode) *linearGradient2 {
	return &linearGradient2{
		c0:           c0,
		c1:           c1,
		diff:         c1.Sub(c0),
		opaque:       c0.A == 1 && c1.A == 1,
		tile:         tile,
		unitToDevice: gradientMatrix(p0, p1),
	}
}

func (s *linearGradient2) IsOpaque() bool { return s.opaque }

func (s *linearGradient2) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(s.unitToDevice).Invert()
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

func (s *linearGradient2) ShadeRow(x, y, count int, row []Pixel) {
	pack := colorPacker(s.opaque)

	fy := float32(y) + 0.5
	t := s.inv.A*(float32(x)+0.5) + s.inv.B*fy + s.inv.C
	tEnd := s.inv.A*(float32(x+count)-0.5) + s.inv.B*fy + s.inv.C
	step := s.inv.A

	// When the whole span stays inside the unit interval the tile mode
	// cannot change anything, so the loop steps the color directly.
	if t >= 0 && t <= 1 && tEnd >= 0 && tEnd <= 1 {
		col := s.c0.Add(s.diff.Scale(t))
		dCol := s.diff.Scale(step)
		for i := 0; i < count; i++ {
			row[i] = pack(col)
			col = col.Add(dCol)
		}
		return
	}

	tilef := unitTile(s.tile)
	for i := 0; i < count; i++ {
		tt := tilef(t)
		row[i] = pack(s.c0.Add(s.diff.Scale(tt)))
		t += step
	}
}

// linearGradientN interpolates across three or more evenly spaced colors.
// The parameter is kept scaled by the number of color gaps so that the
// segment index is a floor away.
type linearGradientN struct {
	colors []Color
	diffs  []Color
	opaque bool
	tile   TileMode

	unitToDevice Matrix
	inv          Matrix
}

func newLinearGradientN(p0, p1 Point, colors []Color, tile TileMode) *linearGradientN {
	s := &linearGradientN{
		colors:       make([]Color, len(colors)),
		diffs:        make([]Color, len(colors)-1),
		opaque:       true,
		tile:         tile,
		unitToDevice: gradientMatrix(p0, p1),
	}
	copy(s.colors, colors)
	for i := 1; i < len(colors); i++ {
		s.diffs[i-1] = colors[i].Sub(colors[i-1])
	}
	for _, c := range colors {
		if c.A != 1 {
			s.opaque = false
		}
	}
	return s
}

func (s *linearGradientN) IsOpaque() bool { return s.opaque }

func (s *linearGradientN) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(s.unitToDevice).Invert()
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

// scaledTile wraps a parameter scaled to [0, gaps] according to the tile
// mode.
func scaledTile(tile TileMode, gaps float32) func(float32) float32 {
	switch tile {
	case TileRepeat:
		return func(v float32) float32 {
			unit := v / gaps
			return (unit - float32(floorToInt(unit))) * gaps
		}
	case TileMirror:
		return func(v float32) float32 {
			half := v / gaps / 2
			mirrored := 2 * math32.Abs(half-float32(floorToInt(half+0.5)))
			return mirrored * gaps
		}
	default:
		return func(v float32) float32 { return clampf(v, 0, gaps) }
	}
}

func (s *linearGradientN) ShadeRow(x, y, count int, row []Pixel) {
	pack := colorPacker(s.opaque)
	gaps := float32(len(s.colors) - 1)
	tilef := scaledTile(s.tile, gaps)

	fy := float32(y) + 0.5
	t := s.inv.A*(float32(x)+0.5) + s.inv.B*fy + s.inv.C
	scaled := t * gaps
	step := s.inv.A * gaps

	for i := 0; i < count; i++ {
		v := tilef(scaled)
		idx := floorToInt(v)
		// v can land exactly on the last color; pin to the last gap.
		if idx > len(s.colors)-2 {
			idx = len(s.colors) - 2
		}
		if idx < 0 {
			idx = 0
		}
		frac := v - float32(idx)
		row[i] = pack(s.colors[idx].Add(s.diffs[idx].Scale(frac)))
		scaled += step
	}
}
