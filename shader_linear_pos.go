package raster

// NewLinearPositionGradient creates a linear gradient whose colors sit at
// caller-specified positions along the line p0..p1 rather than evenly.
// positions must be monotonically increasing with positions[0] == 0 and
// positions[len-1] == 1; color[i] sits at (1-positions[i])*p0 +
// positions[i]*p1. Sampling outside the line clamps.
//
// Returns nil when the inputs are malformed.
func NewLinearPositionGradient(p0, p1 Point, colors []Color, positions []float32) Shader {
	if len(colors) < 2 || len(colors) != len(positions) {
		return nil
	}
	if positions[0] != 0 || positions[len(positions)-1] != 1 {
		return nil
	}

	s := &linearPositionGradient{
		colors:       make([]Color, len(colors)),
		positions:    make([]float32, len(positions)),
		opaque:       true,
		unitToDevice: gradientMatrix(p0, p1),
	}
	copy(s.colors, colors)
	copy(s.positions, positions)
	for _, c := range colors {
		if c.A != 1 {
			s.opaque = false
		}
	}
	return s
}

type linearPositionGradient struct {
	colors    []Color
	positions []float32
	opaque    bool

	unitToDevice Matrix
	inv          Matrix
}

func (s *linearPositionGradient) IsOpaque() bool { return s.opaque }

func (s *linearPositionGradient) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Multiply(s.unitToDevice).Invert()
	if !ok {
		return false
	}
	s.inv = inv
	return true
}

func (s *linearPositionGradient) ShadeRow(x, y, count int, row []Pixel) {
	pack := colorPacker(s.opaque)
	fy := float32(y) + 0.5

	for i := 0; i < count; i++ {
		pt := s.inv.TransformPoint(Pt(float32(x+i)+0.5, fy))
		t := pinToUnit(pt.X)

		// Linear scan for the bracketing pair. The <= on the lower side
		// keeps exact-stop samples on the stop's own color.
		var leftPos, rightPos float32
		var leftCol, rightCol Color
		haveRight := false
		for k := range s.positions {
			if s.positions[k] <= t {
				leftPos = s.positions[k]
				leftCol = s.colors[k]
			} else {
				rightPos = s.positions[k]
				rightCol = s.colors[k]
				haveRight = true
				break
			}
		}
		if !haveRight {
			row[i] = pack(leftCol)
			continue
		}

		span := rightPos - leftPos
		leftWeight := (rightPos - t) / span
		rightWeight := (t - leftPos) / span
		row[i] = pack(leftCol.Scale(leftWeight).Add(rightCol.Scale(rightWeight)))
	}
}
