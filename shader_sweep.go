package raster

import "github.com/chewxy/math32"

// NewSweepGradient creates a shader sweeping the colors around center,
// distributed evenly: colors[k] sits at startRadians + 2pi*k/len(colors),
// and the last segment blends from the last color back to colors[0].
//
// Returns nil when no colors are given.
func NewSweepGradient(center Point, startRadians float32, colors []Color) Shader {
	if len(colors) < 1 {
		return nil
	}
	s := &sweepGradient{
		center: center,
		start:  startRadians,
		colors: make([]Color, len(colors)),
		opaque: true,
	}
	copy(s.colors, colors)
	for _, c := range colors {
		if c.A != 1 {
			s.opaque = false
		}
	}
	return s
}

type sweepGradient struct {
	center Point
	start  float32
	colors []Color
	opaque bool

	invCTM Matrix
}

func (s *sweepGradient) IsOpaque() bool { return s.opaque }

func (s *sweepGradient) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.invCTM = inv
	return true
}

func (s *sweepGradient) ShadeRow(x, y, count int, row []Pixel) {
	n := len(s.colors)
	fy := float32(y) + 0.5

	for i := 0; i < count; i++ {
		pt := s.invCTM.TransformPoint(Pt(float32(x+i)+0.5, fy))

		angle := math32.Atan2(pt.Y-s.center.Y, pt.X-s.center.X) - s.start
		if angle < 0 {
			angle += 2 * math32.Pi
		}
		unit := pinToUnit(angle / (2 * math32.Pi))

		// Scale to [0, n); the last segment wraps back to colors[0].
		scaled := unit * float32(n)
		prev := floorToInt(scaled)
		if prev >= n {
			prev, scaled = 0, 0
		}
		next := prev + 1
		if next >= n {
			next = 0
		}

		t := scaled - float32(prev)
		col := s.colors[prev].Scale(1 - t).Add(s.colors[next].Scale(t))
		row[i] = col.Pixel()
	}
}
