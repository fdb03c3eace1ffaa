package raster

import "github.com/chewxy/math32"

// NewVoronoiShader creates a shader that colors each pixel with the color
// of the nearest site point (Euclidean distance, in the geometry's
// coordinate space).
//
// Returns nil when the slices are empty or of different lengths.
func NewVoronoiShader(points []Point, colors []Color) Shader {
	if len(points) < 1 || len(points) != len(colors) {
		return nil
	}
	s := &voronoiShader{
		points: make([]Point, len(points)),
		colors: make([]Color, len(colors)),
		opaque: true,
	}
	copy(s.points, points)
	copy(s.colors, colors)
	for _, c := range colors {
		if c.A != 1 {
			s.opaque = false
		}
	}
	return s
}

type voronoiShader struct {
	points []Point
	colors []Color
	opaque bool

	invCTM Matrix
}

func (s *voronoiShader) IsOpaque() bool { return s.opaque }

func (s *voronoiShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.invCTM = inv
	return true
}

func (s *voronoiShader) ShadeRow(x, y, count int, row []Pixel) {
	fy := float32(y) + 0.5

	for i := 0; i < count; i++ {
		pt := s.invCTM.TransformPoint(Pt(float32(x+i)+0.5, fy))

		best := 0
		bestDist := float32(math32.MaxFloat32)
		for k, site := range s.points {
			if d := pt.Distance(site); d < bestDist {
				bestDist = d
				best = k
			}
		}
		row[i] = s.colors[best].Pixel()
	}
}
