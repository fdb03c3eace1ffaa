package raster

import "github.com/chewxy/math32"

// floatTolerance is the threshold below which per-pixel increments are
// treated as zero when specializing shader inner loops.
const floatTolerance = 0.001

func nearlyZero(v float32) bool {
	return math32.Abs(v) < floatTolerance
}

// roundToInt rounds to the nearest integer, halves toward +inf.
func roundToInt(f float32) int {
	return int(math32.Floor(f + 0.5))
}

func floorToInt(f float32) int {
	return int(math32.Floor(f))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pinToUnit(v float32) float32 {
	return clampf(v, 0, 1)
}
