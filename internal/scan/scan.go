// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scan converts line segments and Bezier curves into edges and
// sweeps them into horizontal pixel spans.
//
// The package is deliberately self-contained: it defines its own Point and
// Rect (copies of the root package types, kept local to avoid an import
// cycle) and reports coverage through a SpanFunc callback. Coverage is
// binary at pixel centers; there is no antialiasing.
package scan

import "github.com/chewxy/math32"

// Point is a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned clip rectangle with inclusive edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// SpanFunc receives one horizontal run of covered pixels: columns
// [left, right) on row y.
type SpanFunc func(left, right, y int)

// roundToInt rounds to the nearest integer, halves toward +inf.
func roundToInt(f float32) int {
	return int(math32.Floor(f + 0.5))
}

func ceilToInt(f float32) int {
	return int(math32.Ceil(f))
}
