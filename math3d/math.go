// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math3d is a float64 based point, vector, matrix, and plane
// package for 3D graphics. Points and vectors are distinct types:
// points are translated by transforms, vectors are not.
//
// Matrices are 4x4 and column-major, as in OpenGL, so that their
// packed elements can be handed directly to an immediate-mode
// rendering backend.
package math3d

import "math"

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = math.Inf(1)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * DegToRadFactor
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * RadToDegFactor
}

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Min returns the smaller of x and y.
func Min(x, y float64) float64 {
	return math.Min(x, y)
}

// Max returns the larger of x and y.
func Max(x, y float64) float64 {
	return math.Max(x, y)
}
