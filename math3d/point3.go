// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Point3 is a position in 3D space. Unlike a [Vector3], a point is
// translated by transforms; the difference of two points is a vector.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns a new [Point3] with the given x, y, and z coordinates.
func Pt3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// Plus returns the point p translated by the vector v.
func (p Point3) Plus(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Minus returns the vector from the point q to the point p.
func (p Point3) Minus(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// MinusVector returns the point p translated by the negation of v.
func (p Point3) MinusVector(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Vector returns the vector from the origin to the point p.
func (p Point3) Vector() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

// DistanceTo returns the distance from p to q.
func (p Point3) DistanceTo(q Point3) float64 {
	return p.Minus(q).Length()
}

// DistanceSquaredTo returns the squared distance from p to q,
// avoiding a square root.
func (p Point3) DistanceSquaredTo(q Point3) float64 {
	return p.Minus(q).LengthSquared()
}

// Affine returns the point (1-a)*p + a*q on the line through p and q.
func (p Point3) Affine(a float64, q Point3) Point3 {
	b := 1 - a
	return Point3{b*p.X + a*q.X, b*p.Y + a*q.Y, b*p.Z + a*q.Z}
}

// Point4 is a position in 3D space with homogeneous coordinate w.
type Point4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Pt4 returns a new [Point4] with the given x, y, z, and w coordinates.
func Pt4(x, y, z, w float64) Point4 {
	return Point4{x, y, z, w}
}

// Point3 returns the homogenized 3D point, scaled such that w equals one.
// The w coordinate must be nonzero.
func (p Point4) Point3() Point3 {
	s := 1 / p.W
	return Point3{p.X * s, p.Y * s, p.Z * s}
}
