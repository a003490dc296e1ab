// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Vector3 is a vector in 3D space: a direction with magnitude.
// Transforms rotate and scale vectors but never translate them.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given x, y, and z components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Add returns the vector sum v + u.
func (v Vector3) Add(u Vector3) Vector3 {
	return Vector3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the vector difference v - u.
func (v Vector3) Sub(u Vector3) Vector3 {
	return Vector3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Negate returns the negation -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// MulScalar returns the vector v scaled by s.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and u.
func (v Vector3) Mul(u Vector3) Vector3 {
	return Vector3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

// Dot returns the dot product of v and u.
func (v Vector3) Dot(u Vector3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v x u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the length of the vector.
func (v Vector3) Length() float64 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared length of the vector,
// avoiding a square root.
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector with the direction of v.
// The zero vector is returned unchanged; normalizing it is an
// expected degenerate case, not an error.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}
