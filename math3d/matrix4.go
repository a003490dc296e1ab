// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import (
	"errors"
	"math"
)

// ErrSingular is returned when inverting a matrix whose determinant
// is zero.
var ErrSingular = errors.New("math3d: singular matrix has no inverse")

// Matrix4 is a 4x4 matrix with elements stored contiguously in
// column-major order, as in OpenGL:
//
//	| m00  m01  m02  m03 |     | m[ 0]  m[ 4]  m[ 8]  m[12] |
//	| m10  m11  m12  m13 |  =  | m[ 1]  m[ 5]  m[ 9]  m[13] |
//	| m20  m21  m22  m23 |     | m[ 2]  m[ 6]  m[10]  m[14] |
//	| m30  m31  m32  m33 |     | m[ 3]  m[ 7]  m[11]  m[15] |
type Matrix4 [16]float64

// Identity4 returns a new identity matrix.
func Identity4() Matrix4 {
	var m Matrix4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// NewMatrix4 returns a new matrix with the specified elements,
// in row-major argument order: mij is the element in row i, column j.
func NewMatrix4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64) Matrix4 {
	return Matrix4{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// Element returns the element in row i, column j.
func (m *Matrix4) Element(i, j int) float64 {
	return m[j*4+i]
}

// SetElement sets the element in row i, column j.
func (m *Matrix4) SetElement(i, j int, e float64) {
	m[j*4+i] = e
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mul returns the matrix product m*a.
func (m Matrix4) Mul(a Matrix4) Matrix4 {
	var c Matrix4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			c[j*4+i] = m[i]*a[j*4] + m[4+i]*a[j*4+1] +
				m[8+i]*a[j*4+2] + m[12+i]*a[j*4+3]
		}
	}
	return c
}

// MulTranspose returns the matrix product m*a' of this matrix and the
// transpose of the matrix a.
func (m Matrix4) MulTranspose(a Matrix4) Matrix4 {
	return m.Mul(a.Transpose())
}

// TransposeMul returns the matrix product m'*a of the transpose of this
// matrix and the matrix a.
func (m Matrix4) TransposeMul(a Matrix4) Matrix4 {
	return m.Transpose().Mul(a)
}

// MulPoint3 returns the product m*p of this matrix and a point p.
// The w coordinate of the point is assumed to equal one, and the
// returned point is homogenized: scaled such that its w equals one.
func (m Matrix4) MulPoint3(p Point3) Point3 {
	qx := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	qy := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	qz := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	qw := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if qw != 1 {
		s := 1 / qw
		qx *= s
		qy *= s
		qz *= s
	}
	return Point3{qx, qy, qz}
}

// MulPoint4 returns the product m*p of this matrix and a homogeneous
// point p. The returned point is not homogenized.
func (m Matrix4) MulPoint4(p Point4) Point4 {
	return Point4{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]*p.W,
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]*p.W,
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]*p.W,
		m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]*p.W,
	}
}

// MulVector3 returns the product m*v of this matrix and a vector v,
// using only the upper-left 3x3 elements of this matrix.
func (m Matrix4) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// TransposeMulPoint3 returns the product m'*p of the transpose of this
// matrix and a point p, homogenized.
func (m Matrix4) TransposeMulPoint3(p Point3) Point3 {
	return m.Transpose().MulPoint3(p)
}

// TransposeMulVector3 returns the product m'*v of the transpose of this
// matrix and a vector v, using only the upper-left 3x3 elements.
func (m Matrix4) TransposeMulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Determinant returns the determinant of this matrix.
func (m Matrix4) Determinant() float64 {
	_, d := m.adjugateTranspose()
	return d
}

// Inverse returns the inverse of this matrix, computed in closed form
// by cofactor (adjugate) expansion for numerical determinism on small
// matrices. Returns [ErrSingular] if the determinant is zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	b, d := m.adjugateTranspose()
	if d == 0 {
		return Matrix4{}, ErrSingular
	}
	s := 1 / d
	for i := range b {
		b[i] *= s
	}
	return b, nil
}

// adjugateTranspose computes the cofactor matrix of the transpose of m
// (the adjugate, laid out so that dividing by the determinant yields
// the inverse) along with the determinant. The expansion follows the
// pair-product scheme of Intel technical report AP-928, Streaming SIMD
// Extensions - Inverse of 4x4 Matrix.
func (m Matrix4) adjugateTranspose() (Matrix4, float64) {
	// Transpose.
	t00, t01, t02, t03 := m[0], m[4], m[8], m[12]
	t04, t08, t12 := m[1], m[2], m[3]
	t05, t09, t13 := m[5], m[6], m[7]
	t06, t10, t14 := m[9], m[10], m[11]
	t07, t11, t15 := m[13], m[14], m[15]

	var b Matrix4

	// Pairs for the first eight cofactors.
	u00 := t10 * t15
	u01 := t11 * t14
	u02 := t09 * t15
	u03 := t11 * t13
	u04 := t09 * t14
	u05 := t10 * t13
	u06 := t08 * t15
	u07 := t11 * t12
	u08 := t08 * t14
	u09 := t10 * t12
	u10 := t08 * t13
	u11 := t09 * t12

	b[0] = u00*t05 + u03*t06 + u04*t07 - u01*t05 - u02*t06 - u05*t07
	b[1] = u01*t04 + u06*t06 + u09*t07 - u00*t04 - u07*t06 - u08*t07
	b[2] = u02*t04 + u07*t05 + u10*t07 - u03*t04 - u06*t05 - u11*t07
	b[3] = u05*t04 + u08*t05 + u11*t06 - u04*t04 - u09*t05 - u10*t06
	b[4] = u01*t01 + u02*t02 + u05*t03 - u00*t01 - u03*t02 - u04*t03
	b[5] = u00*t00 + u07*t02 + u08*t03 - u01*t00 - u06*t02 - u09*t03
	b[6] = u03*t00 + u06*t01 + u11*t03 - u02*t00 - u07*t01 - u10*t03
	b[7] = u04*t00 + u09*t01 + u10*t02 - u05*t00 - u08*t01 - u11*t02

	// Pairs for the second eight cofactors.
	u00 = t02 * t07
	u01 = t03 * t06
	u02 = t01 * t07
	u03 = t03 * t05
	u04 = t01 * t06
	u05 = t02 * t05
	u06 = t00 * t07
	u07 = t03 * t04
	u08 = t00 * t06
	u09 = t02 * t04
	u10 = t00 * t05
	u11 = t01 * t04

	b[8] = u00*t13 + u03*t14 + u04*t15 - u01*t13 - u02*t14 - u05*t15
	b[9] = u01*t12 + u06*t14 + u09*t15 - u00*t12 - u07*t14 - u08*t15
	b[10] = u02*t12 + u07*t13 + u10*t15 - u03*t12 - u06*t13 - u11*t15
	b[11] = u05*t12 + u08*t13 + u11*t14 - u04*t12 - u09*t13 - u10*t14
	b[12] = u02*t10 + u05*t11 + u01*t09 - u04*t11 - u00*t09 - u03*t10
	b[13] = u08*t11 + u00*t08 + u07*t10 - u06*t10 - u09*t11 - u01*t08
	b[14] = u06*t09 + u11*t11 + u03*t08 - u10*t11 - u02*t08 - u07*t09
	b[15] = u10*t10 + u04*t08 + u09*t09 - u08*t09 - u11*t10 - u05*t08

	d := t00*b[0] + t01*b[1] + t02*b[2] + t03*b[3]
	return b, d
}

// Translate returns a new translation matrix for the vector (x,y,z).
func Translate(x, y, z float64) Matrix4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a new scaling matrix with factors (x,y,z).
func Scale(x, y, z float64) Matrix4 {
	var m Matrix4
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}

// RotateX returns a new rotation matrix about the x axis by the
// specified angle in degrees, as in glRotated.
func RotateX(deg float64) Matrix4 {
	s, c := math.Sincos(DegToRad(deg))
	m := Identity4()
	m[5], m[9] = c, -s
	m[6], m[10] = s, c
	return m
}

// RotateY returns a new rotation matrix about the y axis by the
// specified angle in degrees.
func RotateY(deg float64) Matrix4 {
	s, c := math.Sincos(DegToRad(deg))
	m := Identity4()
	m[0], m[8] = c, s
	m[2], m[10] = -s, c
	return m
}

// RotateZ returns a new rotation matrix about the z axis by the
// specified angle in degrees.
func RotateZ(deg float64) Matrix4 {
	s, c := math.Sincos(DegToRad(deg))
	m := Identity4()
	m[0], m[4] = c, -s
	m[1], m[5] = s, c
	return m
}

// Rotate returns a new rotation matrix about the axis (x,y,z) by the
// specified angle in degrees, as in glRotated.
func Rotate(deg, x, y, z float64) Matrix4 {
	v := Vec3(x, y, z).Normalize()
	s, c := math.Sincos(DegToRad(deg))
	t := 1 - c
	return NewMatrix4(
		t*v.X*v.X+c, t*v.X*v.Y-s*v.Z, t*v.X*v.Z+s*v.Y, 0,
		t*v.X*v.Y+s*v.Z, t*v.Y*v.Y+c, t*v.Y*v.Z-s*v.X, 0,
		t*v.X*v.Z-s*v.Y, t*v.Y*v.Z+s*v.X, t*v.Z*v.Z+c, 0,
		0, 0, 0, 1)
}

// Frustum returns a new perspective-projection matrix with the
// specified frustum, parameterized as in glFrustum. The near and far
// clipping planes map to cube (clip) z coordinates -1 and +1.
func Frustum(left, right, bottom, top, znear, zfar float64) Matrix4 {
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(zfar + znear) / (zfar - znear)
	d := -2 * zfar * znear / (zfar - znear)
	return NewMatrix4(
		2*znear/(right-left), 0, a, 0,
		0, 2*znear/(top-bottom), b, 0,
		0, 0, c, d,
		0, 0, -1, 0)
}

// Perspective returns a new perspective-projection matrix,
// parameterized as in gluPerspective: fovy is the field of view in
// degrees in the vertical (y) direction, aspect is width over height.
func Perspective(fovy, aspect, znear, zfar float64) Matrix4 {
	t := math.Tan(DegToRad(fovy) / 2)
	top := znear * t
	right := top * aspect
	return Frustum(-right, right, -top, top, znear, zfar)
}

// Ortho returns a new orthographic-projection matrix, parameterized as
// in glOrtho. The near and far clipping planes map to cube (clip) z
// coordinates -1 and +1.
func Ortho(left, right, bottom, top, znear, zfar float64) Matrix4 {
	tx := -(right + left) / (right - left)
	ty := -(top + bottom) / (top - bottom)
	tz := -(zfar + znear) / (zfar - znear)
	return NewMatrix4(
		2/(right-left), 0, 0, tx,
		0, 2/(top-bottom), 0, ty,
		0, 0, -2/(zfar-znear), tz,
		0, 0, 0, 1)
}
