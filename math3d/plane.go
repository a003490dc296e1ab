// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// Plane divides 3D space into points above it, points below it, and
// points within it. The signed distance s from a point (x,y,z) to a
// plane is s = a*x + b*y + c*z + d, where (a,b,c,d) are the plane
// coefficients. Points within the plane satisfy s = 0.
//
// Coefficients are kept normalized so that the normal vector (a,b,c)
// has unit length and signed distances are true distances.
type Plane struct {
	A float64
	B float64
	C float64
	D float64
}

// NewPlane returns a new plane with the specified coefficients,
// normalized.
func NewPlane(a, b, c, d float64) Plane {
	p := Plane{}
	p.Set(a, b, c, d)
	return p
}

// NewPlaneFromPointNormal returns a new plane containing the point p
// and orthogonal to the normal vector n, which points toward the space
// above the plane.
func NewPlaneFromPointNormal(p Point3, n Vector3) Plane {
	return NewPlane(n.X, n.Y, n.Z, -(n.X*p.X + n.Y*p.Y + n.Z*p.Z))
}

// Set sets the coefficients of this plane, normalizing them.
func (p *Plane) Set(a, b, c, d float64) {
	s := 1 / Sqrt(a*a+b*b+c*c)
	p.A = a * s
	p.B = b * s
	p.C = c * s
	p.D = d * s
}

// Normal returns the unit vector normal to this plane, pointing toward
// the space above it.
func (p Plane) Normal() Vector3 {
	return Vector3{p.A, p.B, p.C}
}

// DistanceTo returns the signed distance from this plane to the point
// q: negative below the plane, zero within it, positive above it.
func (p Plane) DistanceTo(q Point3) float64 {
	return p.A*q.X + p.B*q.Y + p.C*q.Z + p.D
}

// Transform transforms this plane by the matrix m that transforms
// points from old to new coordinates. If the inverse of m is already
// known, [Plane.TransformWithInverse] is more efficient.
func (p *Plane) Transform(m Matrix4) error {
	mi, err := m.Inverse()
	if err != nil {
		return err
	}
	p.TransformWithInverse(mi)
	return nil
}

// TransformWithInverse transforms this plane, given the inverse mi of
// the matrix that transforms points from old to new coordinates. The
// new coefficients are the transpose of mi times the old coefficient
// vector.
func (p *Plane) TransformWithInverse(mi Matrix4) {
	a := mi[0]*p.A + mi[1]*p.B + mi[2]*p.C + mi[3]*p.D
	b := mi[4]*p.A + mi[5]*p.B + mi[6]*p.C + mi[7]*p.D
	c := mi[8]*p.A + mi[9]*p.B + mi[10]*p.C + mi[11]*p.D
	d := mi[12]*p.A + mi[13]*p.B + mi[14]*p.C + mi[15]*p.D
	p.Set(a, b, c, d)
}
