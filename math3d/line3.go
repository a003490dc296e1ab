// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

// epsParallel rejects ray-triangle denominators so small that the
// segment is effectively parallel to the triangle's plane. Division by
// such a denominator would produce meaningless (or non-finite) hits.
const epsParallel = 1e-12

// Line3 is a line segment in 3D space, from endpoint A to endpoint B.
type Line3 struct {
	A Point3
	B Point3
}

// NewLine3 returns a new line segment with the given endpoints.
func NewLine3(a, b Point3) Line3 {
	return Line3{a, b}
}

// Delta returns the vector from endpoint A to endpoint B.
func (l Line3) Delta() Vector3 {
	return l.B.Minus(l.A)
}

// Length returns the length of this segment.
func (l Line3) Length() float64 {
	return l.Delta().Length()
}

// Transform transforms both endpoints of this segment by the matrix m.
func (l *Line3) Transform(m Matrix4) {
	l.A = m.MulPoint3(l.A)
	l.B = m.MulPoint3(l.B)
}

// ClosestParamToPoint returns the parameter t in [0,1] such that
// A + t*(B-A) is the point on this segment closest to the point p.
func (l Line3) ClosestParamToPoint(p Point3) float64 {
	d := l.Delta()
	dd := d.LengthSquared()
	if dd == 0 {
		return 0 // degenerate segment
	}
	t := p.Minus(l.A).Dot(d) / dd
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ClosestPointToPoint returns the point on this segment closest to the
// point p.
func (l Line3) ClosestPointToPoint(p Point3) Point3 {
	return l.A.Plus(l.Delta().MulScalar(l.ClosestParamToPoint(p)))
}

// DistanceToPoint returns the distance from this segment to the point p.
func (l Line3) DistanceToPoint(p Point3) float64 {
	return l.ClosestPointToPoint(p).DistanceTo(p)
}

// IntersectTriangle returns the point at which this segment intersects
// the triangle with vertices (a,b,c), and true if such a point exists.
// The test is bounded by the segment: intersections behind endpoint A
// or beyond endpoint B are rejected, as are segments nearly parallel
// to the triangle's plane.
//
// The algorithm is that of Moller and Trumbore, solving for the
// barycentric coordinates (u,v) of the hit and the segment parameter t
// by Cramer's rule on the 3x3 system.
func (l Line3) IntersectTriangle(a, b, c Point3) (Point3, bool) {
	d := l.Delta()
	e1 := b.Minus(a)
	e2 := c.Minus(a)

	p := d.Cross(e2)
	det := e1.Dot(p)
	if det > -epsParallel && det < epsParallel {
		return Point3{}, false
	}
	inv := 1 / det

	t := l.A.Minus(a)
	u := t.Dot(p) * inv
	if u < 0 || u > 1 {
		return Point3{}, false
	}

	q := t.Cross(e1)
	v := d.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return Point3{}, false
	}

	s := e2.Dot(q) * inv
	if s < 0 || s > 1 {
		return Point3{}, false
	}
	return l.A.Plus(d.MulScalar(s)), true
}
