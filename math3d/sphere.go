// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "errors"

// ErrNegativeRadius is returned when constructing a sphere with a
// negative radius.
var ErrNegativeRadius = errors.New("math3d: sphere radius is negative")

// Sphere is a bounding sphere: a center point and a radius, with two
// sentinel states. An empty sphere contains nothing. An infinite
// sphere contains all points; it bounds objects, such as constant
// pixel-size handles, whose extent in local coordinates cannot be
// bounded. Expansion operations never shrink a sphere.
type Sphere struct {
	Center Point3
	Radius float64
}

// EmptySphere returns a new sphere that contains nothing.
func EmptySphere() Sphere {
	return Sphere{Radius: -1}
}

// InfiniteSphere returns a new sphere that contains all points.
func InfiniteSphere() Sphere {
	return Sphere{Radius: Infinity}
}

// NewSphere returns a new sphere with the specified center and radius.
// Returns [ErrNegativeRadius] if the radius is negative.
func NewSphere(center Point3, radius float64) (Sphere, error) {
	if radius < 0 {
		return Sphere{}, ErrNegativeRadius
	}
	return Sphere{center, radius}, nil
}

// SphereFromBox returns the smallest sphere that contains the box b.
func SphereFromBox(b Box3) Sphere {
	if b.IsEmpty() {
		return EmptySphere()
	}
	c := b.Center()
	return Sphere{c, c.DistanceTo(b.Max)}
}

// IsEmpty returns true if this sphere contains nothing.
func (s Sphere) IsEmpty() bool {
	return s.Radius < 0
}

// IsInfinite returns true if this sphere contains all points.
func (s Sphere) IsInfinite() bool {
	return s.Radius == Infinity
}

// Contains returns true if this sphere contains the point p.
func (s Sphere) Contains(p Point3) bool {
	if s.IsEmpty() {
		return false
	}
	if s.IsInfinite() {
		return true
	}
	return s.Center.DistanceSquaredTo(p) <= s.Radius*s.Radius
}

// ExpandByPoint expands this sphere to contain the point p, moving the
// center as little as necessary.
func (s *Sphere) ExpandByPoint(p Point3) {
	if s.IsInfinite() {
		return
	}
	if s.IsEmpty() {
		s.Center = p
		s.Radius = 0
		return
	}
	d := s.Center.DistanceTo(p)
	if d <= s.Radius {
		return
	}
	r := 0.5 * (s.Radius + d)
	s.Center = s.Center.Plus(p.Minus(s.Center).MulScalar((r - s.Radius) / d))
	s.Radius = r
}

// ExpandRadiusByPoint expands this sphere to contain the point p,
// growing the radius without moving the center.
func (s *Sphere) ExpandRadiusByPoint(p Point3) {
	if s.IsInfinite() {
		return
	}
	if s.IsEmpty() {
		s.Center = p
		s.Radius = 0
		return
	}
	d := s.Center.DistanceTo(p)
	if d > s.Radius {
		s.Radius = d
	}
}

// ExpandBySphere expands this sphere to contain the sphere a, moving
// the center as little as necessary.
func (s *Sphere) ExpandBySphere(a Sphere) {
	if a.IsEmpty() || s.IsInfinite() {
		return
	}
	if a.IsInfinite() {
		*s = InfiniteSphere()
		return
	}
	if s.IsEmpty() {
		*s = a
		return
	}
	d := s.Center.DistanceTo(a.Center)
	if d+a.Radius <= s.Radius {
		return // a is already inside
	}
	if d+s.Radius <= a.Radius {
		*s = a
		return
	}
	r := 0.5 * (s.Radius + d + a.Radius)
	if d > 0 {
		s.Center = s.Center.Plus(
			a.Center.Minus(s.Center).MulScalar((r - s.Radius) / d))
	}
	s.Radius = r
}

// ExpandRadiusBySphere expands this sphere to contain the sphere a,
// growing the radius without moving the center.
func (s *Sphere) ExpandRadiusBySphere(a Sphere) {
	if a.IsEmpty() || s.IsInfinite() {
		return
	}
	if a.IsInfinite() {
		*s = InfiniteSphere()
		return
	}
	if s.IsEmpty() {
		*s = a
		return
	}
	d := s.Center.DistanceTo(a.Center) + a.Radius
	if d > s.Radius {
		s.Radius = d
	}
}

// ExpandByBox expands this sphere to contain the box b, moving the
// center as little as necessary.
func (s *Sphere) ExpandByBox(b Box3) {
	if b.IsEmpty() {
		return
	}
	for i := 0; i < 8; i++ {
		s.ExpandByPoint(b.Corner(i))
	}
}

// ExpandRadiusByBox expands this sphere to contain the box b, growing
// the radius without moving the center.
func (s *Sphere) ExpandRadiusByBox(b Box3) {
	if b.IsEmpty() {
		return
	}
	for i := 0; i < 8; i++ {
		s.ExpandRadiusByPoint(b.Corner(i))
	}
}
