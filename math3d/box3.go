// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math3d

import "errors"

// ErrInvalidBox is returned when constructing a box whose minimum
// exceeds its maximum on any coordinate.
var ErrInvalidBox = errors.New("math3d: box min exceeds max")

// Box3 is an axis-aligned bounding box defined by a minimum and a
// maximum point. The zero value is not a valid box; use [EmptyBox3]
// for a box that contains nothing.
type Box3 struct {
	Min Point3
	Max Point3
}

// EmptyBox3 returns a new box that contains nothing.
func EmptyBox3() Box3 {
	inf := Infinity
	return Box3{
		Min: Point3{inf, inf, inf},
		Max: Point3{-inf, -inf, -inf},
	}
}

// NewBox3 returns a new box with the specified minimum and maximum
// points. Returns [ErrInvalidBox] if min exceeds max on any coordinate.
func NewBox3(min, max Point3) (Box3, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return Box3{}, ErrInvalidBox
	}
	return Box3{min, max}, nil
}

// IsEmpty returns true if this box contains nothing.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Center returns the center of this box.
func (b Box3) Center() Point3 {
	return Point3{
		0.5 * (b.Min.X + b.Max.X),
		0.5 * (b.Min.Y + b.Max.Y),
		0.5 * (b.Min.Z + b.Max.Z),
	}
}

// Corner returns one of the eight corners of this box, for an index i
// in [0,8). Bit 0 of i selects the x coordinate, bit 1 the y, bit 2
// the z; a set bit selects the maximum.
func (b Box3) Corner(i int) Point3 {
	p := b.Min
	if i&1 != 0 {
		p.X = b.Max.X
	}
	if i&2 != 0 {
		p.Y = b.Max.Y
	}
	if i&4 != 0 {
		p.Z = b.Max.Z
	}
	return p
}

// Contains returns true if this box contains the point p.
func (b Box3) Contains(p Point3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// ExpandByPoint expands this box to contain the point p.
func (b *Box3) ExpandByPoint(p Point3) {
	b.Min.X = Min(b.Min.X, p.X)
	b.Min.Y = Min(b.Min.Y, p.Y)
	b.Min.Z = Min(b.Min.Z, p.Z)
	b.Max.X = Max(b.Max.X, p.X)
	b.Max.Y = Max(b.Max.Y, p.Y)
	b.Max.Z = Max(b.Max.Z, p.Z)
}

// ExpandByCoords expands this box to contain the point (x,y,z).
func (b *Box3) ExpandByCoords(x, y, z float64) {
	b.ExpandByPoint(Point3{x, y, z})
}

// ExpandByBox expands this box to contain the box a.
func (b *Box3) ExpandByBox(a Box3) {
	if a.IsEmpty() {
		return
	}
	b.ExpandByPoint(a.Min)
	b.ExpandByPoint(a.Max)
}

// ExpandBySphere expands this box to contain the sphere s.
// An empty sphere expands nothing; an infinite sphere makes this
// box contain all points.
func (b *Box3) ExpandBySphere(s Sphere) {
	if s.IsEmpty() {
		return
	}
	if s.IsInfinite() {
		inf := Infinity
		b.Min = Point3{-inf, -inf, -inf}
		b.Max = Point3{inf, inf, inf}
		return
	}
	r := s.Radius
	b.ExpandByCoords(s.Center.X-r, s.Center.Y-r, s.Center.Z-r)
	b.ExpandByCoords(s.Center.X+r, s.Center.Y+r, s.Center.Z+r)
}
