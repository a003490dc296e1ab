// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"math"

	"github.com/sgl3d/sgl/math3d"
)

// lineNearestThreshold decides how a [LineConstraint] follows the
// pointer. When the pointer ray and the constraint line are within 30
// degrees of parallel (|cos| >= 0.867), the nearest-point solution is
// unstable, so the constraint falls back to push-pull mode.
const lineNearestThreshold = 0.867

// LineConstraint maps pointer pixels to points on a fixed line in
// world coordinates, for dragging along an axis. In nearest mode the
// constrained point is the point on the line nearest the pointer ray.
// When the line is nearly parallel to the pointer ray, vertical
// pointer motion pushes the point along the line instead.
//
// A constraint is built once when a drag begins and queried with
// [LineConstraint.Point] as the pointer moves.
type LineConstraint struct {
	origin math3d.Point3
	axis   math3d.Vector3

	pushPull      bool
	point         math3d.Point3
	y0            float64
	unitsPerPixel float64

	pixelToWorld math3d.Matrix4
}

// NewLineConstraint returns a new constraint to the line through
// origin along axis, both in world coordinates, for a drag beginning
// at pixel (xp,yp) on the specified canvas. Returns an error if the
// canvas's pixel-to-world transform is singular.
func NewLineConstraint(c *Canvas, xp, yp float64, origin math3d.Point3, axis math3d.Vector3) (*LineConstraint, error) {
	tc := NewTransformContext(c)
	pixelToWorld, err := tc.PixelToWorld()
	if err != nil {
		return nil, err
	}
	lc := &LineConstraint{
		origin:       origin,
		axis:         axis.Normalize(),
		pixelToWorld: pixelToWorld,
	}
	lc.point = origin
	lc.point = lc.nearestPoint(xp, yp)

	dir := lc.rayDirection(xp, yp)
	d := dir.Dot(lc.axis)
	if math3d.Abs(d) >= lineNearestThreshold {
		lc.pushPull = true
		lc.y0 = yp

		// World units of axis motion per pixel of pointer motion.
		worldToPixel := tc.WorldToPixel()
		q0 := worldToPixel.MulPoint3(origin)
		q1 := worldToPixel.MulPoint3(origin.Plus(lc.axis))
		px, py := q1.X-q0.X, q1.Y-q0.Y
		pixelsPerUnit := math3d.Sqrt(px*px + py*py)
		if pixelsPerUnit < 1e-9 {
			// The axis projects to a point (it runs along the view
			// axis), so relate pixels to world units through the
			// view's vertical extent instead.
			av := tc.WorldToView().MulVector3(lc.axis).Length()
			halfHeight := c.View().distance * math.Tan(math3d.DegToRad(viewFOV)/2)
			pixelsPerUnit = av * 0.5 * float64(c.Height()) / halfHeight
		}
		if pixelsPerUnit > 0 {
			lc.unitsPerPixel = 1 / pixelsPerUnit
		}
	}
	return lc, nil
}

// Point returns the constrained point for the pointer at pixel
// (xp,yp).
func (lc *LineConstraint) Point(xp, yp float64) math3d.Point3 {
	if lc.pushPull {
		return lc.point.Plus(lc.axis.MulScalar((lc.y0 - yp) * lc.unitsPerPixel))
	}
	return lc.nearestPoint(xp, yp)
}

// rayDirection returns the unit direction of the pointer ray at pixel
// (xp,yp), in world coordinates.
func (lc *LineConstraint) rayDirection(xp, yp float64) math3d.Vector3 {
	near := lc.pixelToWorld.MulPoint3(math3d.Pt3(xp, yp, 0))
	far := lc.pixelToWorld.MulPoint3(math3d.Pt3(xp, yp, 1))
	return far.Minus(near).Normalize()
}

// nearestPoint returns the point on the constraint line nearest the
// pointer ray at pixel (xp,yp). If ray and line are parallel, the
// previous point is returned unchanged.
func (lc *LineConstraint) nearestPoint(xp, yp float64) math3d.Point3 {
	n := lc.pixelToWorld.MulPoint3(math3d.Pt3(xp, yp, 0))
	d := lc.rayDirection(xp, yp)
	a := lc.axis
	w := lc.origin.Minus(n)

	// Closest approach of two lines: minimize |(o+t*a)-(n+s*d)|.
	b := a.Dot(d)
	denom := 1 - b*b // a and d are unit vectors
	if denom < 1e-12 {
		return lc.point
	}
	t := (b*w.Dot(d) - w.Dot(a)) / denom
	lc.point = lc.origin.Plus(a.MulScalar(t))
	return lc.point
}

// BoxConstraint clamps dragged points to an axis-aligned box in world
// coordinates, optionally snapping them to a sampling grid anchored at
// the box minimum.
type BoxConstraint struct {
	box        math3d.Box3
	dx, dy, dz float64
}

// NewBoxConstraint returns a new constraint to the specified box, with
// no sampling grid.
func NewBoxConstraint(box math3d.Box3) *BoxConstraint {
	return &BoxConstraint{box: box}
}

// SetSampling sets the sampling intervals of the grid points are
// snapped to; a non-positive interval leaves that coordinate
// continuous.
func (bc *BoxConstraint) SetSampling(dx, dy, dz float64) {
	bc.dx, bc.dy, bc.dz = dx, dy, dz
}

// Constrain returns the point p clamped into the box and snapped to
// the sampling grid.
func (bc *BoxConstraint) Constrain(p math3d.Point3) math3d.Point3 {
	p.X = constrainCoord(p.X, bc.box.Min.X, bc.box.Max.X, bc.dx)
	p.Y = constrainCoord(p.Y, bc.box.Min.Y, bc.box.Max.Y, bc.dy)
	p.Z = constrainCoord(p.Z, bc.box.Min.Z, bc.box.Max.Z, bc.dz)
	return p
}

func constrainCoord(x, lo, hi, dx float64) float64 {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	if dx > 0 {
		n := float64(int((x-lo)/dx + 0.5))
		x = lo + n*dx
		if x > hi {
			x -= dx
		}
	}
	return x
}
