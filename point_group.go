// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"github.com/sgl3d/sgl/math3d"
	"github.com/sgl3d/sgl/render"
)

// PointGroup is a point-cloud leaf node: packed point coordinates with
// optional per-point colors, drawn at a fixed size in pixels. Points
// are picked within a world-space radius of the pick segment; by
// default the radius is one percent of the cloud's bounding sphere
// radius.
type PointGroup struct {
	NodeBase
	SelectableBase

	xyz        []float32
	rgb        []float32
	size       float32
	pickRadius float64
}

// NewPointGroup returns a new point group for the packed coordinates
// xyz, with one (r,g,b) color per point in rgb, or nil for no colors.
// Panics if len(xyz) is not a multiple of 3 or rgb is non-nil with a
// different point count.
func NewPointGroup(xyz, rgb []float32) *PointGroup {
	if len(xyz)%3 != 0 {
		panic("sgl: point coordinates must come in multiples of 3")
	}
	if rgb != nil && len(rgb) != len(xyz) {
		panic("sgl: point colors must match point count")
	}
	pg := &PointGroup{xyz: xyz, rgb: rgb, size: 3}
	pg.Init(pg)
	return pg
}

// NumPoints returns the number of points in this group.
func (pg *PointGroup) NumPoints() int { return len(pg.xyz) / 3 }

// Size returns the size points are drawn at, in pixels.
func (pg *PointGroup) Size() float32 { return pg.size }

// SetSize sets the size points are drawn at, in pixels.
func (pg *PointGroup) SetSize(size float32) {
	pg.size = size
	pg.DirtyDraw()
}

// SetPickRadius sets the world-space distance within which a point is
// considered hit by a pick segment. Zero restores the default.
func (pg *PointGroup) SetPickRadius(r float64) {
	pg.pickRadius = r
}

// SetSelected sets whether this cloud is selected, requesting a redraw
// when the state changes.
func (pg *PointGroup) SetSelected(selected bool) {
	if selected == pg.Selected() {
		return
	}
	pg.SelectableBase.SetSelected(selected)
	pg.DirtyDraw()
}

func (pg *PointGroup) ComputeBoundingSphere(finite bool) math3d.Sphere {
	box := math3d.EmptyBox3()
	for i := 0; i < len(pg.xyz); i += 3 {
		box.ExpandByCoords(
			float64(pg.xyz[i]), float64(pg.xyz[i+1]), float64(pg.xyz[i+2]))
	}
	return math3d.SphereFromBox(box)
}

func (pg *PointGroup) DrawBegin(dc *DrawContext) {
	dc.Backend().PushState(render.StateColor)
}

func (pg *PointGroup) Draw(dc *DrawContext) {
	dc.Backend().DrawPoints(pg.size, pg.xyz, pg.rgb)
}

func (pg *PointGroup) DrawEnd(dc *DrawContext) {
	dc.Backend().PopState()
}

// Pick adds a result for every point within the pick radius of the
// pick segment.
func (pg *PointGroup) Pick(pc *PickContext) {
	r := pg.pickRadius
	if r <= 0 {
		r = 0.01 * pg.BoundingSphere(true).Radius
	}
	seg := pc.LocalSegment()
	for i := 0; i < len(pg.xyz); i += 3 {
		p := math3d.Pt3(
			float64(pg.xyz[i]), float64(pg.xyz[i+1]), float64(pg.xyz[i+2]))
		if seg.DistanceToPoint(p) <= r {
			pc.AddResult(p)
		}
	}
}
