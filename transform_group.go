// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// TransformGroup is a group with a transform that maps its children's
// coordinates to its own. All three traversals push the transform on
// entry and pop it on exit, so everything below the group, including
// its bounding sphere, appears transformed to everything above.
type TransformGroup struct {
	Group
	transform math3d.Matrix4
}

// NewTransformGroup returns a new group with the specified transform
// and no children.
func NewTransformGroup(m math3d.Matrix4) *TransformGroup {
	tg := &TransformGroup{transform: m}
	tg.Init(tg)
	return tg
}

// Transform returns this group's transform.
func (tg *TransformGroup) Transform() math3d.Matrix4 { return tg.transform }

// SetTransform sets this group's transform, dirtying its bounding
// sphere and requesting redraw.
func (tg *TransformGroup) SetTransform(m math3d.Matrix4) {
	tg.transform = m
	tg.DirtyBoundingSphere()
	tg.node().DirtyDraw()
}

// ComputeBoundingSphere returns a sphere bounding this group's
// transformed children. The children's sphere is bounded by a box, the
// box's corners are transformed, and the result is the sphere of the
// transformed corners' box; conservative for rotations, exact for
// translations and uniform scalings.
func (tg *TransformGroup) ComputeBoundingSphere(finite bool) math3d.Sphere {
	bs := tg.Group.ComputeBoundingSphere(finite)
	if bs.IsEmpty() || bs.IsInfinite() {
		return bs
	}
	inner := math3d.EmptyBox3()
	inner.ExpandBySphere(bs)
	outer := math3d.EmptyBox3()
	for i := 0; i < 8; i++ {
		outer.ExpandByPoint(tg.transform.MulPoint3(inner.Corner(i)))
	}
	return math3d.SphereFromBox(outer)
}

func (tg *TransformGroup) CullBegin(cc *CullContext) {
	cc.PushLocalToWorld(tg.transform)
}

func (tg *TransformGroup) CullEnd(cc *CullContext) {
	cc.PopLocalToWorld()
}

func (tg *TransformGroup) DrawBegin(dc *DrawContext) {
	dc.PushLocalToWorld(tg.transform)
	dc.Backend().PushMatrix(tg.transform)
}

func (tg *TransformGroup) DrawEnd(dc *DrawContext) {
	dc.Backend().PopMatrix()
	dc.PopLocalToWorld()
}

func (tg *TransformGroup) PickBegin(pc *PickContext) {
	pc.PushLocalToWorld(tg.transform)
}

func (tg *TransformGroup) PickEnd(pc *PickContext) {
	pc.PopLocalToWorld()
}
