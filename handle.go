// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// handleSize is the on-screen size of all handles, in pixels.
var handleSize = 50.0

// HandleSize returns the size of handles, in pixels.
func HandleSize() float64 { return handleSize }

// SetHandleSize sets the size of handles, in pixels. The size is
// shared by all handles, so that a scene's handles look consistent.
func SetHandleSize(size float64) { handleSize = size }

// Handle is a group whose children keep a constant size in pixels,
// regardless of the view's zoom and the handle's distance from the
// viewer. Children are modeled around the origin at roughly unit size;
// an internal transform group translates them to the handle's position
// and rescales them, every time the handle is culled or picked, so
// that they span [HandleSize] pixels.
//
// Because its on-screen extent does not shrink with distance, a
// handle's true bounding region is unbounded: its bounding sphere is
// infinite, and the finite form is a zero-radius sphere at its
// position.
type Handle struct {
	Group
	position math3d.Point3
	tg       *TransformGroup
}

// NewHandle returns a new handle at the specified position in local
// coordinates.
func NewHandle(p math3d.Point3) *Handle {
	h := &Handle{position: p}
	h.Init(h)
	h.tg = NewTransformGroup(math3d.Translate(p.X, p.Y, p.Z))
	h.Group.AddChild(h.tg)
	return h
}

// Position returns the position of this handle in local coordinates.
func (h *Handle) Position() math3d.Point3 { return h.position }

// SetPosition sets the position of this handle.
func (h *Handle) SetPosition(p math3d.Point3) {
	h.position = p
	h.DirtyBoundingSphere()
	h.node().DirtyDraw()
}

// AddChild adds the node n to this handle's scaled children.
func (h *Handle) AddChild(n Node) { h.tg.AddChild(n) }

// RemoveChild removes the node n from this handle's scaled children.
func (h *Handle) RemoveChild(n Node) { h.tg.RemoveChild(n) }

// ComputeBoundingSphere returns the infinite sphere, or, when a finite
// sphere is required, a zero-radius sphere at the handle's position.
func (h *Handle) ComputeBoundingSphere(finite bool) math3d.Sphere {
	if finite {
		return math3d.Sphere{Center: h.position}
	}
	return math3d.InfiniteSphere()
}

// CullBegin rescales this handle's children for the current view
// before they are culled.
func (h *Handle) CullBegin(cc *CullContext) {
	h.updateScale(&cc.TransformContext)
}

// PickBegin rescales this handle's children for the current view
// before they are picked, so a pick works even without a preceding
// cull.
func (h *Handle) PickBegin(pc *PickContext) {
	h.updateScale(&pc.TransformContext)
}

// updateScale recomputes the internal transform so the children span
// [HandleSize] pixels at the handle's position. The transform is
// written directly: a repaint request here would retrigger the very
// traversal that is running.
func (h *Handle) updateScale(tc *TransformContext) {
	m, ok := h.computeTransform(tc)
	if !ok || m == h.tg.transform {
		return
	}
	h.tg.transform = m
	h.tg.DirtyBoundingSphere()
}

// computeTransform measures one handle-size step in pixel space at the
// handle's position, maps it back to local coordinates, and derives
// the scale that makes the children's bounding sphere span that step.
func (h *Handle) computeTransform(tc *TransformContext) (math3d.Matrix4, bool) {
	pixelToLocal, err := tc.PixelToLocal()
	if err != nil {
		log().Debug("sgl: handle scale skipped, transform not invertible")
		return math3d.Matrix4{}, false
	}
	rc := h.tg.Group.ComputeBoundingSphere(true).Radius
	if rc <= 0 {
		return math3d.Matrix4{}, false
	}
	p := h.position
	q := tc.LocalToPixel().MulPoint3(p)
	q.X += handleSize
	q = pixelToLocal.MulPoint3(q)
	as := tc.View().AxesScale()
	v := q.Minus(p)
	v.X *= as.X
	v.Y *= as.Y
	v.Z *= as.Z
	s := v.Length() / rc
	m := math3d.Translate(p.X, p.Y, p.Z).
		Mul(math3d.Scale(s/as.X, s/as.Y, s/as.Z))
	return m, true
}
