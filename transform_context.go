// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// TransformContext is a traversal context that carries the chain of
// coordinate transforms:
//
//	local --> world --> view --> cube --> pixel
//
// The local-to-world transform changes as the traversal pushes and
// pops [TransformGroup] nodes; the world-to-view, view-to-cube, and
// cube-to-pixel transforms are copied from the view and canvas when
// the context is constructed and stay fixed. Derived transforms are
// composed on demand and never cached. Getters in the inverse
// direction return [math3d.ErrSingular] when the chain cannot be
// inverted.
type TransformContext struct {
	TraversalContext

	canvas *Canvas
	view   *View

	// localToWorld is a stack; the last element is current. The bottom
	// element is the identity and is never popped.
	localToWorld []math3d.Matrix4

	worldToView math3d.Matrix4
	viewToCube  math3d.Matrix4
	cubeToPixel math3d.Matrix4
}

// NewTransformContext returns a new transform context for the
// specified canvas, with the local-to-world transform set to the
// identity.
func NewTransformContext(c *Canvas) *TransformContext {
	tc := &TransformContext{}
	tc.initTransformContext(c)
	return tc
}

func (tc *TransformContext) initTransformContext(c *Canvas) {
	tc.canvas = c
	tc.view = c.View()
	tc.localToWorld = append(tc.localToWorld[:0], math3d.Identity4())
	tc.worldToView = tc.view.WorldToView()
	tc.viewToCube = tc.view.ViewToCube()
	tc.cubeToPixel = c.CubeToPixel()
}

// Canvas returns the canvas for which this context was constructed.
func (tc *TransformContext) Canvas() *Canvas { return tc.canvas }

// View returns the view for which this context was constructed.
func (tc *TransformContext) View() *View { return tc.view }

// PushLocalToWorld composes the specified transform onto the current
// local-to-world transform: subsequent local coordinates are mapped
// through m first.
func (tc *TransformContext) PushLocalToWorld(m math3d.Matrix4) {
	tc.localToWorld = append(tc.localToWorld, tc.LocalToWorld().Mul(m))
}

// PopLocalToWorld restores the local-to-world transform current before
// the most recent push. Popping without a matching push is a
// programming error and panics.
func (tc *TransformContext) PopLocalToWorld() {
	if len(tc.localToWorld) <= 1 {
		panic("sgl: PopLocalToWorld without matching PushLocalToWorld")
	}
	tc.localToWorld = tc.localToWorld[:len(tc.localToWorld)-1]
}

// LocalToWorld returns the current local-to-world transform.
func (tc *TransformContext) LocalToWorld() math3d.Matrix4 {
	return tc.localToWorld[len(tc.localToWorld)-1]
}

// WorldToView returns the world-to-view transform.
func (tc *TransformContext) WorldToView() math3d.Matrix4 { return tc.worldToView }

// ViewToCube returns the view-to-cube transform.
func (tc *TransformContext) ViewToCube() math3d.Matrix4 { return tc.viewToCube }

// CubeToPixel returns the cube-to-pixel transform.
func (tc *TransformContext) CubeToPixel() math3d.Matrix4 { return tc.cubeToPixel }

// LocalToView returns the current local-to-view transform.
func (tc *TransformContext) LocalToView() math3d.Matrix4 {
	return tc.worldToView.Mul(tc.LocalToWorld())
}

// LocalToCube returns the current local-to-cube transform.
func (tc *TransformContext) LocalToCube() math3d.Matrix4 {
	return tc.viewToCube.Mul(tc.LocalToView())
}

// LocalToPixel returns the current local-to-pixel transform.
func (tc *TransformContext) LocalToPixel() math3d.Matrix4 {
	return tc.cubeToPixel.Mul(tc.LocalToCube())
}

// WorldToCube returns the world-to-cube transform.
func (tc *TransformContext) WorldToCube() math3d.Matrix4 {
	return tc.viewToCube.Mul(tc.worldToView)
}

// WorldToPixel returns the world-to-pixel transform.
func (tc *TransformContext) WorldToPixel() math3d.Matrix4 {
	return tc.cubeToPixel.Mul(tc.WorldToCube())
}

// ViewToPixel returns the view-to-pixel transform.
func (tc *TransformContext) ViewToPixel() math3d.Matrix4 {
	return tc.cubeToPixel.Mul(tc.viewToCube)
}

// WorldToLocal returns the current world-to-local transform.
func (tc *TransformContext) WorldToLocal() (math3d.Matrix4, error) {
	return tc.LocalToWorld().Inverse()
}

// ViewToWorld returns the view-to-world transform.
func (tc *TransformContext) ViewToWorld() (math3d.Matrix4, error) {
	return tc.worldToView.Inverse()
}

// ViewToLocal returns the current view-to-local transform.
func (tc *TransformContext) ViewToLocal() (math3d.Matrix4, error) {
	return tc.LocalToView().Inverse()
}

// CubeToView returns the cube-to-view transform.
func (tc *TransformContext) CubeToView() (math3d.Matrix4, error) {
	return tc.viewToCube.Inverse()
}

// CubeToWorld returns the cube-to-world transform.
func (tc *TransformContext) CubeToWorld() (math3d.Matrix4, error) {
	return tc.WorldToCube().Inverse()
}

// CubeToLocal returns the current cube-to-local transform.
func (tc *TransformContext) CubeToLocal() (math3d.Matrix4, error) {
	return tc.LocalToCube().Inverse()
}

// PixelToCube returns the pixel-to-cube transform.
func (tc *TransformContext) PixelToCube() (math3d.Matrix4, error) {
	return tc.cubeToPixel.Inverse()
}

// PixelToView returns the pixel-to-view transform.
func (tc *TransformContext) PixelToView() (math3d.Matrix4, error) {
	return tc.ViewToPixel().Inverse()
}

// PixelToWorld returns the pixel-to-world transform.
func (tc *TransformContext) PixelToWorld() (math3d.Matrix4, error) {
	return tc.WorldToPixel().Inverse()
}

// PixelToLocal returns the current pixel-to-local transform.
func (tc *TransformContext) PixelToLocal() (math3d.Matrix4, error) {
	return tc.LocalToPixel().Inverse()
}
