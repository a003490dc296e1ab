// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the immediate-mode rendering capability set
// that draw traversals consume. The scene graph core issues transforms,
// vertex batches, and render-state brackets through the [Backend]
// interface; an OpenGL-like binding implements it. The [Recorder]
// implementation captures the call stream, for tests and for replay.
package render

import "github.com/sgl3d/sgl/math3d"

// State names a render state that a node may enable around its draws.
// States are bracketed: every PushState is paired with a PopState that
// restores whatever the state was before.
type State int

const (
	// StateColor is the current drawing color.
	StateColor State = iota

	// StateMaterial is the lighting material state.
	StateMaterial

	// StateBlend is alpha blending.
	StateBlend

	// StatePolygonOffset offsets filled polygons in depth, so that
	// outlines drawn over a selected surface do not stitch.
	StatePolygonOffset
)

// Backend is the minimal capability set the draw traversal requires of
// an immediate-mode rendering backend.
//
// Matrix pushes are cumulative: the backend maintains an implicit
// matrix stack, and a pushed matrix multiplies the current one, with
// the pushed matrix applied first to vertices. Vertex batches are
// packed float32 slices, three components per vertex; normals and
// colors may be nil.
type Backend interface {
	// PushMatrix saves the current transform and multiplies it by m.
	PushMatrix(m math3d.Matrix4)

	// PopMatrix restores the most recently saved transform.
	PopMatrix()

	// PushState saves and enables the specified render states.
	PushState(states ...State)

	// PopState restores the most recently saved render states.
	PopState()

	// DrawTriangles draws 3*n vertices as n triangles, with optional
	// per-vertex normals and colors.
	DrawTriangles(xyz, uvw, rgb []float32)

	// DrawLines draws 2*n vertices as n line segments, with optional
	// per-vertex colors.
	DrawLines(xyz, rgb []float32)

	// DrawPoints draws n vertices as points of the specified size in
	// pixels, with optional per-vertex colors.
	DrawPoints(size float32, xyz, rgb []float32)
}
