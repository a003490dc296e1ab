// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgl3d/sgl/math3d"
)

// triangleScene is a single triangle in the z=0 plane, centered on the
// view axis of a square canvas.
func triangleScene(t *testing.T) (*Canvas, *TriangleGroup) {
	t.Helper()
	tri := NewTriangleGroup([]float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}, nil)
	w := NewWorld()
	w.AddChild(tri)
	v := NewView(w)
	c := NewCanvas(v, 101, 101)
	return c, tri
}

func TestPickAtTriangleCenter(t *testing.T) {
	c, tri := triangleScene(t)

	pc, err := c.PickAt(50, 50)
	require.NoError(t, err)
	require.NotNil(t, pc)
	r := pc.Closest()
	require.NotNil(t, r, "pick through the triangle center must hit")

	// The center pixel's ray passes through the world origin.
	assert.InDelta(t, 0, r.WorldPoint().X, 1e-9)
	assert.InDelta(t, 0, r.WorldPoint().Y, 1e-9)
	assert.InDelta(t, 0, r.WorldPoint().Z, 1e-9)

	// Depth lies strictly inside the canvas depth range.
	assert.Greater(t, r.PixelZ(), 0.0)
	assert.Less(t, r.PixelZ(), 1.0)

	// The picked pixel is the one asked for.
	assert.InDelta(t, 50, r.PixelPoint().X, 1e-6)
	assert.InDelta(t, 50, r.PixelPoint().Y, 1e-6)

	// The path ends at the surface's leaf; the selectable ancestor is
	// the surface itself.
	assert.Equal(t, Selectable(tri), r.SelectableNode())
}

func TestPickMiss(t *testing.T) {
	c, _ := triangleScene(t)

	// The top corners of the canvas are outside the triangle.
	for _, px := range [][2]float64{{0, 0}, {100, 0}} {
		pc, err := c.PickAt(px[0], px[1])
		require.NoError(t, err)
		assert.Nil(t, pc.Closest())
		assert.Empty(t, pc.Results())
	}
}

func TestPickClosestOfStackedSurfaces(t *testing.T) {
	// Two parallel triangles; the one nearer the viewer (greater
	// world z maps to smaller depth) wins.
	near := NewTriangleGroup([]float32{-1, -1, 1, 1, -1, 1, 0, 1, 1}, nil)
	far := NewTriangleGroup([]float32{-1, -1, -1, 1, -1, -1, 0, 1, -1}, nil)
	w := NewWorld()
	w.AddChild(far)
	w.AddChild(near)
	v := NewView(w)
	c := NewCanvas(v, 101, 101)

	pc, err := c.PickAt(50, 50)
	require.NoError(t, err)
	require.Len(t, pc.Results(), 2)
	r := pc.Closest()
	require.NotNil(t, r)
	assert.Equal(t, Selectable(near), r.SelectableNode())
	assert.InDelta(t, 1, r.WorldPoint().Z, 1e-9)
}

func TestPickThroughTransformGroup(t *testing.T) {
	// The triangle is shifted +2 in x by a transform group; picking
	// the canvas center must now miss, and picking where the triangle
	// went must hit, reporting local coordinates in the leaf's frame.
	tri := NewTriangleGroup([]float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}, nil)
	tg := NewTransformGroup(math3d.Translate(2, 0, 0))
	tg.AddChild(tri)
	anchor := newSphereNode(math3d.Pt3(0, 0, 0), 0.1)
	w := NewWorld()
	w.AddChild(anchor)
	w.AddChild(tg)
	v := NewView(w)
	c := NewCanvas(v, 101, 101)
	v.UpdateTransforms(c)

	// Find the pixel of the triangle's world-space center (2,0,0).
	tc := NewTransformContext(c)
	px := tc.WorldToPixel().MulPoint3(math3d.Pt3(2, 0, 0))

	pc, err := c.PickAt(px.X, px.Y)
	require.NoError(t, err)
	r := pc.Closest()
	require.NotNil(t, r)
	assert.InDelta(t, 0, r.LocalPoint().X, 1e-9)
	assert.InDelta(t, 0, r.LocalPoint().Y, 1e-9)
	assert.InDelta(t, 2, r.WorldPoint().X, 1e-9)

	// The node path passes through the transform group.
	nodes := r.Nodes()
	require.GreaterOrEqual(t, len(nodes), 3)
	assert.Equal(t, Node(w), nodes[0])
	assert.Equal(t, Node(tg), nodes[1])
}

func TestPickResultDragableSearch(t *testing.T) {
	r := &PickResult{nodes: []Node{NewWorld(), NewGroup()}}
	assert.Nil(t, r.SelectableNode())
	assert.Nil(t, r.DragableNode())
}

func TestSelectableSetSelectedDirties(t *testing.T) {
	c, tri := triangleScene(t)
	repaints := 0
	c.OnRepaint = func() { repaints++ }

	tri.SetSelected(true)
	assert.True(t, tri.Selected())
	assert.Equal(t, 1, repaints)

	// Re-selecting an already selected surface is a no-op.
	tri.SetSelected(true)
	assert.Equal(t, 1, repaints)

	tri.SetSelected(false)
	assert.Equal(t, 2, repaints)
}
