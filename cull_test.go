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

// cullScene builds a world shown on a tall, narrow canvas. The view
// always fits the world's bounding sphere vertically, so culling is
// exercised horizontally: the frustum is much narrower than the world.
func cullScene(t *testing.T, nodes ...Node) *Canvas {
	t.Helper()
	w := NewWorld()
	for _, n := range nodes {
		w.AddChild(n)
	}
	v := NewView(w)
	c := NewCanvas(v, 20, 100)
	v.UpdateTransforms(c)
	return c
}

func cullPaths(c *Canvas) [][]Node {
	cc := NewCullContext(c)
	CullNode(cc, c.View().World())
	return cc.DrawList().Paths()
}

func TestCullDiscardsOffFrustumNodes(t *testing.T) {
	left := newSphereNode(math3d.Pt3(0, 0, 0), 0.1)
	center := newSphereNode(math3d.Pt3(5, 0, 0), 0.1)
	right := newSphereNode(math3d.Pt3(10, 0, 0), 0.1)
	c := cullScene(t, left, center, right)

	// The world sphere is centered near x=5; on a narrow canvas only
	// the central node fits the frustum.
	paths := cullPaths(c)
	require.Len(t, paths, 1)
	leaf := paths[0][len(paths[0])-1]
	assert.Equal(t, Node(center), leaf)
}

func TestCullKeepsAllWhenEverythingFits(t *testing.T) {
	a := newSphereNode(math3d.Pt3(0, 0, 0), 0.5)
	b := newSphereNode(math3d.Pt3(0, 1, 0), 0.5)
	w := NewWorld()
	w.AddChild(a)
	w.AddChild(b)
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)

	paths := cullPaths(c)
	assert.Len(t, paths, 2)
	// Paths run root to leaf, in child order.
	assert.Equal(t, []Node{w, a}, paths[0])
	assert.Equal(t, []Node{w, b}, paths[1])
}

func TestCullPrunesWholeSubtree(t *testing.T) {
	// A group far off to the side is culled without visiting its
	// children: their spheres are never computed.
	offside := NewGroup()
	child := newSphereNode(math3d.Pt3(10, 0, 0), 0.1)
	offside.AddChild(child)
	center := newSphereNode(math3d.Pt3(5, 0, 0), 0.1)
	anchor := newSphereNode(math3d.Pt3(0, 0, 0), 0.1)
	c := cullScene(t, anchor, center, offside)

	paths := cullPaths(c)
	require.Len(t, paths, 1)
	assert.Equal(t, Node(center), paths[0][len(paths[0])-1])
	// The culled group's child was never visited.
	assert.Equal(t, 0, child.culls)
	assert.Equal(t, 1, center.culls)
}

func TestCullEmptySphereNode(t *testing.T) {
	empty := NewGroup() // no children: empty sphere
	visible := newSphereNode(math3d.Pt3(0, 0, 0), 0.5)
	w := NewWorld()
	w.AddChild(empty)
	w.AddChild(visible)
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)

	paths := cullPaths(c)
	require.Len(t, paths, 1)
	assert.Equal(t, Node(visible), paths[0][len(paths[0])-1])
}

func TestCullSiblingMaskIsolation(t *testing.T) {
	// A tiny node well inside the frustum deactivates every plane for
	// its own subtree. If the mask leaked to its siblings they would
	// escape testing entirely; they must still be culled.
	tiny := newSphereNode(math3d.Pt3(5, 0, 0), 0.01)
	left := newSphereNode(math3d.Pt3(0, 0, 0), 0.1)
	right := newSphereNode(math3d.Pt3(10, 0, 0), 0.1)
	c := cullScene(t, tiny, left, right)

	paths := cullPaths(c)
	require.Len(t, paths, 1)
	assert.Equal(t, Node(tiny), paths[0][len(paths[0])-1])
}

func TestCullThroughTransformGroup(t *testing.T) {
	// The same geometry, translated into the frustum center by a
	// transform group, is visible; translated to the edge of the
	// world, it is culled with it.
	in := NewTransformGroup(math3d.Translate(5, 0, 0))
	in.AddChild(newSphereNode(math3d.Pt3(0, 0, 0), 0.1))
	out := NewTransformGroup(math3d.Translate(10, 0, 0))
	out.AddChild(newSphereNode(math3d.Pt3(0, 0, 0), 0.1))
	anchor := newSphereNode(math3d.Pt3(0, 0, 0), 0.1)
	c := cullScene(t, anchor, in, out)

	paths := cullPaths(c)
	require.Len(t, paths, 1)
	path := paths[0]
	assert.Equal(t, Node(in), path[1])
}

func TestFrustumIntersectsInfiniteSphere(t *testing.T) {
	h := NewHandle(math3d.Pt3(0, 0, 0))
	w := NewWorld()
	w.AddChild(h)
	anchor := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	w.AddChild(anchor)
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)

	cc := NewCullContext(c)
	assert.True(t, cc.FrustumIntersectsSphereOf(h))
}
