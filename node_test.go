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

// sphereNode is a leaf with a fixed bounding sphere that counts how
// often its sphere is computed and how often it is drawn.
type sphereNode struct {
	NodeBase
	sphere   math3d.Sphere
	computes int
	culls    int
	draws    int
}

func newSphereNode(center math3d.Point3, radius float64) *sphereNode {
	n := &sphereNode{sphere: math3d.Sphere{Center: center, Radius: radius}}
	n.Init(n)
	return n
}

func (n *sphereNode) ComputeBoundingSphere(finite bool) math3d.Sphere {
	n.computes++
	return n.sphere
}

func (n *sphereNode) Cull(cc *CullContext) {
	n.culls++
	n.NodeBase.Cull(cc)
}

func (n *sphereNode) Draw(dc *DrawContext) {
	n.draws++
}

// countingGroup counts sphere computations.
type countingGroup struct {
	Group
	computes int
}

func newCountingGroup() *countingGroup {
	g := &countingGroup{}
	g.Init(g)
	return g
}

func (g *countingGroup) ComputeBoundingSphere(finite bool) math3d.Sphere {
	g.computes++
	return g.Group.ComputeBoundingSphere(finite)
}

func TestBoundingSphereCached(t *testing.T) {
	n := newSphereNode(math3d.Pt3(1, 2, 3), 4)

	s := n.BoundingSphere(true)
	assert.Equal(t, math3d.Pt3(1, 2, 3), s.Center)
	assert.Equal(t, 4.0, s.Radius)
	assert.Equal(t, 1, n.computes)

	// Clean cache: no recompute.
	n.BoundingSphere(true)
	n.BoundingSphere(true)
	assert.Equal(t, 1, n.computes)

	// Requesting the other form recomputes.
	n.BoundingSphere(false)
	assert.Equal(t, 2, n.computes)
	n.BoundingSphere(false)
	assert.Equal(t, 2, n.computes)

	// Dirtying invalidates.
	n.DirtyBoundingSphere()
	n.BoundingSphere(false)
	assert.Equal(t, 3, n.computes)
}

func TestDirtyPropagation(t *testing.T) {
	root := newCountingGroup()
	mid := newCountingGroup()
	leaf := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	root.AddChild(mid)
	mid.AddChild(leaf)

	root.BoundingSphere(true)
	rc := root.computes
	mc := mid.computes

	// A clean tree does not recompute.
	root.BoundingSphere(true)
	assert.Equal(t, rc, root.computes)

	// Dirtying the leaf dirties every ancestor.
	leaf.DirtyBoundingSphere()
	root.BoundingSphere(true)
	assert.Equal(t, rc+1, root.computes)
	assert.Equal(t, mc+1, mid.computes)
}

func TestDirtyPropagationMemoized(t *testing.T) {
	root := newCountingGroup()
	leaf := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	root.AddChild(leaf)
	root.BoundingSphere(true)
	rc := root.computes

	// Many dirty calls on an already-dirty subtree collapse into one
	// recompute.
	for i := 0; i < 10; i++ {
		leaf.DirtyBoundingSphere()
	}
	root.BoundingSphere(true)
	assert.Equal(t, rc+1, root.computes)
}

func TestDirtyPropagationMultiParent(t *testing.T) {
	a := newCountingGroup()
	b := newCountingGroup()
	shared := newSphereNode(math3d.Pt3(5, 0, 0), 1)
	a.AddChild(shared)
	b.AddChild(shared)
	require.Len(t, shared.Parents(), 2)

	a.BoundingSphere(true)
	b.BoundingSphere(true)
	ac, bc := a.computes, b.computes

	shared.DirtyBoundingSphere()
	a.BoundingSphere(true)
	b.BoundingSphere(true)
	assert.Equal(t, ac+1, a.computes)
	assert.Equal(t, bc+1, b.computes)
}

func TestGroupBoundingSphereUnion(t *testing.T) {
	g := NewGroup()
	g.AddChild(newSphereNode(math3d.Pt3(-2, 0, 0), 1))
	g.AddChild(newSphereNode(math3d.Pt3(2, 0, 0), 1))

	s := g.BoundingSphere(true)
	assert.True(t, s.Contains(math3d.Pt3(-3, 0, 0)))
	assert.True(t, s.Contains(math3d.Pt3(3, 0, 0)))
	assert.InDelta(t, 3, s.Radius, 1e-12)

	// An empty group has an empty sphere.
	assert.True(t, NewGroup().BoundingSphere(true).IsEmpty())
}

func TestAddChildIdempotent(t *testing.T) {
	g := NewGroup()
	n := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	g.AddChild(n)
	g.AddChild(n)
	g.AddChild(n)
	assert.Equal(t, 1, g.NumChildren())
	assert.Len(t, n.Parents(), 1)
}

func TestRemoveChild(t *testing.T) {
	g := NewGroup()
	n := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	other := newSphereNode(math3d.Pt3(1, 0, 0), 1)

	// Removing a non-child is a no-op.
	g.RemoveChild(n)
	assert.Equal(t, 0, g.NumChildren())

	g.AddChild(n)
	g.AddChild(other)
	g.RemoveChild(n)
	assert.Equal(t, 1, g.NumChildren())
	assert.Empty(t, n.Parents())

	// Removal dirties the group's sphere.
	s := g.BoundingSphere(true)
	assert.Equal(t, math3d.Pt3(1, 0, 0), s.Center)
}

func TestDirtyDrawReachesWorld(t *testing.T) {
	w := NewWorld()
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	repaints := 0
	c.OnRepaint = func() { repaints++ }

	g := NewGroup()
	n := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	w.AddChild(g)
	g.AddChild(n)
	repaints = 0

	n.DirtyDraw()
	assert.Equal(t, 1, repaints)
	assert.True(t, n.DrawDirty())
	assert.True(t, g.DrawDirty())
}

func TestTraversalContextStack(t *testing.T) {
	var tc TraversalContext
	assert.Nil(t, tc.Node())

	a := newSphereNode(math3d.Pt3(0, 0, 0), 1)
	b := newSphereNode(math3d.Pt3(1, 0, 0), 1)
	tc.PushNode(a)
	tc.PushNode(b)
	assert.Equal(t, Node(b), tc.Node())
	assert.Equal(t, []Node{a, b}, tc.Nodes())

	tc.PopNode()
	assert.Equal(t, Node(a), tc.Node())
	tc.PopNode()
	assert.Panics(t, func() { tc.PopNode() })
}
