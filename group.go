// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// Group is a node with an ordered list of child nodes. Its bounding
// sphere is the union of its children's spheres, and all three
// traversals recurse into the children.
type Group struct {
	NodeBase
	children []Node
}

// NewGroup returns a new group with no children.
func NewGroup() *Group {
	g := &Group{}
	g.Init(g)
	return g
}

// AddChild appends the node n to this group's children. If n is
// already a child, AddChild does nothing: a group holds a node at most
// once, though a node may be a child of many groups.
func (g *Group) AddChild(n Node) {
	if g.indexOfChild(n) >= 0 {
		return
	}
	g.children = append(g.children, n)
	n.AsBase().addParent(g)
	g.DirtyBoundingSphere()
	g.node().DirtyDraw()
}

// RemoveChild removes the node n from this group's children. If n is
// not a child, RemoveChild does nothing.
func (g *Group) RemoveChild(n Node) {
	i := g.indexOfChild(n)
	if i < 0 {
		return
	}
	g.children = append(g.children[:i], g.children[i+1:]...)
	n.AsBase().removeParent(g)
	g.DirtyBoundingSphere()
	g.node().DirtyDraw()
}

// Children returns this group's children, in order.
func (g *Group) Children() []Node {
	c := make([]Node, len(g.children))
	copy(c, g.children)
	return c
}

// NumChildren returns the number of children in this group.
func (g *Group) NumChildren() int { return len(g.children) }

func (g *Group) indexOfChild(n Node) int {
	for i, c := range g.children {
		if c == n {
			return i
		}
	}
	return -1
}

// ComputeBoundingSphere returns the union of the children's bounding
// spheres; empty if this group has no children.
func (g *Group) ComputeBoundingSphere(finite bool) math3d.Sphere {
	s := math3d.EmptySphere()
	for _, c := range g.children {
		s.ExpandBySphere(c.AsBase().BoundingSphere(finite))
	}
	return s
}

// Cull culls this group's children.
func (g *Group) Cull(cc *CullContext) {
	for _, c := range g.children {
		CullNode(cc, c)
	}
}

// Pick picks this group's children.
func (g *Group) Pick(pc *PickContext) {
	for _, c := range g.children {
		PickNode(pc, c)
	}
}
