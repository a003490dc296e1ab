// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// Node is an element of the scene graph. Concrete node types embed
// [NodeBase], which provides defaults for every method except AsBase,
// and override the hooks they care about: ComputeBoundingSphere for
// nodes with extent, the draw hooks for drawable leaves, the pick hook
// for pickable leaves, and the begin/end pairs for nodes that push
// transforms or render state.
//
// The begin/end hooks of each traversal are strictly paired: whenever
// a traversal calls CullBegin on a node it later calls CullEnd on the
// same node, and likewise for draw and pick. Anything a begin hook
// pushes, the matching end hook must pop.
type Node interface {

	// AsBase returns the NodeBase embedded in this node.
	AsBase() *NodeBase

	// ComputeBoundingSphere returns a sphere bounding this node in its
	// local coordinates. If finite is true the sphere must be finite,
	// even for nodes (such as [Handle]) whose true extent is unbounded.
	// Callers should normally use the cached [NodeBase.BoundingSphere]
	// instead.
	ComputeBoundingSphere(finite bool) math3d.Sphere

	// DirtyDraw notifies this node and its ancestors that it must be
	// redrawn. [World] overrides this to request canvas repaints.
	DirtyDraw()

	// CullBegin is called before culling this node and its children.
	CullBegin(cc *CullContext)

	// Cull culls this node. The default appends the current node path
	// to the context's draw list; [Group] recurses into children.
	Cull(cc *CullContext)

	// CullEnd is called after culling this node and its children.
	CullEnd(cc *CullContext)

	// DrawBegin is called before drawing this node and its children.
	DrawBegin(dc *DrawContext)

	// Draw draws this node.
	Draw(dc *DrawContext)

	// DrawEnd is called after drawing this node and its children.
	DrawEnd(dc *DrawContext)

	// PickBegin is called before picking this node and its children.
	PickBegin(pc *PickContext)

	// Pick picks this node. Leaves with geometry test the context's
	// pick segment and add results; [Group] recurses into children.
	Pick(pc *PickContext)

	// PickEnd is called after picking this node and its children.
	PickEnd(pc *PickContext)
}

// NodeBase is the base implementation of [Node]: parent back-references
// and the cached bounding sphere. Concrete node types embed a NodeBase
// and must call [NodeBase.Init] with themselves before use, so that
// base code can reach their overridden methods; the New functions of
// this package do so.
type NodeBase struct {
	this    Node
	parents []*Group

	// Bounding sphere cache. sphereValid is false for the zero value,
	// so a new node computes its sphere on first request. sphereFinite
	// records which form the cache holds; a request for the other form
	// recomputes.
	sphere       math3d.Sphere
	sphereValid  bool
	sphereFinite bool

	drawDirty bool
}

// Init sets the back-pointer through which NodeBase reaches the
// methods of the node that embeds it. It must be called once, with the
// embedding node, before the node is used.
func (nb *NodeBase) Init(n Node) {
	nb.this = n
}

// AsBase returns this NodeBase.
func (nb *NodeBase) AsBase() *NodeBase { return nb }

// node returns the node that embeds this NodeBase.
func (nb *NodeBase) node() Node { return nb.this }

// Parents returns the groups that currently have this node as a child.
// A node in a scene DAG may have any number of parents.
func (nb *NodeBase) Parents() []*Group {
	p := make([]*Group, len(nb.parents))
	copy(p, nb.parents)
	return p
}

func (nb *NodeBase) addParent(g *Group) {
	nb.parents = append(nb.parents, g)
}

func (nb *NodeBase) removeParent(g *Group) {
	for i, p := range nb.parents {
		if p == g {
			nb.parents = append(nb.parents[:i], nb.parents[i+1:]...)
			return
		}
	}
}

// BoundingSphere returns a sphere bounding this node in its local
// coordinates, computing and caching it if necessary. If finite is
// true the sphere is finite. The cache holds one sphere along with the
// form it was computed for; requesting the other form recomputes.
func (nb *NodeBase) BoundingSphere(finite bool) math3d.Sphere {
	if !nb.sphereValid || finite != nb.sphereFinite {
		nb.sphere = nb.this.ComputeBoundingSphere(finite)
		nb.sphereFinite = finite
		nb.sphereValid = true
	}
	return nb.sphere
}

// DirtyBoundingSphere invalidates the cached bounding sphere of this
// node and of its ancestors. Propagation stops at the first node whose
// cache is already invalid, so repeated mutations cost O(1) amortized.
func (nb *NodeBase) DirtyBoundingSphere() {
	if !nb.sphereValid {
		return
	}
	nb.sphereValid = false
	for _, p := range nb.parents {
		p.DirtyBoundingSphere()
	}
}

// DirtyDraw marks this node as needing redraw and notifies its
// ancestors. At the root, [World] turns the notification into repaint
// requests for attached canvases.
func (nb *NodeBase) DirtyDraw() {
	nb.drawDirty = true
	for _, p := range nb.parents {
		p.node().DirtyDraw()
	}
}

// DrawDirty returns true if this node has been marked as needing
// redraw since it was last drawn.
func (nb *NodeBase) DrawDirty() bool { return nb.drawDirty }

// ComputeBoundingSphere returns the empty sphere; nodes with extent
// override this.
func (nb *NodeBase) ComputeBoundingSphere(finite bool) math3d.Sphere {
	return math3d.EmptySphere()
}

// Cull appends the current node path to the draw list, making this
// node drawable by default.
func (nb *NodeBase) Cull(cc *CullContext) {
	cc.AppendNodes()
}

func (nb *NodeBase) CullBegin(cc *CullContext) {}
func (nb *NodeBase) CullEnd(cc *CullContext)   {}
func (nb *NodeBase) DrawBegin(dc *DrawContext) {}
func (nb *NodeBase) Draw(dc *DrawContext)      {}
func (nb *NodeBase) DrawEnd(dc *DrawContext)   {}
func (nb *NodeBase) PickBegin(pc *PickContext) {}
func (nb *NodeBase) Pick(pc *PickContext)      {}
func (nb *NodeBase) PickEnd(pc *PickContext)   {}

// CullNode applies the cull traversal to the node n: if the frustum
// intersects the node's bounding sphere, its cull hooks run between a
// node push and pop. Plane deactivations made while testing and
// culling n are restored when n is popped, so siblings are unaffected.
func CullNode(cc *CullContext, n Node) {
	cc.PushNode(n)
	if cc.FrustumIntersectsSphereOf(n) {
		n.CullBegin(cc)
		n.Cull(cc)
		n.CullEnd(cc)
	}
	cc.PopNode()
}

// PickNode applies the pick traversal to the node n: if the pick
// segment intersects the node's bounding sphere, its pick hooks run
// between a node push and pop.
func PickNode(pc *PickContext, n Node) {
	pc.PushNode(n)
	if pc.SegmentIntersectsSphereOf(n) {
		n.PickBegin(pc)
		n.Pick(pc)
		n.PickEnd(pc)
	}
	pc.PopNode()
}
