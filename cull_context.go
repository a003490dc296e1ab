// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// CullContext is the context of a cull traversal. It carries the six
// planes of the view frustum, expressed in the current local
// coordinates, and the draw list of visible node paths accumulated so
// far.
//
// Each plane has an active bit. When a node's bounding sphere lies
// entirely inside a plane, that plane cannot cull anything in the
// node's subtree, so its bit is cleared for the duration of the
// subtree; [CullNode] saves the mask when the node is pushed and
// restores it when the node is popped. When all six bits are clear,
// sphere tests are skipped entirely.
type CullContext struct {
	TransformContext

	drawList DrawList

	// Frustum planes in current local coordinates, ordered right,
	// left, top, bottom, near, far; bit i of active corresponds to
	// planes[i].
	planes [6]math3d.Plane
	active uint

	planesStack [][6]math3d.Plane
	activeStack []uint
}

// NewCullContext returns a new cull context for the specified canvas,
// with the frustum planes initialized from the canvas's view and
// transformed to world coordinates.
func NewCullContext(c *Canvas) *CullContext {
	cc := &CullContext{}
	cc.initTransformContext(c)

	// Planes of the clip cube, inward normals.
	cc.planes[0] = math3d.NewPlane(-1, 0, 0, 1) // right:  x <= 1
	cc.planes[1] = math3d.NewPlane(1, 0, 0, 1)  // left:   x >= -1
	cc.planes[2] = math3d.NewPlane(0, -1, 0, 1) // top:    y <= 1
	cc.planes[3] = math3d.NewPlane(0, 1, 0, 1)  // bottom: y >= -1
	cc.planes[4] = math3d.NewPlane(0, 0, 1, 1)  // near:   z >= -1
	cc.planes[5] = math3d.NewPlane(0, 0, -1, 1) // far:    z <= 1
	cc.active = 0x3F

	// Move the planes from cube to world coordinates. The cube planes
	// were stated in the transformed (new) coordinates, so the inverse
	// required is the world-to-cube transform itself.
	worldToCube := cc.WorldToCube()
	for i := range cc.planes {
		cc.planes[i].TransformWithInverse(worldToCube)
	}
	return cc
}

// DrawList returns the draw list accumulated by this cull traversal.
func (cc *CullContext) DrawList() *DrawList { return &cc.drawList }

// AppendNodes appends a copy of the current node path to the draw
// list.
func (cc *CullContext) AppendNodes() {
	cc.drawList.Append(cc.Nodes())
}

// PushNode appends the node n to the node path and saves the
// active-plane mask.
func (cc *CullContext) PushNode(n Node) {
	cc.TransformContext.PushNode(n)
	cc.activeStack = append(cc.activeStack, cc.active)
}

// PopNode removes the node most recently pushed and restores the
// active-plane mask saved with it.
func (cc *CullContext) PopNode() {
	cc.TransformContext.PopNode()
	cc.active = cc.activeStack[len(cc.activeStack)-1]
	cc.activeStack = cc.activeStack[:len(cc.activeStack)-1]
}

// PushLocalToWorld composes the specified transform onto the current
// local-to-world transform and moves the active frustum planes into
// the new local coordinates. The transform must be invertible in
// principle; the plane update uses only the transform itself.
func (cc *CullContext) PushLocalToWorld(m math3d.Matrix4) {
	cc.TransformContext.PushLocalToWorld(m)
	cc.planesStack = append(cc.planesStack, cc.planes)
	for i := range cc.planes {
		if cc.active&(1<<uint(i)) != 0 {
			// Points map new->old through m, so m is the inverse of
			// the old->new point map the plane transform needs.
			cc.planes[i].TransformWithInverse(m)
		}
	}
}

// PopLocalToWorld restores the local-to-world transform and the
// frustum planes saved by the matching push.
func (cc *CullContext) PopLocalToWorld() {
	cc.TransformContext.PopLocalToWorld()
	cc.planes = cc.planesStack[len(cc.planesStack)-1]
	cc.planesStack = cc.planesStack[:len(cc.planesStack)-1]
}

// FrustumIntersectsSphereOf returns true if the view frustum
// intersects the bounding sphere of the node n; a false result means
// the node and its whole subtree may be culled. An empty sphere is
// culled; an infinite sphere is always visible. As a side effect,
// planes that the sphere lies entirely inside are deactivated for the
// node's subtree.
func (cc *CullContext) FrustumIntersectsSphereOf(n Node) bool {
	if cc.active == 0 {
		return true
	}
	bs := n.AsBase().BoundingSphere(false)
	if bs.IsEmpty() {
		return false
	}
	if bs.IsInfinite() {
		return true
	}
	c, r := bs.Center, bs.Radius
	for i := uint(0); i < 6; i++ {
		if cc.active&(1<<i) == 0 {
			continue
		}
		d := cc.planes[i].DistanceTo(c)
		if d < -r {
			return false
		}
		if d > r {
			cc.active &^= 1 << i
		}
	}
	return true
}
