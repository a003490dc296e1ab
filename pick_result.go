// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// PickResult is one intersection of a pick segment with geometry: the
// node path at which it was found, the intersection point in local,
// world, and pixel coordinates, and the local-to-world transform in
// effect when it was added.
type PickResult struct {
	nodes        []Node
	pointLocal   math3d.Point3
	pointWorld   math3d.Point3
	pointPixel   math3d.Point3
	localToWorld math3d.Matrix4
}

// Nodes returns the node path of this result, from the root of the
// scene graph to the picked node.
func (r *PickResult) Nodes() []Node { return r.nodes }

// PickedNode returns the node whose geometry was intersected: the last
// node on the path.
func (r *PickResult) PickedNode() Node {
	return r.nodes[len(r.nodes)-1]
}

// LocalPoint returns the intersection point in the picked node's local
// coordinates.
func (r *PickResult) LocalPoint() math3d.Point3 { return r.pointLocal }

// WorldPoint returns the intersection point in world coordinates.
func (r *PickResult) WorldPoint() math3d.Point3 { return r.pointWorld }

// PixelPoint returns the intersection point in pixel coordinates; its
// z coordinate is the depth in [0,1].
func (r *PickResult) PixelPoint() math3d.Point3 { return r.pointPixel }

// PixelZ returns the depth of the intersection in pixel coordinates.
// Smaller is closer to the viewer.
func (r *PickResult) PixelZ() float64 { return r.pointPixel.Z }

// LocalToWorld returns the local-to-world transform in effect at the
// picked node.
func (r *PickResult) LocalToWorld() math3d.Matrix4 { return r.localToWorld }

// SelectableNode returns the selectable node nearest the picked node
// on the path, searching from the picked node toward the root, or nil
// if no node on the path is selectable.
func (r *PickResult) SelectableNode() Selectable {
	for i := len(r.nodes) - 1; i >= 0; i-- {
		if s, ok := r.nodes[i].(Selectable); ok {
			return s
		}
	}
	return nil
}

// DragableNode returns the dragable node nearest the picked node on
// the path, searching from the picked node toward the root, or nil if
// no node on the path is dragable.
func (r *PickResult) DragableNode() Dragable {
	for i := len(r.nodes) - 1; i >= 0; i-- {
		if d, ok := r.nodes[i].(Dragable); ok {
			return d
		}
	}
	return nil
}
