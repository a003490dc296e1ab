// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// Dragable is implemented by nodes that can be dragged with a pointer,
// such as handles. [PickResult.DragableNode] finds the dragable node
// nearest the picked geometry on the node path.
//
// A drag gesture is one DragBegin, any number of Drag calls, and one
// DragEnd, each with a context describing the pointer at that moment.
type Dragable interface {
	Node

	// DragBegin begins a drag of this node.
	DragBegin(dc *DragContext)

	// Drag continues a drag of this node.
	Drag(dc *DragContext)

	// DragEnd ends a drag of this node.
	DragEnd(dc *DragContext)
}

// DragContext describes one moment of a drag gesture: the current
// pointer pixel, and the point and transforms captured by the pick
// that started the gesture.
type DragContext struct {
	canvas *Canvas
	pixelX float64
	pixelY float64

	pointLocal   math3d.Point3
	pointWorld   math3d.Point3
	pixelZ       float64
	localToWorld math3d.Matrix4
}

// NewDragContext returns a new drag context for the pointer at pixel
// (xp,yp) on the specified canvas, dragging the geometry picked by the
// result r.
func NewDragContext(c *Canvas, xp, yp float64, r *PickResult) *DragContext {
	return &DragContext{
		canvas:       c,
		pixelX:       xp,
		pixelY:       yp,
		pointLocal:   r.LocalPoint(),
		pointWorld:   r.WorldPoint(),
		pixelZ:       r.PixelZ(),
		localToWorld: r.LocalToWorld(),
	}
}

// Canvas returns the canvas on which the drag is happening.
func (dc *DragContext) Canvas() *Canvas { return dc.canvas }

// PixelX returns the current pointer pixel x coordinate.
func (dc *DragContext) PixelX() float64 { return dc.pixelX }

// PixelY returns the current pointer pixel y coordinate.
func (dc *DragContext) PixelY() float64 { return dc.pixelY }

// LocalPoint returns the picked point in the dragged node's local
// coordinates.
func (dc *DragContext) LocalPoint() math3d.Point3 { return dc.pointLocal }

// WorldPoint returns the picked point in world coordinates.
func (dc *DragContext) WorldPoint() math3d.Point3 { return dc.pointWorld }

// PixelZ returns the depth of the picked point, in [0,1].
func (dc *DragContext) PixelZ() float64 { return dc.pixelZ }

// LocalToWorld returns the local-to-world transform at the dragged
// node when it was picked.
func (dc *DragContext) LocalToWorld() math3d.Matrix4 { return dc.localToWorld }
