// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/math3d"

// PickContext is the context of a pick traversal. A pick begins at a
// pixel (x,y) on a canvas; the segment from depth 0 to depth 1 at that
// pixel is transformed into the scene and tested against geometry. The
// context keeps the segment in two forms: fixed in world coordinates,
// and in the current local coordinates, updated in lock step with
// every transform push and pop so leaf geometry can test in its own
// frame.
type PickContext struct {
	TransformContext

	pixelX float64
	pixelY float64

	worldSegment math3d.Line3
	localSegment math3d.Line3
	segmentStack []math3d.Line3

	results []*PickResult
}

// NewPickContext returns a new pick context for the pixel (xp,yp) on
// the specified canvas. Returns an error if the pixel-to-world
// transform is singular, in which case no pick is possible.
func NewPickContext(c *Canvas, xp, yp float64) (*PickContext, error) {
	pc := &PickContext{pixelX: xp, pixelY: yp}
	pc.initTransformContext(c)
	pixelToWorld, err := pc.PixelToWorld()
	if err != nil {
		return nil, err
	}
	near := pixelToWorld.MulPoint3(math3d.Pt3(xp, yp, 0))
	far := pixelToWorld.MulPoint3(math3d.Pt3(xp, yp, 1))
	pc.worldSegment = math3d.NewLine3(near, far)
	pc.localSegment = pc.worldSegment
	return pc, nil
}

// PixelX returns the pixel x coordinate at which this pick began.
func (pc *PickContext) PixelX() float64 { return pc.pixelX }

// PixelY returns the pixel y coordinate at which this pick began.
func (pc *PickContext) PixelY() float64 { return pc.pixelY }

// WorldSegment returns the pick segment in world coordinates, from
// the near clipping plane to the far.
func (pc *PickContext) WorldSegment() math3d.Line3 { return pc.worldSegment }

// LocalSegment returns the pick segment in the current local
// coordinates.
func (pc *PickContext) LocalSegment() math3d.Line3 { return pc.localSegment }

// PushLocalToWorld composes the specified transform onto the current
// local-to-world transform and moves the pick segment into the new
// local coordinates. Transforms pushed during traversal must be
// invertible; pushing a singular transform panics.
func (pc *PickContext) PushLocalToWorld(m math3d.Matrix4) {
	mi, err := m.Inverse()
	if err != nil {
		panic("sgl: singular transform pushed during pick traversal")
	}
	pc.TransformContext.PushLocalToWorld(m)
	pc.segmentStack = append(pc.segmentStack, pc.localSegment)
	pc.localSegment.Transform(mi)
}

// PopLocalToWorld restores the local-to-world transform and the pick
// segment saved by the matching push.
func (pc *PickContext) PopLocalToWorld() {
	pc.TransformContext.PopLocalToWorld()
	pc.localSegment = pc.segmentStack[len(pc.segmentStack)-1]
	pc.segmentStack = pc.segmentStack[:len(pc.segmentStack)-1]
}

// SegmentIntersectsSphereOf returns true if the pick segment
// intersects the bounding sphere of the node n; a false result means
// the node and its whole subtree cannot be picked. An empty sphere is
// never hit; an infinite sphere always is. The test clamps the
// parametric projection of the sphere center onto the segment and
// compares squared distances.
func (pc *PickContext) SegmentIntersectsSphereOf(n Node) bool {
	bs := n.AsBase().BoundingSphere(false)
	if bs.IsEmpty() {
		return false
	}
	if bs.IsInfinite() {
		return true
	}
	q := pc.localSegment.ClosestPointToPoint(bs.Center)
	return q.DistanceSquaredTo(bs.Center) <= bs.Radius*bs.Radius
}

// AddResult records an intersection of the pick segment with geometry
// at the point p, in the current local coordinates. The result copies
// the current node path and the current local-to-world transform, and
// carries the point in local, world, and pixel coordinates.
func (pc *PickContext) AddResult(p math3d.Point3) {
	localToWorld := pc.LocalToWorld()
	r := &PickResult{
		nodes:        pc.Nodes(),
		pointLocal:   p,
		pointWorld:   localToWorld.MulPoint3(p),
		pointPixel:   pc.LocalToPixel().MulPoint3(p),
		localToWorld: localToWorld,
	}
	pc.results = append(pc.results, r)
}

// Results returns all results recorded by this pick traversal, in the
// order they were added.
func (pc *PickContext) Results() []*PickResult { return pc.results }

// Closest returns the result nearest the viewer: the one with the
// minimum pixel z coordinate. Ties go to the result added first.
// Returns nil if nothing was picked.
func (pc *PickContext) Closest() *PickResult {
	var best *PickResult
	for _, r := range pc.results {
		if best == nil || r.pointPixel.Z < best.pointPixel.Z {
			best = r
		}
	}
	return best
}
