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

func TestBoxConstraintClamp(t *testing.T) {
	box, err := math3d.NewBox3(math3d.Pt3(0, 0, 0), math3d.Pt3(10, 5, 2))
	require.NoError(t, err)
	bc := NewBoxConstraint(box)

	assert.Equal(t, math3d.Pt3(3, 4, 1), bc.Constrain(math3d.Pt3(3, 4, 1)))
	assert.Equal(t, math3d.Pt3(0, 5, 2), bc.Constrain(math3d.Pt3(-7, 9, 3)))
	assert.Equal(t, math3d.Pt3(10, 0, 0), bc.Constrain(math3d.Pt3(99, -1, -1)))
}

func TestBoxConstraintSampling(t *testing.T) {
	box, err := math3d.NewBox3(math3d.Pt3(0, 0, 0), math3d.Pt3(10, 10, 10))
	require.NoError(t, err)
	bc := NewBoxConstraint(box)
	bc.SetSampling(2, 0, 2.5)

	p := bc.Constrain(math3d.Pt3(3.2, 3.2, 3.2))
	assert.InDelta(t, 4, p.X, 1e-12)    // snapped to multiples of 2
	assert.InDelta(t, 3.2, p.Y, 1e-12)  // continuous
	assert.InDelta(t, 2.5, p.Z, 1e-12)  // snapped to multiples of 2.5

	// Snapping never escapes the box.
	q := bc.Constrain(math3d.Pt3(9.9, 0, 9.9))
	assert.LessOrEqual(t, q.X, 10.0)
	assert.LessOrEqual(t, q.Z, 10.0)
}

func TestLineConstraintNearest(t *testing.T) {
	// A line across the view axis is far from parallel to the pick
	// rays, so the constraint follows the nearest point on the line.
	c := transformScene(t)
	origin := math3d.Pt3(0, 0, 0)
	axis := math3d.Vec3(1, 0, 0)

	tc := NewTransformContext(c)
	start := tc.WorldToPixel().MulPoint3(origin)
	lc, err := NewLineConstraint(c, start.X, start.Y, origin, axis)
	require.NoError(t, err)

	p0 := lc.Point(start.X, start.Y)
	assert.InDelta(t, 0, p0.X, 1e-6)
	assert.InDelta(t, 0, p0.Y, 1e-9)
	assert.InDelta(t, 0, p0.Z, 1e-9)

	// Pointing at the pixel of a point further along the line lands
	// near that point, and stays on the line.
	target := math3d.Pt3(0.5, 0, 0)
	px := tc.WorldToPixel().MulPoint3(target)
	p1 := lc.Point(px.X, px.Y)
	assert.InDelta(t, 0.5, p1.X, 1e-6)
	assert.InDelta(t, 0, p1.Y, 1e-9)
	assert.InDelta(t, 0, p1.Z, 1e-9)
}

func TestLineConstraintPushPull(t *testing.T) {
	// A line along the view axis is parallel to the pick rays; the
	// constraint falls back to push-pull on vertical pointer motion.
	c := transformScene(t)
	origin := math3d.Pt3(0, 0, 0)
	axis := math3d.Vec3(0, 0, 1)

	tc := NewTransformContext(c)
	start := tc.WorldToPixel().MulPoint3(origin)
	lc, err := NewLineConstraint(c, start.X, start.Y, origin, axis)
	require.NoError(t, err)
	require.True(t, lc.pushPull)

	// No motion, no displacement.
	p0 := lc.Point(start.X, start.Y)
	assertPointNear(t, origin, p0, 1e-6)

	// Vertical motion moves the point along the axis only.
	p1 := lc.Point(start.X, start.Y+40)
	assert.InDelta(t, 0, p1.X, 1e-9)
	assert.InDelta(t, 0, p1.Y, 1e-9)
	assert.NotZero(t, p1.Z)

	// Opposite motion moves the opposite way.
	p2 := lc.Point(start.X, start.Y-40)
	assert.InDelta(t, -p1.Z, p2.Z, 1e-9)
}

func TestDragContext(t *testing.T) {
	c, _ := triangleScene(t)
	pc, err := c.PickAt(50, 50)
	require.NoError(t, err)
	r := pc.Closest()
	require.NotNil(t, r)

	dc := NewDragContext(c, 51, 52, r)
	assert.Equal(t, c, dc.Canvas())
	assert.Equal(t, 51.0, dc.PixelX())
	assert.Equal(t, 52.0, dc.PixelY())
	assert.Equal(t, r.WorldPoint(), dc.WorldPoint())
	assert.Equal(t, r.LocalPoint(), dc.LocalPoint())
	assert.Equal(t, r.PixelZ(), dc.PixelZ())
	assert.Equal(t, r.LocalToWorld(), dc.LocalToWorld())
}
