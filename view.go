// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"math"

	"github.com/sgl3d/sgl/math3d"
)

// Projection selects how a view maps view coordinates to the clip
// cube.
type Projection int

const (
	// Perspective projection: distant objects appear smaller.
	Perspective Projection = iota

	// Orthographic projection: size is independent of depth.
	Orthographic
)

// viewFOV is the vertical field of view of perspective views, in
// degrees.
const viewFOV = 50.0

// maxViewScale is the zoom factor beyond which the world sphere starts
// to clip against the near and far planes; the frustum leaves this much
// depth room around the unit sphere.
const maxViewScale = 3.0

// View renders a world as seen from an orbiting eye. The eye orbits
// the center of the world's bounding sphere at azimuth and elevation
// angles, at a distance chosen so the whole sphere fits the frustum;
// scale zooms in and out. The same view may be displayed on multiple
// canvases.
type View struct {
	world    *World
	canvases []*Canvas

	azimuth    float64 // degrees, about the world's y axis
	elevation  float64 // degrees, about the view's x axis
	scale      float64
	axesScale  math3d.Vector3
	projection Projection

	worldToView math3d.Matrix4
	viewToCube  math3d.Matrix4
	distance    float64
}

// NewView returns a new view of the specified world, which may be nil,
// with azimuth and elevation zero and scale one.
func NewView(w *World) *View {
	v := &View{
		scale:       1,
		axesScale:   math3d.Vec3(1, 1, 1),
		worldToView: math3d.Identity4(),
		viewToCube:  math3d.Identity4(),
	}
	v.SetWorld(w)
	return v
}

// World returns the world this view renders, or nil.
func (v *View) World() *World { return v.world }

// SetWorld sets the world this view renders, detaching the view from
// any previous world.
func (v *View) SetWorld(w *World) {
	if v.world != nil {
		v.world.removeView(v)
	}
	v.world = w
	if w != nil {
		w.addView(v)
	}
	v.updateWorldToView()
	v.repaintCanvases()
}

// Canvases returns the canvases on which this view is displayed.
func (v *View) Canvases() []*Canvas {
	c := make([]*Canvas, len(v.canvases))
	copy(c, v.canvases)
	return c
}

func (v *View) addCanvas(c *Canvas) {
	v.canvases = append(v.canvases, c)
}

// Azimuth returns the azimuth angle, in degrees.
func (v *View) Azimuth() float64 { return v.azimuth }

// SetAzimuth sets the azimuth angle, in degrees.
func (v *View) SetAzimuth(deg float64) {
	v.azimuth = deg
	v.updateWorldToView()
	v.repaintCanvases()
}

// Elevation returns the elevation angle, in degrees.
func (v *View) Elevation() float64 { return v.elevation }

// SetElevation sets the elevation angle, in degrees.
func (v *View) SetElevation(deg float64) {
	v.elevation = deg
	v.updateWorldToView()
	v.repaintCanvases()
}

// Scale returns the zoom scale factor.
func (v *View) Scale() float64 { return v.scale }

// SetScale sets the zoom scale factor, which must be positive;
// non-positive values are ignored.
func (v *View) SetScale(s float64) {
	if s <= 0 {
		log().Debug("sgl: ignoring non-positive view scale", "scale", s)
		return
	}
	v.scale = s
	v.updateWorldToView()
	v.repaintCanvases()
}

// AxesScale returns the per-axis exaggeration applied in world
// coordinates, for example a vertical exaggeration of depth.
func (v *View) AxesScale() math3d.Vector3 { return v.axesScale }

// SetAxesScale sets the per-axis exaggeration.
func (v *View) SetAxesScale(s math3d.Vector3) {
	v.axesScale = s
	v.updateWorldToView()
	v.repaintCanvases()
}

// Projection returns the projection of this view.
func (v *View) Projection() Projection { return v.projection }

// SetProjection sets the projection of this view.
func (v *View) SetProjection(p Projection) {
	v.projection = p
	v.repaintCanvases()
}

// WorldToView returns the world-to-view transform.
func (v *View) WorldToView() math3d.Matrix4 { return v.worldToView }

// ViewToCube returns the view-to-cube transform computed by the most
// recent [View.UpdateTransforms].
func (v *View) ViewToCube() math3d.Matrix4 { return v.viewToCube }

// UpdateTransforms updates the world-to-view and view-to-cube
// transforms for the current world bounding sphere and the specified
// canvas's aspect ratio. Repaint and pick call this before
// constructing their contexts.
func (v *View) UpdateTransforms(c *Canvas) {
	v.updateWorldToView()

	aspect := 1.0
	if c.width > 0 && c.height > 0 {
		aspect = float64(c.width) / float64(c.height)
	}

	// The frustum encloses the unit world sphere with depth room for
	// zooming; it does not depend on the zoom scale, which acts in view
	// space against this fixed frustum.
	const r = 1.0
	d := v.distance
	if v.projection == Perspective {
		znear := d - maxViewScale*r
		if znear < 0.1 {
			znear = 0.1
		}
		zfar := d + maxViewScale*r
		v.viewToCube = math3d.Perspective(viewFOV, aspect, znear, zfar)
	} else {
		v.viewToCube = math3d.Ortho(-r*aspect, r*aspect, -r, r,
			d-maxViewScale*r, d+maxViewScale*r)
	}
}

// updateWorldToView rebuilds the world-to-view transform: center the
// world sphere at the origin, normalize it to unit radius with the
// axes scale, orbit, zoom, and push the unit sphere back so it fits a
// frustum with the view's field of view. The eye distance frames the
// unit sphere and never changes with the zoom; zooming scales the
// world against the fixed frustum.
func (v *View) updateWorldToView() {
	c := math3d.Pt3(0, 0, 0)
	r := 1.0
	if v.world != nil {
		ws := v.world.BoundingSphere(true)
		if !ws.IsEmpty() && ws.Radius > 0 {
			c = ws.Center
			r = ws.Radius
		}
	}
	v.distance = 1 / math.Sin(math3d.DegToRad(viewFOV)/2)
	u := 1 / r
	m := math3d.Translate(0, 0, -v.distance)
	m = m.Mul(math3d.RotateX(v.elevation))
	m = m.Mul(math3d.RotateY(v.azimuth))
	m = m.Mul(math3d.Scale(v.scale, v.scale, v.scale))
	m = m.Mul(math3d.Scale(u*v.axesScale.X, u*v.axesScale.Y, u*v.axesScale.Z))
	m = m.Mul(math3d.Translate(-c.X, -c.Y, -c.Z))
	v.worldToView = m
}

func (v *View) repaintCanvases() {
	for _, c := range v.canvases {
		c.requestRepaint()
	}
}
