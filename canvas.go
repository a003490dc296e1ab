// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"github.com/sgl3d/sgl/math3d"
	"github.com/sgl3d/sgl/render"
)

// Canvas is a pixel surface on which a view is rendered. The canvas
// owns the cube-to-pixel transform: x and y map to pixel coordinates
// with y increasing downward, and cube z in [-1,1] maps to pixel depth
// in [0,1].
//
// A canvas does not schedule its own painting. When the scene becomes
// draw-dirty the OnRepaint callback fires; the windowing layer should
// arrange for [Canvas.Repaint] to run with its backend.
type Canvas struct {
	view   *View
	width  int
	height int

	// OnRepaint, if non-nil, is called whenever the scene shown on
	// this canvas needs to be repainted.
	OnRepaint func()
}

// NewCanvas returns a new canvas of the specified size in pixels,
// displaying the specified view.
func NewCanvas(v *View, width, height int) *Canvas {
	c := &Canvas{view: v, width: width, height: height}
	v.addCanvas(c)
	return c
}

// View returns the view displayed on this canvas.
func (c *Canvas) View() *View { return c.view }

// Width returns the width of this canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of this canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// SetSize sets the size of this canvas in pixels and requests a
// repaint.
func (c *Canvas) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.requestRepaint()
}

// CubeToPixel returns the transform from cube to pixel coordinates:
//
//	xp = (1+xc) * 0.5 * (width-1)
//	yp = (1-yc) * 0.5 * (height-1)
//	zp = (1+zc) * 0.5
func (c *Canvas) CubeToPixel() math3d.Matrix4 {
	sx := 0.5 * float64(c.width-1)
	sy := 0.5 * float64(c.height-1)
	return math3d.NewMatrix4(
		sx, 0, 0, sx,
		0, -sy, 0, sy,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1)
}

// Repaint culls the view's world against this canvas and replays the
// resulting draw list on the specified backend. A canvas whose view
// has no world draws nothing.
func (c *Canvas) Repaint(b render.Backend) {
	w := c.view.World()
	if w == nil {
		log().Debug("sgl: repaint of canvas with no world")
		return
	}
	c.view.UpdateTransforms(c)
	cc := NewCullContext(c)
	CullNode(cc, w)
	dc := NewDrawContext(c, b)
	cc.DrawList().Draw(dc)
}

// PickAt picks the view's world at the pixel (xp,yp), returning the
// completed pick context. Returns an error if the pick segment cannot
// be constructed because the pixel-to-world transform is singular.
func (c *Canvas) PickAt(xp, yp float64) (*PickContext, error) {
	w := c.view.World()
	if w == nil {
		log().Debug("sgl: pick on canvas with no world")
		return nil, nil
	}
	c.view.UpdateTransforms(c)
	pc, err := NewPickContext(c, xp, yp)
	if err != nil {
		return nil, err
	}
	PickNode(pc, w)
	return pc, nil
}

func (c *Canvas) requestRepaint() {
	if c.OnRepaint != nil {
		c.OnRepaint()
	}
}
