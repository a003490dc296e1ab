// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import "github.com/sgl3d/sgl/render"

// DrawContext is the context of a draw traversal: a transform context
// plus the rendering backend being drawn to.
type DrawContext struct {
	TransformContext
	backend render.Backend
}

// NewDrawContext returns a new draw context for the specified canvas
// and backend.
func NewDrawContext(c *Canvas, b render.Backend) *DrawContext {
	dc := &DrawContext{backend: b}
	dc.initTransformContext(c)
	return dc
}

// Backend returns the rendering backend being drawn to.
func (dc *DrawContext) Backend() render.Backend { return dc.backend }
