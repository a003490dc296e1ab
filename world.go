// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

// World is the root group of a scene graph. Views attach to a world to
// render it; when any node below the world is marked draw-dirty, the
// world requests a repaint of every canvas of every attached view.
type World struct {
	Group
	views []*View
}

// NewWorld returns a new world with no children and no views.
func NewWorld() *World {
	w := &World{}
	w.Init(w)
	return w
}

// Views returns the views attached to this world.
func (w *World) Views() []*View {
	v := make([]*View, len(w.views))
	copy(v, w.views)
	return v
}

func (w *World) addView(v *View) {
	for _, x := range w.views {
		if x == v {
			return
		}
	}
	w.views = append(w.views, v)
}

func (w *World) removeView(v *View) {
	for i, x := range w.views {
		if x == v {
			w.views = append(w.views[:i], w.views[i+1:]...)
			return
		}
	}
}

// DirtyDraw requests a repaint of every canvas attached to this world
// through its views. A world has no parents, so propagation ends here.
func (w *World) DirtyDraw() {
	if len(w.views) == 0 {
		log().Debug("sgl: draw-dirty world has no views attached")
		return
	}
	for _, v := range w.views {
		v.repaintCanvases()
	}
}
