// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgl3d/sgl/math3d"
	"github.com/sgl3d/sgl/render"
)

// eventNode records its draw bracket into a shared event log.
type eventNode struct {
	NodeBase
	name   string
	sphere math3d.Sphere
	log    *[]string
}

func newEventNode(name string, center math3d.Point3, log *[]string) *eventNode {
	n := &eventNode{
		name:   name,
		sphere: math3d.Sphere{Center: center, Radius: 0.25},
		log:    log,
	}
	n.Init(n)
	return n
}

func (n *eventNode) ComputeBoundingSphere(finite bool) math3d.Sphere { return n.sphere }
func (n *eventNode) DrawBegin(dc *DrawContext)                       { *n.log = append(*n.log, n.name+".begin") }
func (n *eventNode) Draw(dc *DrawContext)                            { *n.log = append(*n.log, n.name+".draw") }
func (n *eventNode) DrawEnd(dc *DrawContext)                         { *n.log = append(*n.log, n.name+".end") }

// eventGroup records its draw bracket into a shared event log.
type eventGroup struct {
	Group
	name string
	log  *[]string
}

func newEventGroup(name string, log *[]string) *eventGroup {
	g := &eventGroup{name: name, log: log}
	g.Init(g)
	return g
}

func (g *eventGroup) DrawBegin(dc *DrawContext) { *g.log = append(*g.log, g.name+".begin") }
func (g *eventGroup) DrawEnd(dc *DrawContext)   { *g.log = append(*g.log, g.name+".end") }

func TestDrawListCoalescing(t *testing.T) {
	var events []string
	g1 := newEventGroup("g1", &events)
	g2 := newEventGroup("g2", &events)
	l1 := newEventNode("l1", math3d.Pt3(-1, 0, 0), &events)
	l2 := newEventNode("l2", math3d.Pt3(0, 0, 0), &events)
	l3 := newEventNode("l3", math3d.Pt3(1, 0, 0), &events)
	g1.AddChild(l1)
	g1.AddChild(l2)
	g2.AddChild(l3)

	var dl DrawList
	dl.Append([]Node{g1, l1})
	dl.Append([]Node{g1, l2})
	dl.Append([]Node{g2, l3})
	assert.Equal(t, 3, dl.Len())

	w := NewWorld()
	w.AddChild(g1)
	w.AddChild(g2)
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)
	dc := NewDrawContext(c, render.NewRecorder())

	dl.Draw(dc)

	// g1 is opened once for both of its leaves, then swapped for g2.
	assert.Equal(t, []string{
		"g1.begin",
		"l1.begin", "l1.draw", "l1.end",
		"l2.begin", "l2.draw", "l2.end",
		"g1.end",
		"g2.begin",
		"l3.begin", "l3.draw", "l3.end",
		"g2.end",
	}, events)
}

func TestDrawListClearsDrawDirty(t *testing.T) {
	var events []string
	l := newEventNode("l", math3d.Pt3(0, 0, 0), &events)
	w := NewWorld()
	w.AddChild(l)
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)

	l.DirtyDraw()
	require.True(t, l.DrawDirty())

	var dl DrawList
	dl.Append([]Node{w, l})
	dl.Draw(NewDrawContext(c, render.NewRecorder()))
	assert.False(t, l.DrawDirty())
	assert.False(t, w.DrawDirty())
}

func TestDrawListEmpty(t *testing.T) {
	w := NewWorld()
	w.AddChild(newSphereNode(math3d.Pt3(0, 0, 0), 1))
	v := NewView(w)
	c := NewCanvas(v, 100, 100)
	v.UpdateTransforms(c)

	var dl DrawList
	rec := render.NewRecorder()
	dl.Draw(NewDrawContext(c, rec))
	assert.Empty(t, rec.Calls)
}

func TestRepaintIssuesBalancedBackendCalls(t *testing.T) {
	// Two surfaces under one transform group and a third under
	// another; the replay brackets matrices and states per path and
	// leaves both backend stacks balanced.
	tri := []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}

	tgA := NewTransformGroup(math3d.Translate(0.1, 0, 0))
	tgA.AddChild(NewTriangleGroup(tri, nil))
	tgA.AddChild(NewTriangleGroup(tri, nil))
	tgB := NewTransformGroup(math3d.Translate(-0.1, 0, 0))
	tgB.AddChild(NewTriangleGroup(tri, nil))

	w := NewWorld()
	w.AddChild(tgA)
	w.AddChild(tgB)
	v := NewView(w)
	c := NewCanvas(v, 200, 200)

	rec := render.NewRecorder()
	c.Repaint(rec)

	assert.True(t, rec.Balanced())
	assert.Equal(t, []render.Op{
		render.OpPushMatrix,
		render.OpPushState, render.OpDrawTriangles, render.OpPopState,
		render.OpPushState, render.OpDrawTriangles, render.OpPopState,
		render.OpPopMatrix,
		render.OpPushMatrix,
		render.OpPushState, render.OpDrawTriangles, render.OpPopState,
		render.OpPopMatrix,
	}, rec.Ops())

	// The pushed matrices are the groups' transforms.
	assert.Equal(t, tgA.Transform(), rec.Calls[0].Matrix)
}
