// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"github.com/chewxy/math32"

	"github.com/sgl3d/sgl/math3d"
	"github.com/sgl3d/sgl/render"
)

// maxTrianglesPerNode bounds the size of the leaf nodes a triangle
// group is subdivided into. Smaller leaves cull and pick more
// precisely but cost more draw calls.
const maxTrianglesPerNode = 1024

// TriangleGroup is a triangulated surface. It is constructed from
// packed vertex coordinates, three consecutive vertices per triangle;
// coincident vertices are merged, and a normal vector is computed for
// each merged vertex as the area-weighted average of the normals of
// the triangles that share it.
//
// Large surfaces are subdivided into leaf nodes of at most
// [maxTrianglesPerNode] triangles each, organized by a balanced
// bounding-box tree, so culling discards off-screen parts of the
// surface and picking tests only the triangles near the pick segment.
//
// A triangle group is selectable; while selected it draws with
// polygon offset enabled so selection decoration can overlay it.
type TriangleGroup struct {
	Group
	SelectableBase

	verts   []float32 // packed coordinates of merged vertices
	normals []float32 // packed normals, one per merged vertex
	colors  []float32 // packed colors, one per merged vertex, or nil
	index   []int32   // merged-vertex indices, three per triangle
}

// NewTriangleGroup returns a new triangle group for the packed vertex
// coordinates xyz, three consecutive (x,y,z) vertices per triangle.
// rgb holds one packed (r,g,b) color per vertex, or nil for no colors.
// Panics if len(xyz) is not a multiple of 9 or rgb is non-nil with a
// different vertex count.
func NewTriangleGroup(xyz, rgb []float32) *TriangleGroup {
	if len(xyz)%9 != 0 {
		panic("sgl: triangle vertex coordinates must come in multiples of 9")
	}
	if rgb != nil && len(rgb) != len(xyz) {
		panic("sgl: triangle colors must match vertex count")
	}
	tg := &TriangleGroup{}
	tg.Init(tg)
	tg.mergeVertices(xyz, rgb)
	tg.computeNormals()
	tg.buildLeaves()
	return tg
}

// NumTriangles returns the number of triangles in this group.
func (tg *TriangleGroup) NumTriangles() int { return len(tg.index) / 3 }

// NumVertices returns the number of merged vertices in this group.
func (tg *TriangleGroup) NumVertices() int { return len(tg.verts) / 3 }

// SetSelected sets whether this surface is selected, requesting a
// redraw when the state changes.
func (tg *TriangleGroup) SetSelected(selected bool) {
	if selected == tg.Selected() {
		return
	}
	tg.SelectableBase.SetSelected(selected)
	tg.node().DirtyDraw()
}

// DrawBegin enables the material state for this surface's leaves, and
// polygon offset while selected.
func (tg *TriangleGroup) DrawBegin(dc *DrawContext) {
	if tg.Selected() {
		dc.Backend().PushState(render.StateMaterial, render.StatePolygonOffset)
	} else {
		dc.Backend().PushState(render.StateMaterial)
	}
}

func (tg *TriangleGroup) DrawEnd(dc *DrawContext) {
	dc.Backend().PopState()
}

// mergeVertices deduplicates exactly coincident vertices and builds
// the triangle index.
func (tg *TriangleGroup) mergeVertices(xyz, rgb []float32) {
	n := len(xyz) / 3
	tg.index = make([]int32, 0, n)
	merged := make(map[[3]float32]int32, n)
	for i := 0; i < n; i++ {
		key := [3]float32{xyz[3*i], xyz[3*i+1], xyz[3*i+2]}
		j, ok := merged[key]
		if !ok {
			j = int32(len(tg.verts) / 3)
			merged[key] = j
			tg.verts = append(tg.verts, key[0], key[1], key[2])
			if rgb != nil {
				tg.colors = append(tg.colors, rgb[3*i], rgb[3*i+1], rgb[3*i+2])
			}
		}
		tg.index = append(tg.index, j)
	}
}

// computeNormals accumulates, for each merged vertex, the cross
// products of the edges of its triangles. The cross product's length
// is twice the triangle area, so larger triangles weigh more. The sums
// are then normalized.
func (tg *TriangleGroup) computeNormals() {
	tg.normals = make([]float32, len(tg.verts))
	for t := 0; t < len(tg.index); t += 3 {
		ia, ib, ic := 3*tg.index[t], 3*tg.index[t+1], 3*tg.index[t+2]
		e1x := tg.verts[ib] - tg.verts[ia]
		e1y := tg.verts[ib+1] - tg.verts[ia+1]
		e1z := tg.verts[ib+2] - tg.verts[ia+2]
		e2x := tg.verts[ic] - tg.verts[ia]
		e2y := tg.verts[ic+1] - tg.verts[ia+1]
		e2z := tg.verts[ic+2] - tg.verts[ia+2]
		nx := e1y*e2z - e1z*e2y
		ny := e1z*e2x - e1x*e2z
		nz := e1x*e2y - e1y*e2x
		for _, i := range []int32{ia, ib, ic} {
			tg.normals[i] += nx
			tg.normals[i+1] += ny
			tg.normals[i+2] += nz
		}
	}
	for i := 0; i < len(tg.normals); i += 3 {
		x, y, z := tg.normals[i], tg.normals[i+1], tg.normals[i+2]
		s := math32.Sqrt(x*x + y*y + z*z)
		if s > 0 {
			tg.normals[i] = x / s
			tg.normals[i+1] = y / s
			tg.normals[i+2] = z / s
		}
	}
}

// buildLeaves subdivides the triangles with a bounding-box tree over
// their centers and adds one child leaf node per tree leaf.
func (tg *TriangleGroup) buildLeaves() {
	nt := len(tg.index) / 3
	centers := make([]float32, 3*nt)
	for t := 0; t < nt; t++ {
		ia, ib, ic := 3*tg.index[3*t], 3*tg.index[3*t+1], 3*tg.index[3*t+2]
		for k := int32(0); k < 3; k++ {
			centers[3*t+int(k)] = (tg.verts[ia+k] + tg.verts[ib+k] + tg.verts[ic+k]) / 3
		}
	}
	tree := newBoxTree(centers, maxTrianglesPerNode)
	for _, leaf := range tree.leaves() {
		tg.AddChild(newTriangleNode(tg, leaf.index))
	}
}

// triangleNode is a leaf holding a subset of its surface's triangles,
// with the vertex data of the subset packed ready for the backend.
type triangleNode struct {
	NodeBase
	box math3d.Box3
	xyz []float32
	uvw []float32
	rgb []float32
}

func newTriangleNode(tg *TriangleGroup, tris []int32) *triangleNode {
	tn := &triangleNode{}
	tn.Init(tn)
	tn.box = math3d.EmptyBox3()
	tn.xyz = make([]float32, 0, 9*len(tris))
	tn.uvw = make([]float32, 0, 9*len(tris))
	if tg.colors != nil {
		tn.rgb = make([]float32, 0, 9*len(tris))
	}
	for _, t := range tris {
		for c := int32(0); c < 3; c++ {
			i := 3 * tg.index[3*t+c]
			x, y, z := tg.verts[i], tg.verts[i+1], tg.verts[i+2]
			tn.box.ExpandByCoords(float64(x), float64(y), float64(z))
			tn.xyz = append(tn.xyz, x, y, z)
			tn.uvw = append(tn.uvw, tg.normals[i], tg.normals[i+1], tg.normals[i+2])
			if tn.rgb != nil {
				tn.rgb = append(tn.rgb, tg.colors[i], tg.colors[i+1], tg.colors[i+2])
			}
		}
	}
	return tn
}

func (tn *triangleNode) ComputeBoundingSphere(finite bool) math3d.Sphere {
	return math3d.SphereFromBox(tn.box)
}

func (tn *triangleNode) Draw(dc *DrawContext) {
	dc.Backend().DrawTriangles(tn.xyz, tn.uvw, tn.rgb)
}

// Pick tests every triangle of this leaf against the pick segment.
func (tn *triangleNode) Pick(pc *PickContext) {
	seg := pc.LocalSegment()
	for v := 0; v < len(tn.xyz); v += 9 {
		a := math3d.Pt3(float64(tn.xyz[v]), float64(tn.xyz[v+1]), float64(tn.xyz[v+2]))
		b := math3d.Pt3(float64(tn.xyz[v+3]), float64(tn.xyz[v+4]), float64(tn.xyz[v+5]))
		c := math3d.Pt3(float64(tn.xyz[v+6]), float64(tn.xyz[v+7]), float64(tn.xyz[v+8]))
		if p, ok := seg.IntersectTriangle(a, b, c); ok {
			pc.AddResult(p)
		}
	}
}
