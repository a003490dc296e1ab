// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

import (
	"sort"

	"github.com/sgl3d/sgl/math3d"
)

// boxTree recursively subdivides a set of items, each represented by a
// packed float32 center (x,y,z), into axis-aligned boxes. Each split
// is along the widest axis of the parent box, at the median item, so
// the tree is balanced regardless of how the items are distributed.
// Geometry leaf nodes are built from the tree's leaves.
type boxTree struct {
	centers []float32
	root    *boxTreeNode
}

type boxTreeNode struct {
	box   math3d.Box3
	index []int32
	left  *boxTreeNode
	right *boxTreeNode
}

// newBoxTree builds a tree over len(centers)/3 items with at most
// maxPerLeaf items in each leaf.
func newBoxTree(centers []float32, maxPerLeaf int) *boxTree {
	n := len(centers) / 3
	index := make([]int32, n)
	for i := range index {
		index[i] = int32(i)
	}
	t := &boxTree{centers: centers}
	t.root = t.build(index, maxPerLeaf)
	return t
}

func (t *boxTree) build(index []int32, maxPerLeaf int) *boxTreeNode {
	node := &boxTreeNode{index: index}
	node.box = math3d.EmptyBox3()
	for _, i := range index {
		node.box.ExpandByCoords(
			float64(t.centers[3*i]),
			float64(t.centers[3*i+1]),
			float64(t.centers[3*i+2]))
	}
	if len(index) <= maxPerLeaf {
		return node
	}

	// Split along the widest axis at the median center.
	d := node.box.Max.Minus(node.box.Min)
	axis := 0
	if d.Y > d.X && d.Y >= d.Z {
		axis = 1
	} else if d.Z > d.X && d.Z > d.Y {
		axis = 2
	}
	sort.Slice(index, func(a, b int) bool {
		return t.centers[3*index[a]+int32(axis)] < t.centers[3*index[b]+int32(axis)]
	})
	h := len(index) / 2
	node.left = t.build(index[:h], maxPerLeaf)
	node.right = t.build(index[h:], maxPerLeaf)
	return node
}

// leaves returns the leaf nodes of this tree, left to right.
func (t *boxTree) leaves() []*boxTreeNode {
	var ls []*boxTreeNode
	var walk func(n *boxTreeNode)
	walk = func(n *boxTreeNode) {
		if n.left == nil {
			ls = append(ls, n)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return ls
}
