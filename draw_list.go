// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

// DrawList is a list of node paths produced by a cull traversal and
// replayed by a draw traversal. Each path runs from the root of the
// scene graph to one visible drawable node.
type DrawList struct {
	paths [][]Node
}

// Append appends a copy of the specified node path to this list.
func (dl *DrawList) Append(nodes []Node) {
	path := make([]Node, len(nodes))
	copy(path, nodes)
	dl.paths = append(dl.paths, path)
}

// Len returns the number of node paths in this list.
func (dl *DrawList) Len() int { return len(dl.paths) }

// Paths returns the node paths in this list, in append order.
func (dl *DrawList) Paths() [][]Node { return dl.paths }

// Draw draws the nodes in this list. Consecutive paths usually share
// leading ancestors, so rather than opening and closing every node of
// every path, Draw keeps shared ancestors open: it closes only the
// ancestors of the previous path that the next path does not share,
// opens the new ones, and then draws the terminal node with its own
// begin/draw/end bracket. The result is equivalent to a full
// open/close per path, with every DrawBegin paired with exactly one
// DrawEnd.
func (dl *DrawList) Draw(dc *DrawContext) {
	var prev []Node
	for _, path := range dl.paths {
		n := len(path)

		// Count ancestors shared with the previous path.
		k := 0
		kmax := min(n, len(prev)) - 1
		for k < kmax && path[k] == prev[k] {
			k++
		}

		// Close the previous path's unshared ancestors, bottom-up.
		for i := len(prev) - 2; i >= k; i-- {
			prev[i].DrawEnd(dc)
			dc.PopNode()
		}

		// Open this path's unshared ancestors, top-down.
		for i := k; i < n-1; i++ {
			dc.PushNode(path[i])
			path[i].AsBase().drawDirty = false
			path[i].DrawBegin(dc)
		}

		// Draw the terminal node.
		leaf := path[n-1]
		dc.PushNode(leaf)
		leaf.AsBase().drawDirty = false
		leaf.DrawBegin(dc)
		leaf.Draw(dc)
		leaf.DrawEnd(dc)
		dc.PopNode()

		prev = path
	}

	// Close the ancestors still open after the last path.
	for i := len(prev) - 2; i >= 0; i-- {
		prev[i].DrawEnd(dc)
		dc.PopNode()
	}
}
