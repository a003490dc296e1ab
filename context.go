// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

// TraversalContext maintains the path of nodes from the root of the
// scene graph to the node currently being traversed. Push and pop must
// balance; popping an empty path is a programming error and panics.
type TraversalContext struct {
	nodes []Node
}

// PushNode appends the node n to the current node path.
func (tc *TraversalContext) PushNode(n Node) {
	tc.nodes = append(tc.nodes, n)
}

// PopNode removes the node most recently pushed.
func (tc *TraversalContext) PopNode() {
	if len(tc.nodes) == 0 {
		panic("sgl: PopNode without matching PushNode")
	}
	tc.nodes = tc.nodes[:len(tc.nodes)-1]
}

// Node returns the node currently being traversed, or nil if the path
// is empty.
func (tc *TraversalContext) Node() Node {
	if len(tc.nodes) == 0 {
		return nil
	}
	return tc.nodes[len(tc.nodes)-1]
}

// Nodes returns a copy of the current node path, from the root to the
// current node.
func (tc *TraversalContext) Nodes() []Node {
	n := make([]Node, len(tc.nodes))
	copy(n, tc.nodes)
	return n
}
