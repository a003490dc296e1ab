// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sgl is a retained-mode scene graph for interactive 3D
// graphics. A scene is a directed acyclic graph of [Node] values:
// interior [Group] nodes own ordered child lists, and leaf nodes such
// as [TriangleGroup] hold drawable geometry. Nodes may have multiple
// parents, so one subtree can appear in several places.
//
// Every node caches a bounding sphere in its local coordinates.
// Mutations invalidate the cache and propagate dirtiness up through
// parents; propagation stops at the first already-dirty ancestor, so
// repeated edits stay cheap.
//
// Rendering and interaction are traversals. A cull traversal walks the
// graph against the view frustum and produces a [DrawList] of visible
// node paths; replaying the list issues draw calls to a
// [render.Backend], opening and closing shared ancestors only when the
// path changes. A pick traversal converts a pixel into a line segment
// through the scene and collects [PickResult] intersections, closest
// first in depth.
//
// Five coordinate systems are chained: local, world, view, cube (the
// normalized clip cube, with x, y, and z in [-1,1]), and pixel (y down,
// depth in [0,1]). A [TransformContext] carries the chain during
// traversal and composes any of the twenty transforms between them on
// demand.
//
// The graph is not safe for concurrent mutation; traverse and edit
// from one goroutine at a time.
package sgl
