// Copyright 2026 The SGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgl

// Selectable is implemented by nodes that can be selected.
// [PickResult.SelectableNode] finds the selectable node nearest the
// picked geometry on the node path.
type Selectable interface {
	Node

	// Selected returns true if this node is currently selected.
	Selected() bool

	// SetSelected sets whether this node is selected.
	SetSelected(selected bool)
}

// SelectableBase is a trivial implementation of the selected flag, for
// embedding in selectable node types. Nodes that change appearance
// when selected should override SetSelected to also call DirtyDraw.
type SelectableBase struct {
	selected bool
}

// Selected returns true if this node is currently selected.
func (sb *SelectableBase) Selected() bool { return sb.selected }

// SetSelected sets whether this node is selected.
func (sb *SelectableBase) SetSelected(selected bool) { sb.selected = selected }
