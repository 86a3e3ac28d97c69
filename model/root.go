// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/diagramkit/core/math32"

// Root is the distinguished element at the top of a model tree. It has
// no parent, owns the [Index] for every element reachable from it, and
// carries the frame-level metadata for the tree: the revision counter
// and the available canvas bounds. A complete Root (and its subtree) is
// the snapshot unit passed to the render scheduler.
type Root struct {
	Element

	// Index is the identity index for the whole tree. It is maintained
	// by the structural operations on [Element]; do not edit it directly.
	Index *Index

	// Revision is a monotonic counter advanced by model producers on
	// each change they publish. The model core itself never advances it.
	Revision uint64

	// CanvasBounds describes the available drawing surface.
	// The zero value means the surface extent is not (yet) known.
	CanvasBounds math32.Box2
}

// NewRoot returns a new root element with the given type tag and id,
// registered in its own fresh [Index]. An empty id is auto-generated.
func NewRoot(typ, id string) *Root {
	r := &Root{Element: Element{Type: typ, ID: id}}
	r.Element.root = r
	r.Index = NewIndex()
	// a fresh index cannot collide, and the root has no children yet
	_ = r.Index.Add(&r.Element)
	return r
}
