// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "errors"

// These are the programmer-error-class failures surfaced by the
// structural operations. All are returned synchronously to the caller
// of the violating operation, wrapped with context; test with
// [errors.Is]. A failed operation leaves the tree in its pre-call state.
var (
	// ErrDuplicateID indicates that an element was registered with an id
	// that already exists in the tree's [Index]. Choose a different id,
	// or leave the id empty to have one generated.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrChildNotFound indicates that the element given to
	// [Element.RemoveChild] or [Element.MoveChild] is not currently a
	// child of that parent.
	ErrChildNotFound = errors.New("child not found in parent")

	// ErrIndexOutOfBounds indicates that a position given to
	// [Element.InsertChild] or [Element.MoveChild] falls outside the
	// valid range for that operation.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrDetached indicates that root resolution was attempted on an
	// element whose parent chain does not reach a [Root]: the element
	// was never attached, or was detached and retained.
	ErrDetached = errors.New("element is not attached to a root")
)
