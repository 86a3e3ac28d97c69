// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the indexed tree of diagram elements: a rooted,
// ordered hierarchy with unique-identity lookup and atomic structural
// mutation operations.
//
// Elements are constructed detached via [New] and then attached with
// [Element.AddChild] or [Element.InsertChild], which insert into the
// parent's children, set the child's parent reference, and register the
// child's entire subtree in the owning root's [Index] as one step.
// [Element.RemoveChild] and [Element.RemoveAll] are the exact inverse.
// After any successful mutation, every id is unique across the tree and
// the index contents equal the set of elements reachable from the root.
//
// All mutation is single-threaded: the model has no internal locking,
// and callers must not bypass the structural operations by editing
// Children or the index directly.
package model

import (
	"fmt"
	"slices"

	"github.com/diagramkit/core/base/slicesx"
	"github.com/diagramkit/core/math32"
)

// Element is one node in the diagram model tree.
type Element struct {

	// Type is the type tag of this element, used elsewhere to select
	// rendering and behavior (see the render package's view registry).
	// The model itself carries the tag but never interprets it.
	Type string

	// ID uniquely identifies this element within its owning tree.
	// Leave it empty to have [Index.Add] generate one on attach.
	// Do not change it while the element is attached.
	ID string

	// Parent is the parent of this element. It is managed by the
	// structural operations: nil for roots and detached elements,
	// otherwise exactly one parent whose Children contains this element.
	Parent *Element

	// Children is the ordered list of children, insertion order
	// significant. Modify it only through the structural operations,
	// which keep the root's [Index] synchronized.
	Children []*Element

	// Properties is a property map for arbitrary key-value data.
	// Use [Element.SetProperty], [Element.Property], and
	// [Element.DeleteProperty] for access.
	Properties map[string]any

	// root is set only on the Element embedded in a [Root], serving as
	// the explicit discriminant for root resolution.
	root *Root
}

// New returns a new detached element with the given type tag and id.
// An empty id requests auto-generation when the element is attached.
func New(typ, id string) *Element {
	return &Element{Type: typ, ID: id}
}

// String implements the [fmt.Stringer] interface.
func (el *Element) String() string {
	if el == nil {
		return "nil"
	}
	return el.Type + ":" + el.ID
}

// Accessors:

// HasChildren returns whether this element has any children.
func (el *Element) HasChildren() bool {
	return len(el.Children) > 0
}

// NumChildren returns the number of children this element has.
func (el *Element) NumChildren() int {
	return len(el.Children)
}

// Child returns the child of this element at the given index and
// returns nil if the index is out of range.
func (el *Element) Child(i int) *Element {
	if i >= len(el.Children) || i < 0 {
		return nil
	}
	return el.Children[i]
}

// IndexOf returns the index of the given child in this element's
// children, or -1 if it is not a child. The optional startIndex allows
// for an optimized bidirectional search if you have an idea where it
// might be, which can be a key speedup for long children lists.
func (el *Element) IndexOf(child *Element, startIndex ...int) int {
	return slicesx.Search(el.Children, func(e *Element) bool { return e == child }, startIndex...)
}

// ChildByID returns the first child with the given id, and nil if there
// is none. See [Element.IndexOf] for info on startIndex.
func (el *Element) ChildByID(id string, startIndex ...int) *Element {
	return el.Child(slicesx.Search(el.Children, func(e *Element) bool { return e.ID == id }, startIndex...))
}

// IsRoot returns whether this element is the distinguished root of its
// tree. This is an explicit discriminant set at construction, not a
// check on the parent reference, so a detached non-root element is
// still not a root.
func (el *Element) IsRoot() bool {
	return el.root != nil
}

// Root returns the distinguished root of this element's tree, found by
// walking parent references. It fails with [ErrDetached] if the chain
// ends without reaching a root.
func (el *Element) Root() (*Root, error) {
	for cur := el; cur != nil; cur = cur.Parent {
		if cur.root != nil {
			return cur.root, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDetached, el)
}

// Adding children:

// AddChild attaches the given child at the end of this element's
// children. The child and its entire subtree are registered in the
// root's [Index]; a duplicate id anywhere in the subtree fails with
// [ErrDuplicateID] and leaves the child fully detached. Fails with
// [ErrDetached] if this element has no reachable root.
func (el *Element) AddChild(child *Element) error {
	return el.InsertChild(child, len(el.Children))
}

// InsertChild attaches the given child at the given position in this
// element's children, which must be in the range 0..NumChildren
// inclusive; otherwise it fails with [ErrIndexOutOfBounds]. See
// [Element.AddChild] for the attachment semantics.
func (el *Element) InsertChild(child *Element, at int) error {
	if at < 0 || at > len(el.Children) {
		return fmt.Errorf("%w: insert position %d with %d children", ErrIndexOutOfBounds, at, len(el.Children))
	}
	root, err := el.Root()
	if err != nil {
		return err
	}
	// register first: registration is the only step that can fail, so
	// the structural insertion below can no longer be left partial
	if err := root.Index.Add(child); err != nil {
		return err
	}
	el.Children = slices.Insert(el.Children, at, child)
	child.Parent = el
	return nil
}

// Removing children:

// RemoveChild detaches the given child: it is removed from this
// element's children, its parent reference is cleared, and it and its
// entire subtree are unregistered from the root's [Index]. Fails with
// [ErrChildNotFound] if the element is not currently a child of this
// element.
func (el *Element) RemoveChild(child *Element) error {
	idx := el.IndexOf(child)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrChildNotFound, child)
	}
	root, err := el.Root()
	if err != nil {
		return err
	}
	root.Index.Remove(child)
	el.Children = slices.Delete(el.Children, idx, idx+1)
	child.Parent = nil
	return nil
}

// RemoveAll detaches children of this element. With no arguments it
// detaches every child; with a match function it detaches only the
// children for which the function returns true, preserving the relative
// order of the remainder. Matching runs back to front so indices stay
// valid while children are removed.
func (el *Element) RemoveAll(match ...func(child *Element) bool) error {
	root, err := el.Root()
	if err != nil {
		return err
	}
	if len(match) == 0 {
		kids := el.Children
		el.Children = el.Children[:0] // preserves capacity of list
		for _, kid := range kids {
			root.Index.Remove(kid)
			kid.Parent = nil
		}
		return nil
	}
	f := match[0]
	for i := len(el.Children) - 1; i >= 0; i-- {
		kid := el.Children[i]
		if !f(kid) {
			continue
		}
		root.Index.Remove(kid)
		el.Children = slices.Delete(el.Children, i, i+1)
		kid.Parent = nil
	}
	return nil
}

// Moving children:

// MoveChild relocates the given child to the given position within this
// element's children, changing only the order: set membership, parent
// references, and the root's [Index] are untouched, so MoveChild also
// works within detached subtrees. Fails with [ErrChildNotFound] if the
// element is not a child of this element, and with [ErrIndexOutOfBounds]
// if the target is outside 0..NumChildren-1. Note that the upper bound
// is NumChildren-1, not NumChildren: the last valid index is already
// "move to the end", and there is no one-past-last target position.
// Moving a child to its current position is a no-op.
func (el *Element) MoveChild(child *Element, to int) error {
	idx := el.IndexOf(child)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrChildNotFound, child)
	}
	if to < 0 || to > len(el.Children)-1 {
		return fmt.Errorf("%w: move target %d with %d children", ErrIndexOutOfBounds, to, len(el.Children))
	}
	if to == idx {
		return nil
	}
	el.Children = slicesx.Move(el.Children, idx, to)
	return nil
}

// Property storage:

// SetProperty sets the given property to the given value.
func (el *Element) SetProperty(key string, value any) {
	if el.Properties == nil {
		el.Properties = map[string]any{}
	}
	el.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (el *Element) Property(key string) any {
	return el.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (el *Element) DeleteProperty(key string) {
	if el.Properties == nil {
		return
	}
	delete(el.Properties, key)
}

// Coordinate transforms:

// LocalToParent transforms bounds in this element's local coordinate
// frame into its parent's frame. The base element defines no local
// transform, so this is the identity; element types that scale or
// rotate build on this extension point.
func (el *Element) LocalToParent(b math32.Box2) math32.Box2 {
	return b
}

// ParentToLocal transforms bounds in this element's parent's coordinate
// frame into its local frame. Identity for the base element; see
// [Element.LocalToParent].
func (el *Element) ParentToLocal(b math32.Box2) math32.Box2 {
	return b
}

// LocalPointToParent transforms a point in this element's local frame
// into its parent's frame, as a degenerate zero-size [math32.Box2]
// located at the point.
func (el *Element) LocalPointToParent(p math32.Vector2) math32.Box2 {
	return el.LocalToParent(math32.B2FromPoint(p))
}

// ParentPointToLocal transforms a point in this element's parent's
// frame into its local frame, as a degenerate zero-size [math32.Box2]
// located at the point.
func (el *Element) ParentPointToLocal(p math32.Vector2) math32.Box2 {
	return el.ParentToLocal(math32.B2FromPoint(p))
}
