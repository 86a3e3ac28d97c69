// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/diagramkit/core/model"

// Registry maps element type tags to view handlers of type V, resolved
// once per render call. The model tree stays agnostic of rendering and
// only carries the tag; a [Renderer] implementation instantiates a
// Registry with its own handler type and resolves each element it
// visits. A fallback handler for unregistered tags can be set with
// [Registry.SetMissing].
type Registry[V any] struct {
	views       map[string]V
	missing     V
	haveMissing bool
}

// NewRegistry returns a new empty view [Registry].
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{views: map[string]V{}}
}

// Register sets the handler for the given element type tag, replacing
// any existing one.
func (rg *Registry[V]) Register(typ string, view V) {
	rg.views[typ] = view
}

// SetMissing sets the fallback handler returned by [Registry.Resolve]
// for type tags with no registered handler.
func (rg *Registry[V]) SetMissing(view V) {
	rg.missing = view
	rg.haveMissing = true
}

// Lookup returns the handler registered for the given type tag, falling
// back to the missing handler if one was set. The second return value
// reports whether any handler was found.
func (rg *Registry[V]) Lookup(typ string) (V, bool) {
	if v, ok := rg.views[typ]; ok {
		return v, true
	}
	return rg.missing, rg.haveMissing
}

// Resolve returns the handler for the given element's type tag;
// see [Registry.Lookup].
func (rg *Registry[V]) Resolve(el *model.Element) (V, bool) {
	return rg.Lookup(el.Type)
}
