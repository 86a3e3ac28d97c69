// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Defaults for generated identifiers.
const (
	// IDAlphabet is the fixed low-ambiguity alphabet (digits plus
	// lowercase letters) that generated ids are drawn from.
	IDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// IDLength is the length of generated ids.
	IDLength = 8
)

// Index is the identity index for one model tree: a map from id to
// element giving O(1) expected lookup and uniqueness enforcement. Each
// [Root] owns exactly one Index covering every element reachable from
// it. The structural operations on [Element] keep the two in sync;
// callers must not register or unregister elements directly around them.
type Index struct {
	elements map[string]*Element
}

// NewIndex returns a new empty [Index].
func NewIndex() *Index {
	return &Index{elements: map[string]*Element{}}
}

// Len returns the number of registered elements.
func (ix *Index) Len() int {
	return len(ix.elements)
}

// Add registers the given element and, recursively, every descendant
// already present in its children, which supports bulk-attaching a
// pre-built subtree. Elements with an empty id are assigned a fresh
// generated one. If any id in the subtree is already registered, or
// appears twice within the subtree, Add fails with [ErrDuplicateID] and
// the index is left exactly as it was: registration is validated
// against the whole subtree before anything is committed.
func (ix *Index) Add(el *Element) error {
	var all []*Element
	WalkDown(el, func(n *Element) bool {
		all = append(all, n)
		return Continue
	})
	pending := make(map[string]bool, len(all)) // ids claimed by this call
	var unnamed []*Element
	for _, n := range all {
		if n.ID == "" {
			unnamed = append(unnamed, n)
			continue
		}
		if _, ok := ix.elements[n.ID]; ok || pending[n.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, n.ID)
		}
		pending[n.ID] = true
	}
	for _, n := range unnamed {
		id := generateID()
		for {
			_, taken := ix.elements[id]
			if !taken && !pending[id] {
				break
			}
			id = generateID()
		}
		n.ID = id
		pending[id] = true
	}
	for _, n := range all {
		ix.elements[n.ID] = n
	}
	return nil
}

// Remove unregisters the given element by id and then, recursively,
// every descendant in its children. Ids that are not registered are
// skipped, though the structural operations never produce that case.
func (ix *Index) Remove(el *Element) {
	WalkDown(el, func(n *Element) bool {
		delete(ix.elements, n.ID)
		return Continue
	})
}

// Contains returns whether an element with the given element's id is
// currently registered.
func (ix *Index) Contains(el *Element) bool {
	if el == nil {
		return false
	}
	_, ok := ix.elements[el.ID]
	return ok
}

// ByID returns the registered element with the given id, or nil if
// there is none.
func (ix *Index) ByID(id string) *Element {
	return ix.elements[id]
}

// All returns a sequence over all registered elements, in unspecified
// order. The sequence iterates over a snapshot taken when All is
// called, so it is stable across re-iteration and safe against index
// mutation while ranging over it.
func (ix *Index) All() iter.Seq[*Element] {
	els := make([]*Element, 0, len(ix.elements))
	for _, el := range ix.elements {
		els = append(els, el)
	}
	return func(yield func(el *Element) bool) {
		for _, el := range els {
			if !yield(el) {
				return
			}
		}
	}
}

// generateID returns a random id of [IDLength] characters drawn from
// [IDAlphabet]. The id space holds 36^8 ≈ 2.8e12 values, so with k ids
// registered the probability that one attempt collides is k/36^8,
// vanishingly small at any realistic model size; [Index.Add] retries
// until unique with no attempt bound.
func generateID() string {
	b := make([]byte, IDLength)
	for i := range b {
		b[i] = IDAlphabet[rand.IntN(len(IDAlphabet))]
	}
	return string(b)
}
