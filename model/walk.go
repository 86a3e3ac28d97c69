// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

const (
	// Continue = true can be returned from tree iteration functions to
	// continue processing down the tree, as compared to Break = false
	// which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the element and all of its
// children in a depth-first pre-order manner. It stops walking the
// current branch if the function returns [Break] and keeps walking if
// it returns [Continue]. The function must not mutate the children of
// the elements it visits.
func WalkDown(el *Element, fun func(el *Element) bool) {
	if el == nil {
		return
	}
	if !fun(el) {
		return
	}
	for _, kid := range el.Children {
		WalkDown(kid, fun)
	}
}

// WalkUp calls the given function on the element and all of its
// parents, stopping if the function returns [Break]. It returns whether
// walking was finished (false if it was aborted with [Break]).
func WalkUp(el *Element, fun func(el *Element) bool) bool {
	for cur := el; cur != nil; cur = cur.Parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}
