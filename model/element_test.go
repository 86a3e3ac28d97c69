// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts that the index contents exactly equal the set
// of elements reachable from the root, with unique ids.
func checkInvariants(t *testing.T, root *Root) {
	t.Helper()
	reachable := map[string]*Element{}
	WalkDown(&root.Element, func(el *Element) bool {
		_, dup := reachable[el.ID]
		assert.False(t, dup, "duplicate id %q in tree", el.ID)
		reachable[el.ID] = el
		return Continue
	})
	assert.Equal(t, len(reachable), root.Index.Len())
	for id, el := range reachable {
		assert.Same(t, el, root.Index.ByID(id))
	}
	for el := range root.Index.All() {
		assert.Same(t, el, reachable[el.ID])
	}
}

func TestAddChild(t *testing.T) {
	root := NewRoot("graph", "R")
	child := New("node", "n1")
	require.NoError(t, root.AddChild(child))

	assert.Same(t, &root.Element, child.Parent)
	assert.Equal(t, 1, root.NumChildren())
	assert.Same(t, child, root.Child(0))
	assert.True(t, root.Index.Contains(child))

	cr, err := child.Root()
	require.NoError(t, err)
	pr, err := root.Element.Root()
	require.NoError(t, err)
	assert.Same(t, cr, pr)
	checkInvariants(t, root)
}

func TestInsertChild(t *testing.T) {
	root := NewRoot("graph", "R")
	a := New("node", "a")
	b := New("node", "b")
	c := New("node", "c")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))
	require.NoError(t, root.InsertChild(c, 1))

	assert.Equal(t, []*Element{a, c, b}, root.Children)

	err := root.InsertChild(New("node", "d"), -1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	err = root.InsertChild(New("node", "d"), 4)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Equal(t, 3, root.NumChildren())
	checkInvariants(t, root)
}

func TestAddChildDuplicateID(t *testing.T) {
	root := NewRoot("graph", "R")
	require.NoError(t, root.AddChild(New("node", "x")))

	dup := New("node", "x")
	err := root.AddChild(dup)
	assert.ErrorIs(t, err, ErrDuplicateID)

	// the duplicate must not be left partially attached
	assert.Nil(t, dup.Parent)
	assert.Equal(t, 1, root.NumChildren())
	assert.NotSame(t, dup, root.Index.ByID("x"))
	checkInvariants(t, root)
}

func TestAddSubtree(t *testing.T) {
	// build a subtree under a scratch root, then detach and re-attach it
	scratch := NewRoot("graph", "S")
	top := New("group", "g")
	require.NoError(t, scratch.AddChild(top))
	require.NoError(t, top.AddChild(New("node", "n1")))
	require.NoError(t, top.AddChild(New("node", "n2")))
	require.NoError(t, top.Child(0).AddChild(New("port", "p1")))
	require.NoError(t, scratch.RemoveChild(top))
	assert.Equal(t, 1, scratch.Index.Len()) // only the scratch root remains

	root := NewRoot("graph", "R")
	require.NoError(t, root.AddChild(top))
	assert.Equal(t, 5, root.Index.Len()) // root + g, n1, n2, p1
	assert.Same(t, root.Index.ByID("p1"), top.Child(0).Child(0))
	checkInvariants(t, root)

	require.NoError(t, root.RemoveChild(top))
	assert.Equal(t, 1, root.Index.Len())
	assert.Nil(t, top.Parent)
	checkInvariants(t, root)
}

func TestAddSubtreeDuplicateLeavesIndexUnchanged(t *testing.T) {
	scratch := NewRoot("graph", "S")
	top := New("group", "g")
	require.NoError(t, scratch.AddChild(top))
	require.NoError(t, top.AddChild(New("node", "n1")))
	require.NoError(t, top.AddChild(New("node", "clash")))
	require.NoError(t, scratch.RemoveChild(top))

	root := NewRoot("graph", "R")
	require.NoError(t, root.AddChild(New("node", "clash")))
	before := root.Index.Len()

	err := root.AddChild(top)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, before, root.Index.Len())
	assert.Nil(t, root.Index.ByID("n1"))
	assert.Nil(t, top.Parent)
	checkInvariants(t, root)
}

func TestRemoveChild(t *testing.T) {
	root := NewRoot("graph", "R")
	a := New("node", "a")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(New("port", "ap")))

	err := root.RemoveChild(New("node", "stranger"))
	assert.ErrorIs(t, err, ErrChildNotFound)

	require.NoError(t, root.RemoveChild(a))
	assert.Nil(t, a.Parent)
	assert.Equal(t, 0, root.NumChildren())
	assert.Nil(t, root.Index.ByID("a"))
	assert.Nil(t, root.Index.ByID("ap"))
	// the detached subtree keeps its internal structure
	assert.Equal(t, 1, a.NumChildren())
	assert.Same(t, a, a.Child(0).Parent)
	checkInvariants(t, root)
}

func TestRemoveAll(t *testing.T) {
	root := NewRoot("graph", "R")
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, root.AddChild(New("node", id)))
	}
	require.NoError(t, root.RemoveAll())
	assert.Equal(t, 0, root.NumChildren())
	assert.Equal(t, 1, root.Index.Len())
	checkInvariants(t, root)
}

func TestRemoveAllMatch(t *testing.T) {
	root := NewRoot("graph", "R")
	for _, id := range []string{"a", "drop1", "b", "drop2", "c"} {
		require.NoError(t, root.AddChild(New("node", id)))
	}
	require.NoError(t, root.RemoveAll(func(child *Element) bool {
		return child.ID == "drop1" || child.ID == "drop2"
	}))

	ids := make([]string, 0, root.NumChildren())
	for _, kid := range root.Children {
		ids = append(ids, kid.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Nil(t, root.Index.ByID("drop1"))
	assert.Nil(t, root.Index.ByID("drop2"))
	checkInvariants(t, root)
}

func TestMoveChild(t *testing.T) {
	root := NewRoot("graph", "R")
	a := New("node", "a")
	b := New("node", "b")
	c := New("node", "c")
	for _, el := range []*Element{a, b, c} {
		require.NoError(t, root.AddChild(el))
	}

	require.NoError(t, root.MoveChild(a, 2))
	assert.Equal(t, []*Element{b, c, a}, root.Children)

	// only order changed: membership, parents, and index are untouched
	assert.Equal(t, 4, root.Index.Len())
	for _, el := range []*Element{a, b, c} {
		assert.Same(t, &root.Element, el.Parent)
	}

	// moving to the current position is a no-op
	require.NoError(t, root.MoveChild(a, 2))
	assert.Equal(t, []*Element{b, c, a}, root.Children)

	err := root.MoveChild(a, 3) // valid targets are 0..len-1
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	err = root.MoveChild(a, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	err = root.MoveChild(New("node", "stranger"), 0)
	assert.ErrorIs(t, err, ErrChildNotFound)
	checkInvariants(t, root)
}

func TestRootResolution(t *testing.T) {
	root := NewRoot("graph", "R")
	assert.True(t, root.IsRoot())

	detached := New("node", "d")
	assert.False(t, detached.IsRoot())
	_, err := detached.Root()
	assert.ErrorIs(t, err, ErrDetached)

	// a detached subtree's descendants have no root either
	kid := New("node", "k")
	require.NoError(t, root.AddChild(detached))
	require.NoError(t, detached.AddChild(kid))
	require.NoError(t, root.RemoveChild(detached))
	_, err = kid.Root()
	assert.ErrorIs(t, err, ErrDetached)
}

func TestAddToDetachedParent(t *testing.T) {
	parent := New("node", "p")
	err := parent.AddChild(New("node", "c"))
	assert.ErrorIs(t, err, ErrDetached)
	assert.Equal(t, 0, parent.NumChildren())
}

var idPattern = regexp.MustCompile(`^[0-9a-z]{8}$`)

func TestAutoGeneratedIDs(t *testing.T) {
	root := NewRoot("graph", "R")
	a := New("node", "")
	b := New("node", "")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))

	assert.Regexp(t, idPattern, a.ID)
	assert.Regexp(t, idPattern, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Same(t, a, root.Index.ByID(a.ID))
	checkInvariants(t, root)
}

func TestChildByID(t *testing.T) {
	root := NewRoot("graph", "R")
	b := New("node", "b")
	require.NoError(t, root.AddChild(New("node", "a")))
	require.NoError(t, root.AddChild(b))
	assert.Same(t, b, root.ChildByID("b"))
	assert.Nil(t, root.ChildByID("zzz"))
}

func TestProperties(t *testing.T) {
	el := New("node", "n")
	assert.Nil(t, el.Property("label"))
	el.SetProperty("label", "hello")
	assert.Equal(t, "hello", el.Property("label"))
	el.DeleteProperty("label")
	assert.Nil(t, el.Property("label"))
}
