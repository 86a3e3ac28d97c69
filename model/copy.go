// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// Clone returns a detached deep copy of the tree from this element
// down: same type tags, same ids, deep-copied properties, nil parent on
// the top element. Because ids are preserved, attach a clone only into
// a different tree, or after removing the original, or attachment will
// be rejected with [ErrDuplicateID].
func (el *Element) Clone() *Element {
	nc := New(el.Type, el.ID)
	nc.copyFrom(el)
	return nc
}

// copyFrom copies type, id, properties, and children of from into el,
// rebuilding el's subtree as fresh detached elements whose parent
// references point within the copy.
func (el *Element) copyFrom(from *Element) {
	el.Type = from.Type
	el.ID = from.ID
	el.Properties = nil
	if from.Properties != nil {
		el.Properties = map[string]any{}
		err := copier.CopyWithOption(&el.Properties, &from.Properties, copier.Option{DeepCopy: true})
		if err != nil {
			slog.Error("model.Element.Clone: property copy failed", "element", from.ID, "err", err)
		}
	}
	el.Children = make([]*Element, 0, len(from.Children))
	for _, kid := range from.Children {
		nk := New(kid.Type, kid.ID)
		nk.copyFrom(kid)
		nk.Parent = el
		el.Children = append(el.Children, nk)
	}
}
