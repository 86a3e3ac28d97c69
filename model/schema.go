// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"io"

	"github.com/diagramkit/core/base/iox/jsonx"
	"github.com/diagramkit/core/base/iox/yamlx"
	"github.com/diagramkit/core/math32"
)

// Schema is the plain external description of one element, as supplied
// by deserializers or remote sources: a type tag, an optional id (empty
// requests auto-generation), an optional property bag, and an ordered
// list of child schemas of the same shape.
type Schema struct {
	Type       string         `json:"type" yaml:"type"`
	ID         string         `json:"id,omitempty" yaml:"id,omitempty"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	Children   []*Schema      `json:"children,omitempty" yaml:"children,omitempty"`
}

// Bounds is the schema form of a rectangle on the drawing surface.
type Bounds struct {
	X      float32 `json:"x" yaml:"x"`
	Y      float32 `json:"y" yaml:"y"`
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

// Box2 returns the [math32.Box2] equivalent of these bounds.
func (bs Bounds) Box2() math32.Box2 {
	return math32.B2(bs.X, bs.Y, bs.X+bs.Width, bs.Y+bs.Height)
}

// RootSchema is the schema shape for the root element, which
// additionally carries the canvas bounds and the revision counter.
type RootSchema struct {
	Schema       `yaml:",inline"`
	CanvasBounds *Bounds `json:"canvasBounds,omitempty" yaml:"canvasBounds,omitempty"`
	Revision     uint64  `json:"revision,omitempty" yaml:"revision,omitempty"`
}

// reservedProperties are the framework-managed names that externally
// supplied property bags must never overwrite. They are dropped
// silently when schema properties are applied to an element.
var reservedProperties = map[string]bool{
	"id":       true,
	"parent":   true,
	"children": true,
	"root":     true,
	"index":    true,
}

// NewRootFromSchema builds a complete model tree from the given root
// schema: a new [Root] with the schema's canvas bounds and revision,
// and the full child hierarchy attached and registered in depth-first
// order. Elements without ids get generated ones. A duplicate id
// anywhere in the schema fails with [ErrDuplicateID].
func NewRootFromSchema(rs *RootSchema) (*Root, error) {
	root := NewRoot(rs.Type, rs.ID)
	root.Revision = rs.Revision
	if rs.CanvasBounds != nil {
		root.CanvasBounds = rs.CanvasBounds.Box2()
	}
	applyProperties(&root.Element, rs.Properties)
	for _, cs := range rs.Children {
		if err := addFromSchema(&root.Element, cs); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// addFromSchema attaches a new element built from the given schema as a
// child of parent, then recurses into the schema's children.
func addFromSchema(parent *Element, s *Schema) error {
	el := New(s.Type, s.ID)
	applyProperties(el, s.Properties)
	if err := parent.AddChild(el); err != nil {
		return err
	}
	for _, cs := range s.Children {
		if err := addFromSchema(el, cs); err != nil {
			return err
		}
	}
	return nil
}

// applyProperties copies schema properties onto the element, dropping
// reserved framework-managed names so external data can never corrupt
// the tree invariants.
func applyProperties(el *Element, props map[string]any) {
	for k, v := range props {
		if reservedProperties[k] {
			continue
		}
		el.SetProperty(k, v)
	}
}

// ReadJSON reads a root schema in JSON from the given reader and builds
// a model tree from it.
func ReadJSON(reader io.Reader) (*Root, error) {
	rs := &RootSchema{}
	if err := jsonx.Read(rs, reader); err != nil {
		return nil, err
	}
	return NewRootFromSchema(rs)
}

// OpenJSON reads a root schema in JSON from the given filename and
// builds a model tree from it.
func OpenJSON(filename string) (*Root, error) {
	rs := &RootSchema{}
	if err := jsonx.Open(rs, filename); err != nil {
		return nil, err
	}
	return NewRootFromSchema(rs)
}

// ReadYAML reads a root schema in YAML from the given reader and builds
// a model tree from it.
func ReadYAML(reader io.Reader) (*Root, error) {
	rs := &RootSchema{}
	if err := yamlx.Read(rs, reader); err != nil {
		return nil, err
	}
	return NewRootFromSchema(rs)
}

// OpenYAML reads a root schema in YAML from the given filename and
// builds a model tree from it.
func OpenYAML(filename string) (*Root, error) {
	rs := &RootSchema{}
	if err := yamlx.Open(rs, filename); err != nil {
		return nil, err
	}
	return NewRootFromSchema(rs)
}
