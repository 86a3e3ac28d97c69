// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(3, -1))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(1, -1, 3, 2), b)

	// the zero value is a degenerate (zero-size) box, not an inverted one
	var zero Box2
	assert.False(t, zero.IsEmpty())
	assert.Equal(t, Vec2(0, 0), zero.Size())
}

func TestBox2FromPoint(t *testing.T) {
	b := B2FromPoint(Vec2(5, 6))
	assert.Equal(t, Vec2(5, 6), b.Min)
	assert.Equal(t, Vec2(5, 6), b.Max)
	assert.Equal(t, Vec2(0, 0), b.Size())
}

func TestBox2Geometry(t *testing.T) {
	b := B2(0, 0, 10, 4)
	assert.Equal(t, Vec2(5, 2), b.Center())
	assert.Equal(t, Vec2(10, 4), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(10, 4)))
	assert.False(t, b.ContainsPoint(Vec2(10.5, 4)))
	assert.True(t, b.ContainsBox(B2(1, 1, 2, 2)))
	assert.True(t, b.IntersectsBox(B2(9, 3, 20, 20)))
	assert.False(t, b.IntersectsBox(B2(11, 5, 20, 20)))

	assert.Equal(t, B2(2, 1, 10, 4), b.Intersect(B2(2, 1, 20, 20)))
	assert.Equal(t, B2(0, 0, 20, 20), b.Union(B2(2, 1, 20, 20)))
	assert.Equal(t, B2(1, 1, 11, 5), b.Translate(Vec2(1, 1)))
	assert.Equal(t, B2(0, 0, 10, 4), B2(10, 4, 0, 0).Canon())
	assert.Equal(t, Vec2(10, 4), b.ClampPoint(Vec2(12, 5)))
}

func TestBox2Rect(t *testing.T) {
	r := image.Rect(1, 2, 3, 4)
	b := B2FromRect(r)
	assert.Equal(t, B2(1, 2, 3, 4), b)
	assert.Equal(t, r, b.ToRect())

	assert.Equal(t, image.Rect(0, 0, 2, 2), B2(0.5, 0.5, 1.5, 1.5).ToRect())
}
