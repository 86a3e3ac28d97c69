// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diagramkit/core/base/iox/jsonx"
	"github.com/diagramkit/core/base/iox/tomlx"
	"github.com/diagramkit/core/base/iox/yamlx"
)

type testData struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Count int    `json:"count" yaml:"count" toml:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := testData{Name: "hello", Count: 3}
	var b bytes.Buffer
	require.NoError(t, jsonx.Write(in, &b))

	var out testData
	require.NoError(t, jsonx.Read(&out, &b))
	assert.Equal(t, in, out)

	out = testData{}
	require.NoError(t, jsonx.ReadBytes(&out, []byte(`{"name":"hello","count":3}`)))
	assert.Equal(t, in, out)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := testData{Name: "hello", Count: 3}
	var b bytes.Buffer
	require.NoError(t, yamlx.Write(in, &b))

	var out testData
	require.NoError(t, yamlx.Read(&out, &b))
	assert.Equal(t, in, out)
}

func TestTOMLFileRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "data.toml")
	in := testData{Name: "hello", Count: 3}
	require.NoError(t, tomlx.Save(in, fn))

	var out testData
	require.NoError(t, tomlx.Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestOpenMissingFile(t *testing.T) {
	var out testData
	err := jsonx.Open(&out, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
