// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "driver.toml")
	ds := &DriverSettings{FramesPerSecond: 30}
	require.NoError(t, SaveSettings(ds, fn))

	got, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, 30, got.FramesPerSecond)
}

func TestSettingsDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "driver.toml")
	require.NoError(t, os.WriteFile(fn, []byte(""), 0666))

	got, err := OpenSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, defaultFramesPerSecond, got.FramesPerSecond)

	var ds DriverSettings
	ds.Defaults()
	assert.Equal(t, defaultFramesPerSecond, ds.FramesPerSecond)
}
