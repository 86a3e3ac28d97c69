// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/diagramkit/core/base/iox/tomlx"

// defaultFramesPerSecond is the frame rate used when none is configured.
const defaultFramesPerSecond = 60

// DriverSettings configures the wall-clock frame driver.
type DriverSettings struct {

	// FramesPerSecond is the display frame rate for [TickerFrames].
	FramesPerSecond int `toml:"frames-per-second"`
}

// Defaults sets default settings values.
func (ds *DriverSettings) Defaults() {
	ds.FramesPerSecond = defaultFramesPerSecond
}

// OpenSettings reads driver settings in TOML from the given filename,
// on top of defaults, so absent fields keep their default values.
func OpenSettings(filename string) (*DriverSettings, error) {
	ds := &DriverSettings{}
	ds.Defaults()
	if err := tomlx.Open(ds, filename); err != nil {
		return nil, err
	}
	return ds, nil
}

// SaveSettings writes the given driver settings in TOML to the given
// filename.
func SaveSettings(ds *DriverSettings, filename string) error {
	return tomlx.Save(ds, filename)
}
