// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides convenient JSON reading and writing functions.
package jsonx

import (
	"encoding/json"
	"io"

	"github.com/diagramkit/core/base/iox"
)

// Open reads the given object from the given filename using JSON encoding.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given object from the given reader using JSON encoding.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// ReadBytes reads the given object from the given bytes using JSON encoding.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given object to the given filename using JSON encoding.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(json.NewEncoder))
}

// Write writes the given object to the given writer using JSON encoding.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteIndent writes the given object to the given writer using JSON encoding,
// with indentation for readability.
func WriteIndent(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(func(w io.Writer) *json.Encoder {
		e := json.NewEncoder(w)
		e.SetIndent("", "\t")
		return e
	}))
}
