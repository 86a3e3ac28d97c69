// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for the io functions
// of reading and writing structured data to files and streams through
// format-specific Decoder and Encoder implementations (see the jsonx,
// tomlx, and yamlx subpackages).
package iox

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Decoder is an interface for standard decoder types that
// decode from an input stream into the given value.
type Decoder interface {
	// Decode decodes from the stream this decoder was created on
	// into the given value.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for a specific decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Open reads the given object from the given filename using the given [DecoderFunc].
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), f)
}

// Read reads the given object from the given reader using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes using the given [DecoderFunc].
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}

// Encoder is an interface for standard encoder types that
// encode the given value into an output stream.
type Encoder interface {
	// Encode encodes the given value into the stream
	// this encoder was created on.
	Encode(v any) error
}

// EncoderFunc is a function that creates a new [Encoder] for the given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewEncoderFunc returns an [EncoderFunc] for a specific encoder type.
func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Save writes the given object to the given filename using the given [EncoderFunc].
func Save(v any, filename string, f EncoderFunc) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object to the given writer using the given [EncoderFunc].
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	return e.Encode(v)
}
