// Copyright (c) 2026, The Funcplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides convenient functions for opening and
// saving values to and from JSON.
package jsonx

import (
	"bufio"
	"encoding/json"
	"io"
	"io/fs"
	"os"
)

// Open reads the given value from the given filename using JSON encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFS reads the given value from the given filename using JSON encoding,
// using the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(v any, fsys fs.FS, filename string) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// Read reads the given value from the given reader using JSON encoding.
func Read(v any, reader io.Reader) error {
	return json.NewDecoder(reader).Decode(v)
}

// ReadBytes reads the given value from the given bytes using JSON encoding.
func ReadBytes(v any, data []byte) error {
	return json.Unmarshal(data, v)
}

// Save writes the given value to the given filename using JSON encoding.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given value to the given writer using JSON encoding
// with indentation.
func Write(v any, writer io.Writer) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}

// WriteBytes returns the JSON encoding of the given value with indentation.
func WriteBytes(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "\t")
}
