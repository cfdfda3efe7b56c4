// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"
	"os"
	"path/filepath"
)

// stdio is returned in place of a file for the "-" path.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return stdio{Reader: os.Stdin}, nil
	}
	return os.Open(path)
}

func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return stdio{Writer: os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	return os.Create(path)
}
