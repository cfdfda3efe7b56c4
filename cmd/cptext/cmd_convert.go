// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/antoniszymanski/cptext-go/cmd/cptext/config"
	"github.com/antoniszymanski/cptext-go/cmd/cptext/internal"
	"github.com/antoniszymanski/cptext-go/cptext"
	"github.com/elliotchance/orderedmap/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type cmdConvert struct {
	Path string `arg:"" type:"path" default:"cptext.jsonc"`
}

type manifestEntry struct {
	Output string `json:"output"`
	Chars  int    `json:"chars"`
}

func (c *cmdConvert) Run() error {
	f, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	cfg, err := config.Load(f)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(cfg.OutputPath, 0750); err != nil {
		return err
	}

	entries := make([]manifestEntry, len(cfg.Inputs))
	var g errgroup.Group
	if cfg.Limit != 0 {
		g.SetLimit(cfg.Limit)
	}
	for i, input := range cfg.Inputs {
		g.Go(func() error {
			entry, err := convertFile(input, cfg.OutputPath)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			entries[i] = entry
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	if !cfg.Manifest {
		return nil
	}
	manifest := orderedmap.NewOrderedMap[string, manifestEntry]()
	for i, input := range cfg.Inputs {
		manifest.Set(input, entries[i])
	}
	data, err := renderManifest(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cfg.OutputPath, "manifest.json"), data, 0600)
}

func convertFile(input, outputPath string) (manifestEntry, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return manifestEntry{}, err
	}
	text := cptext.AppendDecode(nil, data)
	output := filepath.Join(outputPath, config.OutputName(input))
	if err = os.WriteFile(output, text, 0600); err != nil {
		return manifestEntry{}, err
	}
	logrus.WithFields(logrus.Fields{
		"input":  input,
		"output": output,
		"bytes":  len(data),
	}).Info("decoded")
	return manifestEntry{Output: output, Chars: utf8.RuneCount(text)}, nil
}

func renderManifest(m *orderedmap.OrderedMap[string, manifestEntry]) ([]byte, error) {
	b := []byte{'{'}
	first := true
	for key, entry := range m.AllFromFront() {
		if !first {
			b = append(b, ',')
		}
		first = false
		b = append(b, "\n\t"...)

		k, err := internal.MarshalJSON(key)
		if err != nil {
			return nil, err
		}
		v, err := internal.MarshalJSON(entry)
		if err != nil {
			return nil, err
		}
		b = append(b, k...)
		b = append(b, ": "...)
		b = append(b, v...)
	}
	if !first {
		b = append(b, '\n')
	}
	b = append(b, "}\n"...)
	return b, nil
}
