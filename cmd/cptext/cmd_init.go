// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/antoniszymanski/cptext-go/cmd/cptext/config"
)

type cmdInit struct {
	Path       string   `arg:"" type:"path" default:"cptext.jsonc"`
	SchemaPath string   `arg:"" type:"path" default:"cptext.schema.json"`
	NoSchema   bool     `short:"S" help:"Leave out the schema reference."`
	Inputs     []string `short:"i" default:"input.bin" help:"Input files to list."`
	OutputPath string   `short:"o" default:"out" help:"Output directory to set."`
}

func (c *cmdInit) Run() error {
	cfg := config.Config{
		OutputPath: c.OutputPath,
		Inputs:     c.Inputs,
	}
	if !c.NoSchema {
		cfg.Schema = c.SchemaPath
		if c.Path != "-" {
			rel, err := filepath.Rel(filepath.Dir(c.Path), c.SchemaPath)
			if err == nil {
				cfg.Schema = rel
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := createOutput(c.Path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(&cfg)
}
