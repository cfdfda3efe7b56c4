// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"reflect"

	"github.com/antoniszymanski/cptext-go/cmd/cptext/config"
	"github.com/antoniszymanski/cptext-go/cmd/cptext/internal"
)

type cmdSchema struct {
	Path string `arg:"" type:"path" default:"cptext.schema.json"`
}

func (c *cmdSchema) Run() error {
	f, err := createOutput(c.Path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	return enc.Encode(internal.Schema(reflect.TypeFor[config.Config]()))
}
