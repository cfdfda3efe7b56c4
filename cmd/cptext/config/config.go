// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/cptext-go/cmd/cptext/internal"
	"github.com/hashicorp/go-set/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type Config struct {
	Schema     string                 `json:"$schema,omitzero"`
	OutputPath string                 `json:"output_path" jsonschema:"required,minLength=1,description=Directory the decoded text files are written to"`
	Inputs     internal.Array[string] `json:"inputs" jsonschema:"required,minItems=1,description=Files whose raw bytes are decoded"`
	Limit      int                    `json:"limit" jsonschema:"minimum=0,description=Maximum number of files decoded at once (0 means no limit)"`
	Manifest   bool                   `json:"manifest" jsonschema:"description=Write manifest.json next to the decoded files"`
}

// Load reads a JSONC document from r and validates it.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(jsonc.New(r))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) UnmarshalJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type RawConfig Config
	return json.Unmarshal(data, (*RawConfig)(c))
}

// Validate checks what the schema cannot express: every input must be
// listed once and map to its own output file.
func (c *Config) Validate() error {
	inputs := set.New[string](len(c.Inputs))
	outputs := make(map[string]string, len(c.Inputs))
	for _, in := range c.Inputs {
		if !inputs.Insert(filepath.Clean(in)) {
			return &DuplicateInputError{Path: in}
		}
		out := OutputName(in)
		if prev, ok := outputs[out]; ok {
			return &OutputConflictError{Paths: [2]string{prev, in}, Output: out}
		}
		outputs[out] = in
	}
	return nil
}

// OutputName is the file name the decoded form of input is written to.
func OutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
}

type DuplicateInputError struct {
	Path string
}

func (err *DuplicateInputError) Error() string {
	return "duplicate input " + strconv.Quote(err.Path)
}

type OutputConflictError struct {
	Paths  [2]string
	Output string
}

func (err *OutputConflictError) Error() string {
	return "inputs " + strconv.Quote(err.Paths[0]) + " and " + strconv.Quote(err.Paths[1]) +
		" both decode to " + strconv.Quote(err.Output)
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
