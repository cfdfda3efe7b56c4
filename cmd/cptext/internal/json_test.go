// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(map[string]string{"path": "a<b>.bin"})
	require.NoError(t, err)
	assert.Equal(t, `{"path":"a<b>.bin"}`, string(data))
}

func TestArrayMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(Array[string](nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	data, err = MarshalJSON(Array[string]{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, `["x","y"]`, string(data))
}

func TestSchema(t *testing.T) {
	type sample struct {
		Name  string `json:"name" jsonschema:"required,minLength=1"`
		Count int    `json:"count"`
	}
	schema := Schema(reflect.TypeFor[sample]())
	assert.Equal(t, []string{"name"}, schema.Required)
	require.NotNil(t, schema.Properties)
	prop, ok := schema.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, "string", prop.Type)
}
