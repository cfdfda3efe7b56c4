// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/cptext-go/cptext"
)

type cmdEncode struct {
	Text      string `arg:""`
	Separator string `short:"s" default:" " help:"Printed between code points."`
}

func (c *cmdEncode) Run(ctx *kong.Context) error {
	b, err := cptext.Encode(c.Text)
	if err != nil {
		return err
	}

	// a code point has at most 3 digits
	out := make([]byte, 0, len(b)*(3+len(c.Separator))+1)
	for i, cp := range b {
		if i > 0 {
			out = append(out, c.Separator...)
		}
		out = strconv.AppendUint(out, uint64(cp), 10)
	}
	out = append(out, '\n')
	_, err = ctx.Stdout.Write(out)
	return err
}
