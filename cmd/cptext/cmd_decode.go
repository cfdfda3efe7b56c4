// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/cptext-go/cptext"
	"github.com/sirupsen/logrus"
)

var demo = []int{72, 101, 108, 108, 111, 32, 119, 111, 114, 108, 100, 33}

type cmdDecode struct {
	Codepoints []int  `arg:"" optional:"" help:"Decimal code points, 0-255. Defaults to a greeting."`
	Raw        string `short:"r" type:"path" placeholder:"FILE" help:"Decode the raw bytes of FILE (- for stdin)."`
}

func (c *cmdDecode) Run(ctx *kong.Context) error {
	if c.Raw != "" {
		if len(c.Codepoints) != 0 {
			return errors.New("--raw cannot be combined with code point arguments")
		}
		return c.decodeRaw(ctx.Stdout)
	}

	cps := c.Codepoints
	if len(cps) == 0 {
		logrus.Debug("no code points given, decoding the demo sequence")
		cps = demo
	}
	s, err := cptext.DecodeCodepoints(cps)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Stdout, s)
	return err
}

func (c *cmdDecode) decodeRaw(w io.Writer) error {
	f, err := openInput(c.Raw)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"path": c.Raw, "bytes": len(data)}).Debug("decoding raw input")
	_, err = w.Write(cptext.AppendDecode(nil, data))
	return err
}
