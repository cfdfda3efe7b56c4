// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type app struct {
	LogLevel string `enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`

	Decode  cmdDecode  `cmd:"" help:"Decode single-byte code points to text."`
	Encode  cmdEncode  `cmd:"" help:"Print the code points of a text."`
	Convert cmdConvert `cmd:"" help:"Decode the files listed in a config."`
	Init    cmdInit    `cmd:"" help:"Write a starter config."`
	Schema  cmdSchema  `cmd:"" help:"Write the config JSON schema."`
	Version cmdVersion `cmd:""`
}

func (a *app) AfterApply() error {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func newParser(cli *app, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cptext"),
		kong.Description("Convert between single-byte code points and text"),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var cli app
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
