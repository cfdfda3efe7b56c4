// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/cptext-go/cmd/cptext/internal"
)

type cmdVersion struct {
	JSON bool `help:"Print as a JSON object."`
}

type buildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision"`
	Time      string `json:"time"`
}

func readBuildInfo() (buildInfo, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildInfo{}, errors.New("build info not found")
	}

	bi := buildInfo{
		Version:   info.Main.Version,
		GoVersion: info.GoVersion,
		Revision:  "unknown",
		Time:      "unknown",
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 8 {
				bi.Revision = setting.Value[:8]
			}
		case "vcs.time":
			if setting.Value != "" {
				bi.Time = setting.Value
			}
		}
	}
	return bi, nil
}

func (c cmdVersion) Run(ctx *kong.Context) error {
	bi, err := readBuildInfo()
	if err != nil {
		return err
	}
	if c.JSON {
		data, err := internal.MarshalJSON(bi)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(ctx.Stdout, "%s\n", data)
		return err
	}
	_, err = fmt.Fprintf(ctx.Stdout, "cptext %s built with %s from %s on %s\n",
		bi.Version, bi.GoVersion, bi.Revision, bi.Time)
	return err
}
