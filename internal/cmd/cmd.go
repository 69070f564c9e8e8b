// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmd contains the CLI commands of charsetd.
package cmd

import (
	"net/http"

	"github.com/urfave/cli"

	"github.com/crawlkit/charsetd/internal/charset"
	"github.com/crawlkit/charsetd/internal/conf"
)

func stringFlag(name, value, usage string) cli.StringFlag {
	return cli.StringFlag{
		Name:  name,
		Value: value,
		Usage: usage,
	}
}

func boolFlag(name, usage string) cli.BoolFlag {
	return cli.BoolFlag{
		Name:  name,
		Usage: usage,
	}
}

func intFlag(name string, value int, usage string) cli.IntFlag {
	return cli.IntFlag{
		Name:  name,
		Value: value,
		Usage: usage,
	}
}

// detectorConfig merges the configured detector settings with command line
// overrides. Flags win over the configuration file.
func detectorConfig(c *cli.Context) charset.Config {
	config := charset.Config{
		FastMethod:     conf.Detector.FastMethod,
		MaxLength:      conf.Detector.MaxLength,
		DefaultCharset: conf.Detector.DefaultCharset,
	}
	if c.Bool("fast") {
		config.FastMethod = true
	}
	if c.Int("max-length") > 0 {
		config.MaxLength = c.Int("max-length")
	}
	return config
}

// metadataFromFlags builds the side-channel metadata from command line flags.
// It returns nil when no metadata was supplied, which the detector accepts.
func metadataFromFlags(c *cli.Context) http.Header {
	ct := c.String("content-type")
	if ct == "" {
		return nil
	}
	metadata := make(http.Header)
	metadata.Set("Content-Type", ct)
	return metadata
}
