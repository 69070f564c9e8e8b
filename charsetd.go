// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Charsetd resolves the character encoding of raw web documents for
// crawling and indexing pipelines.
package main

import (
	"os"

	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"github.com/crawlkit/charsetd/internal/cmd"
	"github.com/crawlkit/charsetd/internal/conf"
)

// Version is the version of the current release.
const Version = "0.3.0+dev"

// appVersion combines the release version with the build metadata injected
// via -ldflags at release time.
func appVersion() string {
	version := Version
	if conf.BuildCommit != "" {
		version += "+" + conf.BuildCommit
	}
	if conf.BuildTime != "" {
		version += " (built " + conf.BuildTime + ")"
	}
	return version
}

func init() {
	conf.App.Version = appVersion()
}

func main() {
	app := cli.NewApp()
	app.Name = "charsetd"
	app.Usage = "Character encoding detection for crawl pipelines"
	app.Version = conf.App.Version
	app.Commands = []cli.Command{
		cmd.Detect,
		cmd.Convert,
		cmd.Guess,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal("Failed to start application: %v", err)
	}
}
