// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"strconv"

	"github.com/gogs/chardet"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/crawlkit/charsetd/internal/conf"
	"github.com/crawlkit/charsetd/internal/osutil"
)

var Guess = cli.Command{
	Name:  "guess",
	Usage: "List statistical charset candidates for a file",
	Description: `Guess runs only the statistical detector and prints every candidate it
considers plausible, ordered by confidence. Useful for diagnosing why a
document resolved to an unexpected charset.`,
	Action: runGuess,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

func runGuess(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expect exactly one file to guess")
	}

	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	file := c.Args().First()
	if !osutil.IsFile(file) {
		return errors.Errorf("%q does not exist or is not a file", file)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "read %q", file)
	}

	results, err := chardet.NewHtmlDetector().DetectAll(content)
	if err != nil {
		return errors.Wrap(err, "detect candidates")
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Charset", "Language", "Confidence"})
	table.SetBorder(false)
	for _, result := range results {
		table.Append([]string{
			result.Charset,
			result.Language,
			strconv.Itoa(result.Confidence),
		})
	}
	table.Render()
	return nil
}
