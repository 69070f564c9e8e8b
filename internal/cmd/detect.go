// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/crawlkit/charsetd/internal/charset"
	"github.com/crawlkit/charsetd/internal/conf"
	"github.com/crawlkit/charsetd/internal/osutil"
)

var Detect = cli.Command{
	Name:  "detect",
	Usage: "Detect the character encoding of files",
	Description: `Detect resolves the charset of each file from the byte-order-mark, an
optional Content-Type header value, HTML <meta> declarations and a
statistical guess. Detection never fails: when no signal is usable the
default charset is reported.`,
	Action: runDetect,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		boolFlag("fast", "Stop at the first plausible signal instead of cross-validating"),
		intFlag("max-length", 0, "Maximum number of bytes to inspect, non-positive means unlimited"),
		stringFlag("content-type", "", "Content-Type header value the documents were served with"),
		boolFlag("json", "Print results as JSON"),
	},
}

type detectResult struct {
	File    string `json:"file"`
	Charset string `json:"charset"`
}

func runDetect(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("no files to detect")
	}

	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	detector := charset.NewDetector(detectorConfig(c), nil)
	metadata := metadataFromFlags(c)

	results := make([]detectResult, 0, c.NArg())
	for _, file := range c.Args() {
		if !osutil.IsFile(file) {
			return errors.Errorf("%q does not exist or is not a file", file)
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "read %q", file)
		}

		detected, err := detector.Detect(content, metadata)
		if err != nil {
			return errors.Wrapf(err, "detect %q", file)
		}
		results = append(results, detectResult{
			File:    file,
			Charset: detected,
		})
	}

	if c.Bool("json") {
		json := jsoniter.ConfigCompatibleWithStandardLibrary
		return json.NewEncoder(os.Stdout).Encode(results)
	}
	for _, result := range results {
		fmt.Printf("%s: %s\n", result.File, result.Charset)
	}
	return nil
}
