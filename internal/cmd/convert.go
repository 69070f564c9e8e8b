// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"github.com/crawlkit/charsetd/internal/charset"
	"github.com/crawlkit/charsetd/internal/conf"
	"github.com/crawlkit/charsetd/internal/osutil"
)

var Convert = cli.Command{
	Name:  "convert",
	Usage: "Convert a file to UTF-8",
	Description: `Convert detects the charset of the file and decodes its content to
UTF-8. Content that cannot be decoded is written out unchanged, so the
output is always usable downstream.`,
	Action: runConvert,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		boolFlag("fast", "Stop at the first plausible signal instead of cross-validating"),
		intFlag("max-length", 0, "Maximum number of bytes to inspect, non-positive means unlimited"),
		stringFlag("content-type", "", "Content-Type header value the document was served with"),
		stringFlag("output, o", "", "Output file path, defaults to standard output"),
	},
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expect exactly one file to convert")
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

	detector := charset.NewDetector(detectorConfig(c), nil)
	decoded, detected, err := detector.ToUTF8(content, metadataFromFlags(c))
	if err != nil {
		return errors.Wrapf(err, "convert %q", file)
	}
	log.Info("%s: converted from %s", file, detected)

	if output := c.String("output"); output != "" {
		if osutil.IsExist(output) {
			log.Warn("Overwriting existing file %q", output)
		}
		if err = os.WriteFile(output, decoded, 0644); err != nil {
			return errors.Wrapf(err, "write %q", output)
		}
		return nil
	}
	_, err = os.Stdout.Write(decoded)
	return err
}
