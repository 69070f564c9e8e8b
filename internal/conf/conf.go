// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conf loads and exposes the process-wide configuration. All
// settings are read-only after Init returns.
package conf

import (
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"

	"github.com/crawlkit/charsetd/internal/charset"
	"github.com/crawlkit/charsetd/internal/osutil"
)

func init() {
	// Initialize the primary logger until logging service is up.
	err := log.NewConsole()
	if err != nil {
		panic("init console logger: " + err.Error())
	}
}

// File is the configuration object.
var File *ini.File

// Init initializes configuration from built-in defaults and the given
// custom configuration file. When `customConf` is empty or the file does
// not exist, defaults are used as-is. It is safe to call this function
// multiple times with desired `customConf`, but it is not concurrent safe.
func Init(customConf string) error {
	File = ini.Empty(ini.LoadOptions{
		IgnoreInlineComment: true,
	})
	File.NameMapper = ini.SnackCase

	if customConf != "" {
		var err error
		customConf, err = filepath.Abs(customConf)
		if err != nil {
			return errors.Wrap(err, "get absolute path")
		}
		CustomConf = customConf

		if osutil.IsFile(customConf) {
			if err = File.Append(customConf); err != nil {
				return errors.Wrapf(err, "append %q", customConf)
			}
		} else {
			log.Warn("Custom config %q not found. Ignore this warning if you're running for the first time", customConf)
		}
	}

	// **************************
	// ----- Detector settings -----
	// **************************

	Detector.FastMethod = false
	Detector.MaxLength = -1
	Detector.DefaultCharset = charset.DefaultCharset
	if err := File.Section("detector").MapTo(&Detector); err != nil {
		return errors.Wrap(err, "mapping [detector] section")
	}

	if name, ok := charset.Validate(Detector.DefaultCharset); ok {
		Detector.DefaultCharset = name
	} else {
		log.Warn("'[detector] DEFAULT_CHARSET' %q is not decodable, using %s", Detector.DefaultCharset, charset.DefaultCharset)
		Detector.DefaultCharset = charset.DefaultCharset
	}

	return nil
}
