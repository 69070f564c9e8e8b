// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

// ℹ️ README: This file contains static values that should only be set at initialization time.

// CustomConf returns the absolute path of custom configuration file that is used.
var CustomConf string

// Build information should only be set by -ldflags.
var (
	BuildTime   string
	BuildCommit string
)

var (
	// Application settings
	App struct {
		// ⚠️ WARNING: Should only be set by the main package (i.e. "charsetd.go").
		Version string `ini:"-"`
	}

	// Detector settings: [detector]
	Detector struct {
		FastMethod     bool
		MaxLength      int
		DefaultCharset string
	}
)
