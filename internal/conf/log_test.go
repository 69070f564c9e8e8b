// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"
)

func Test_parseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want log.Level
	}{
		{name: "trace", want: log.LevelTrace},
		{name: "Info", want: log.LevelInfo},
		{name: " WARN ", want: log.LevelWarn},
		{name: "error", want: log.LevelError},
		{name: "fatal", want: log.LevelFatal},
		{name: "bogus", want: log.LevelTrace},
		{name: "", want: log.LevelTrace},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, parseLogLevel(test.name))
		})
	}
}

func Test_logModes(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		f := ini.Empty()
		assert.Equal(t, []string{"console"}, logModes(f))
	})

	t.Run("multiple modes", func(t *testing.T) {
		f, err := ini.Load([]byte(`
[log]
MODE = Console, File
`))
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, []string{"console", "file"}, logModes(f))
	})
}
