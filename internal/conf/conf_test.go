// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		require.NoError(t, Init(""))

		assert.False(t, Detector.FastMethod)
		assert.Equal(t, -1, Detector.MaxLength)
		assert.Equal(t, "UTF-8", Detector.DefaultCharset)
	})

	t.Run("missing custom config falls back to defaults", func(t *testing.T) {
		require.NoError(t, Init(filepath.Join(os.TempDir(), "charsetd-does-not-exist.ini")))

		assert.False(t, Detector.FastMethod)
		assert.Equal(t, -1, Detector.MaxLength)
	})

	t.Run("custom config overrides defaults", func(t *testing.T) {
		customConf := filepath.Join(t.TempDir(), "app.ini")
		err := os.WriteFile(customConf, []byte(`
[detector]
FAST_METHOD = true
MAX_LENGTH = 2048
DEFAULT_CHARSET = windows-1251
`), 0644)
		require.NoError(t, err)

		require.NoError(t, Init(customConf))

		assert.True(t, Detector.FastMethod)
		assert.Equal(t, 2048, Detector.MaxLength)
		assert.Equal(t, "windows-1251", Detector.DefaultCharset)
	})

	t.Run("undecodable default charset falls back to UTF-8", func(t *testing.T) {
		customConf := filepath.Join(t.TempDir(), "app.ini")
		err := os.WriteFile(customConf, []byte(`
[detector]
DEFAULT_CHARSET = bogus-256
`), 0644)
		require.NoError(t, err)

		require.NoError(t, Init(customConf))

		assert.Equal(t, "UTF-8", Detector.DefaultCharset)
	})
}
