// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveBOM(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    []byte
	}{
		{
			name:    "no mark",
			content: []byte("hello"),
			want:    []byte("hello"),
		},
		{
			name:    "mark stripped",
			content: []byte{0xEF, 0xBB, 0xBF, 'h', 'i'},
			want:    []byte("hi"),
		},
		{
			name:    "empty content",
			content: []byte{},
			want:    []byte{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, RemoveBOM(test.content))
		})
	}
}

func TestDetector_ToUTF8(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		detector := NewDetector(Config{}, &fakeGuesser{})
		_, _, err := detector.ToUTF8(nil, nil)
		assert.Equal(t, ErrNoContent, err)
	})

	t.Run("valid UTF-8 passes through", func(t *testing.T) {
		detector := NewDetector(Config{}, &fakeGuesser{charset: "UTF-8"})
		got, detected, err := detector.ToUTF8([]byte("héllo wörld"), metadata("text/html; charset=UTF-8"))
		require.NoError(t, err)
		assert.Equal(t, "UTF-8", detected)
		assert.Equal(t, []byte("héllo wörld"), got)
	})

	t.Run("UTF-8 byte-order-mark is stripped", func(t *testing.T) {
		detector := NewDetector(Config{}, &fakeGuesser{})
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
		got, detected, err := detector.ToUTF8(content, nil)
		require.NoError(t, err)
		assert.Equal(t, "UTF-8", detected)
		assert.Equal(t, []byte("hello"), got)
	})

	t.Run("single-byte charset is decoded", func(t *testing.T) {
		detector := NewDetector(Config{}, &fakeGuesser{charset: "ISO-8859-1"})
		// "café" with 0xE9 for é.
		content := []byte{'c', 'a', 'f', 0xE9}
		got, detected, err := detector.ToUTF8(content, metadata("text/html; charset=ISO-8859-1"))
		require.NoError(t, err)
		assert.Equal(t, "ISO-8859-1", detected)
		assert.Equal(t, []byte("café"), got)
	})

	t.Run("UTF-16LE with byte-order-mark is decoded", func(t *testing.T) {
		detector := NewDetector(Config{}, &fakeGuesser{})
		content := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		got, detected, err := detector.ToUTF8(content, nil)
		require.NoError(t, err)
		assert.Equal(t, "UTF-16LE", detected)
		assert.Equal(t, []byte("hi"), got)
	})

	t.Run("detection without a decoder returns content as-is", func(t *testing.T) {
		// A UTF-32 byte-order-mark is hard evidence of the encoding, but
		// no UTF-32 decoder is registered for HTML content.
		detector := NewDetector(Config{}, &fakeGuesser{})
		content := []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'h'}
		got, detected, err := detector.ToUTF8(content, nil)
		require.NoError(t, err)
		assert.Equal(t, "UTF-32BE", detected)
		assert.Equal(t, content, got)
	})
}
