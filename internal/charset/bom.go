// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import "bytes"

// Byte-order-mark signatures, longest first so a UTF-32LE mark is not
// mistaken for UTF-16LE.
var boms = []struct {
	sig  []byte
	name string
}{
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "UTF-32BE"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "UTF-32LE"},
	{[]byte{0xEF, 0xBB, 0xBF}, "UTF-8"},
	{[]byte{0xFE, 0xFF}, "UTF-16BE"},
	{[]byte{0xFF, 0xFE}, "UTF-16LE"},
}

// FromBOM maps a leading byte-order-mark to its charset name, or returns
// the empty string when the content carries no recognized mark. A BOM is
// physical evidence of the encoding and overrides every other signal.
func FromBOM(content []byte) string {
	for _, bom := range boms {
		if bytes.HasPrefix(content, bom.sig) {
			return bom.name
		}
	}
	return ""
}
