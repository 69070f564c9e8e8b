// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"bytes"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
	log "unknwon.dev/clog/v2"
)

// utf8BOM is the UTF-8 byte-order-mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RemoveBOM strips a leading UTF-8 byte-order-mark from the content.
func RemoveBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, utf8BOM)
}

// ToUTF8 resolves the charset of the content per the detector
// configuration, then decodes the full content to UTF-8. Content that is
// already valid UTF-8 is passed through with only the byte-order-mark
// stripped. When the detected charset has no decoder, or decoding fails,
// the original bytes are returned untouched together with the detected
// name; conversion is best-effort the same way detection is.
func (d *Detector) ToUTF8(content []byte, metadata http.Header) ([]byte, string, error) {
	detected, err := d.Detect(content, metadata)
	if err != nil {
		return nil, "", err
	}

	if strings.EqualFold(detected, "UTF-8") && utf8.Valid(content) {
		return RemoveBOM(content), detected, nil
	}

	enc, _ := charset.Lookup(detected)
	if enc == nil {
		log.Trace("No decoder for %q, returning content as-is", detected)
		return content, detected, nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		log.Trace("Decode as %q failed: %v", detected, err)
		return content, detected, nil
	}
	return RemoveBOM(decoded), detected, nil
}
