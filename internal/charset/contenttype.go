// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"strings"

	"github.com/crawlkit/charsetd/internal/lazyregexp"
)

// charsetPattern locates the charset parameter in a Content-Type header
// value, e.g. `text/html; charset=EUC-JP`. An optional opening quote is
// tolerated and the token ends at whitespace, comma, semicolon or a quote.
var charsetPattern = lazyregexp.New(`(?i)\bcharset=\s*["']?([^\s,;"']*)`)

// FromContentType parses the charset parameter out of a Content-Type
// header value. It returns the empty string when no parameter is present
// or the declared name cannot be decoded by the runtime.
func FromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	m := charsetPattern.FindStringSubmatch(contentType)
	if m == nil {
		return ""
	}

	// Some servers stutter and send "charset=charset=utf-8".
	name := strings.TrimPrefix(strings.TrimSpace(m[1]), "charset=")
	charset, ok := Validate(name)
	if !ok {
		return ""
	}
	return charset
}
