// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

var quoteStripper = strings.NewReplacer(`"`, "", "'", "")

// Validate normalizes a candidate charset name and reports whether the
// runtime can decode it. The name is trimmed of surrounding whitespace and
// stripped of quote characters, then checked against the IANA registry
// under the exact spelling and once more upper-cased. Unknown and malformed
// names yield ok == false, never an error.
//
// Validate is the single gate for candidates: a name it accepts is
// guaranteed to resolve to a decoder.
func Validate(raw string) (name string, ok bool) {
	name = quoteStripper.Replace(strings.TrimSpace(raw))
	if name == "" {
		return "", false
	}
	if decodable(name) {
		return name, true
	}
	upper := strings.ToUpper(name)
	if decodable(upper) {
		return upper, true
	}
	return "", false
}

// decodable reports whether the runtime has a decoder for the given name.
// The IANA index returns a nil encoding for names that are registered but
// not implemented; those cannot be decoded either.
func decodable(name string) bool {
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc != nil
}
