// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"strings"

	"golang.org/x/net/html"
)

// metaCharsetMarker is the common HTML5 shorthand. It is matched
// case-sensitively as a cheap prefilter; anything it misses falls through
// to a full markup parse.
const metaCharsetMarker = `<meta charset="`

// FromHTML scans markup for a declared charset. The bytes are read as
// UTF-8 text purely as a scanning surface, that optimistic decoding is
// never the returned result.
//
// The literal `<meta charset="..."` shorthand is tried first. When the
// marker is present but the closing quote is missing the markup is taken
// as truncated or broken, and no candidate is produced. Only when the
// marker is absent entirely is the document parsed structurally, honoring
// both <meta http-equiv="Content-Type" content="...; charset=..."> and the
// HTML5 <meta charset=...> form in document order.
func FromHTML(content []byte) string {
	text := string(content)

	if start := strings.Index(text, metaCharsetMarker); start != -1 {
		rest := text[start+len(metaCharsetMarker):]
		end := strings.IndexByte(rest, '"')
		if end == -1 {
			// An opened but unterminated tag means broken content,
			// not a missing declaration.
			return ""
		}
		charset, _ := Validate(rest[:end])
		return charset
	}

	return fromMetaElements(text)
}

// fromMetaElements walks the parsed document and returns the first charset
// declared by a <meta> element. Parse problems yield no candidate.
func fromMetaElements(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return ""
	}

	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			if charset := fromMetaAttrs(n.Attr); charset != "" {
				found = charset
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return found
}

// fromMetaAttrs extracts a charset from the attributes of a single <meta>
// element. A content-type pragma is consulted first, then the charset
// attribute. The parser has already lower-cased attribute keys.
func fromMetaAttrs(attrs []html.Attribute) string {
	var httpEquiv, content, charsetAttr string
	for _, a := range attrs {
		switch a.Key {
		case "http-equiv":
			httpEquiv = a.Val
		case "content":
			content = a.Val
		case "charset":
			charsetAttr = a.Val
		}
	}

	// Only content-type pragmas and the HTML5 shorthand declare the
	// document encoding.
	if !strings.EqualFold(httpEquiv, "content-type") && charsetAttr == "" {
		return ""
	}

	if httpEquiv != "" {
		if charset := FromContentType(content); charset != "" {
			return charset
		}
	}
	if charsetAttr != "" {
		charset, _ := Validate(charsetAttr)
		return charset
	}
	return ""
}
