// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package charset resolves the character encoding of raw byte documents,
// typically HTML fetched by a crawler, when no fully trustworthy encoding
// declaration is guaranteed to exist.
//
// Candidates are collected from the byte-order-mark, the HTTP Content-Type
// header, HTML <meta> declarations and a statistical guess, in that order
// of authority. Every candidate passes through Validate before it can be
// returned, so the resolved name is always one the runtime can decode.
package charset

import (
	"net/http"
	"strings"

	log "unknwon.dev/clog/v2"
)

// DefaultCharset is the encoding assumed when no detector produces a usable
// candidate. Detection prefers a best guess over failure, so downstream
// decoding can always proceed.
const DefaultCharset = "UTF-8"

// contentType is the only metadata key consulted during resolution.
const contentType = "Content-Type"

// Config controls how a Detector resolves encodings. It must not be
// modified after the Detector is constructed.
type Config struct {
	// FastMethod stops at the first plausible signal instead of
	// cross-validating the HTTP header against the HTML markup.
	FastMethod bool
	// MaxLength is the upper bound on the number of bytes any detector
	// observes. Zero or negative means unlimited.
	MaxLength int
	// DefaultCharset is the encoding resolved when no detector produces
	// a usable candidate. Empty means DefaultCharset. Callers must pass a
	// name that Validate accepts; conf.Init does this for configured
	// values.
	DefaultCharset string
}

// Detector resolves the charset of byte documents. The zero value is not
// usable; construct with NewDetector. A single Detector is safe for
// concurrent use since every detection step is a pure function of its
// inputs.
type Detector struct {
	config  Config
	guesser Guesser
}

// NewDetector creates a detector with the given configuration. A nil
// guesser falls back to the built-in statistical guesser.
func NewDetector(config Config, guesser Guesser) *Detector {
	if guesser == nil {
		guesser = textGuesser{}
	}
	return &Detector{
		config:  config,
		guesser: guesser,
	}
}

// ErrNoContent is returned by Detect when the caller supplied no content at
// all. Failing to detect an encoding is not an error, it resolves to
// DefaultCharset instead.
var ErrNoContent error = noContentError{}

type noContentError struct{}

func (noContentError) Error() string { return "no content to detect" }

func (noContentError) NoInput() bool { return true }

// Detect returns the name of the charset the content is most plausibly
// encoded in. Only the Content-Type key of the metadata is consulted,
// matched case-insensitively, and metadata may be nil. The returned name is
// always decodable by the runtime, with one exception: a UTF-32
// byte-order-mark is reported as UTF-32 even though the runtime registers
// no UTF-32 decoder, since the mark itself is conclusive.
func (d *Detector) Detect(content []byte, metadata http.Header) (string, error) {
	if content == nil {
		return "", ErrNoContent
	}

	// Trim to the configured maximum once so every downstream detector
	// observes the same bounded buffer.
	if d.config.MaxLength > 0 && d.config.MaxLength < len(content) {
		content = content[:d.config.MaxLength]
	}

	var charset string
	if d.config.FastMethod {
		charset = d.detectFast(content, metadata)
	} else {
		charset = d.detectThorough(content, metadata)
	}
	log.Trace("Detected encoding: %s", charset)
	return charset, nil
}

// detectThorough resolves the charset from the byte-order-mark, or from the
// HTTP header and HTML metadata when both agree, and otherwise asks the
// statistical guesser before falling back to the default.
func (d *Detector) detectThorough(content []byte, metadata http.Header) string {
	if charset := FromBOM(content); charset != "" {
		return charset
	}

	httpCharset := fromHTTP(metadata)
	htmlCharset := FromHTML(content)

	// Agreement between two independent declarations is the strongest
	// signal short of a BOM. Keep the HTTP casing.
	if httpCharset != "" && htmlCharset != "" && strings.EqualFold(httpCharset, htmlCharset) {
		return httpCharset
	}

	// A lone declaration is still worth a hint. Disagreement means
	// neither side can be trusted, so no hint at all.
	var hint string
	if httpCharset != "" && htmlCharset == "" {
		hint = httpCharset
	} else if httpCharset == "" && htmlCharset != "" {
		hint = htmlCharset
	}

	if charset := d.fromText(content, hint); charset != "" {
		return charset
	}
	return d.defaultCharset()
}

// detectFast resolves the charset from the first signal that produces a
// candidate: byte-order-mark, HTTP header, HTML metadata, statistical
// guess. It trades the cross-validation of detectThorough for latency; the
// HTML markup is never even scanned when the HTTP header declares a usable
// charset.
func (d *Detector) detectFast(content []byte, metadata http.Header) string {
	if charset := FromBOM(content); charset != "" {
		return charset
	}
	if charset := fromHTTP(metadata); charset != "" {
		return charset
	}
	if charset := FromHTML(content); charset != "" {
		return charset
	}
	if charset := d.fromText(content, ""); charset != "" {
		return charset
	}
	return d.defaultCharset()
}

// defaultCharset returns the configured fallback encoding.
func (d *Detector) defaultCharset() string {
	if d.config.DefaultCharset != "" {
		return d.config.DefaultCharset
	}
	return DefaultCharset
}

// fromHTTP extracts the charset declared by the server, if any. Header
// names are matched case-insensitively: Get only canonicalizes the lookup
// key, so a caller-built map with a non-canonical "content-type" key would
// otherwise lose the HTTP signal entirely.
func fromHTTP(metadata http.Header) string {
	if v := metadata.Get(contentType); v != "" {
		return FromContentType(v)
	}
	for name, values := range metadata {
		if strings.EqualFold(name, contentType) && len(values) > 0 {
			return FromContentType(values[0])
		}
	}
	return ""
}

// fromText consults the statistical guesser as a last resort. The guesser
// is best-effort, a failure is the same as no result.
func (d *Detector) fromText(content []byte, hint string) string {
	guess, err := d.guesser.Guess(content, hint)
	if err != nil {
		log.Trace("Statistical guess failed: %v", err)
		return ""
	}
	charset, ok := Validate(guess)
	if !ok {
		return ""
	}
	return charset
}
