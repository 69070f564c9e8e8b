// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charset

import (
	"strings"

	"github.com/gogs/chardet"
)

// Guesser is the last-resort statistical detector. The hint, when not
// empty, is a previously declared charset the implementation may bias its
// decision toward; it is advisory only. Implementations must not mutate
// content and must return an error rather than an arbitrary name when no
// confident guess exists.
type Guesser interface {
	Guess(content []byte, hint string) (string, error)
}

// textGuesser backs Guesser with chardet's n-gram detector. The HTML
// variant is used so markup tags do not skew the language frequency
// statistics.
type textGuesser struct{}

func (textGuesser) Guess(content []byte, hint string) (string, error) {
	results, err := chardet.NewHtmlDetector().DetectAll(content)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", chardet.NotDetectedError
	}
	return pickResult(results, hint), nil
}

// pickResult prefers the hinted charset when the statistics consider it a
// plausible match at all, and the most confident candidate otherwise. The
// results are assumed to be sorted by confidence, as DetectAll returns
// them.
func pickResult(results []chardet.Result, hint string) string {
	if hint != "" {
		for _, result := range results {
			if strings.EqualFold(result.Charset, hint) {
				return result.Charset
			}
		}
	}
	return results[0].Charset
}
