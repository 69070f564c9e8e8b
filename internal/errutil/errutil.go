// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package errutil

// NoInput represents an error caused by the caller supplying no input at
// all, as opposed to input that could not be processed.
type NoInput interface {
	NoInput() bool
}

// IsNoInput returns true if the error indicates missing input.
func IsNoInput(err error) bool {
	e, ok := err.(NoInput)
	return ok && e.NoInput()
}
