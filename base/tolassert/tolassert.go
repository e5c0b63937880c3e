// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, it checks whether numbers are
// about equal, to handle floating point error).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks whether actual is about equal to expected,
// using a default tolerance of 1e-7.
func Equal(t testing.TB, expected, actual float64, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 1e-7, msgAndArgs...)
}

// EqualTol checks whether actual is about equal to expected,
// using the given tolerance.
func EqualTol(t testing.TB, expected, actual, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, tol, msgAndArgs...)
}
