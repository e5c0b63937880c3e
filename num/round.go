// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"strconv"
	"strings"
)

// RoundFloat rounds x to digits decimal places using a decimal exponent
// shift instead of multiplying by a power of ten, so that binary
// representation drift does not leak into the result: 0.1+0.2 rounds to
// 0.3 at 4 digits, and 0.4986107602930035 rounds to 0.498610760293004
// at 15 digits. Negative zero is normalized to +0.
func RoundFloat(x float64, digits int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x + 0 // normalizes -0
	}
	mant, exp := decimalParts(x)
	shifted, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(exp+digits), 64)
	if err != nil {
		return x
	}
	r := math.Round(shifted)
	out, err := strconv.ParseFloat(strconv.FormatFloat(r, 'f', -1, 64)+"e"+strconv.Itoa(-digits), 64)
	if err != nil {
		return x
	}
	if out == 0 {
		return 0
	}
	return out
}

// decimalParts splits x into its shortest decimal mantissa
// and base-10 exponent.
func decimalParts(x float64) (mant string, exp int) {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant = s[:i]
	exp, _ = strconv.Atoi(s[i+1:])
	return mant, exp
}

// RoundFloatDefault rounds to 8 decimal places, the precision used for
// derived color transform matrices.
func RoundFloatDefault(x float64) float64 {
	return RoundFloat(x, 8)
}
