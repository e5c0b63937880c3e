// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrHex is returned for a string that does not match the hex color
// grammar.
var ErrHex = errors.New("colors: invalid hex color")

// hexRe matches an optional # followed by 3, 4, 6, or 8 hex digits.
var hexRe = regexp.MustCompile(`^#?([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// IsHexColor reports whether s matches the hex color grammar.
func IsHexColor(s string) bool {
	return hexRe.MatchString(s)
}

// FromHex parses a hex color string: #RGB, #RGBA, #RRGGBB, or
// #RRGGBBAA, with the # optional. Three and four digit forms expand
// each digit by duplication.
func FromHex(hex string) (RGB, error) {
	m := hexRe.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrHex, hex)
	}
	digits := m[1]
	if len(digits) <= 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}
	comp := func(i int) float64 {
		v, _ := strconv.ParseUint(digits[i:i+2], 16, 8)
		return float64(v) / 255
	}
	c := RGB{R: comp(0), G: comp(2), B: comp(4), A: 1}
	if len(digits) == 8 {
		c.A = comp(6)
	}
	return c, nil
}

// MustHex is [FromHex] for known-good constants; it panics on a parse
// error.
func MustHex(hex string) RGB {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as an uppercase hex string with a leading #.
// The alpha pair is dropped when alpha is 1.
func (c RGB) Hex() string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	a := int(math.Round(c.A * 255))
	if a == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}
