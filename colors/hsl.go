// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// HSL is a hue, saturation, lightness color. Hue is in whole degrees
// [0, 360); saturation and lightness are in [0, 1].
type HSL struct {

	// H is the hue angle in degrees, in [0, 360).
	H float64

	// S is the saturation in [0, 1].
	S float64

	// L is the lightness in [0, 1].
	L float64

	// A is the alpha in [0, 1].
	A float64
}

// FromHSL returns an sRGB color from picker-style HSL inputs:
// hue in degrees, saturation and lightness as percentages (0-100).
func FromHSL(h, sPct, lPct, alpha float64) RGB {
	hsl := HSL{H: wrapHue(h), S: sPct / 100, L: lPct / 100, A: alpha}
	return hsl.RGB()
}

// HSL converts the color to hue, saturation, lightness.
// Grayscale yields hue 0 and saturation 0.
func (c RGB) HSL() HSL {
	hue, mx, chroma := rgbHue(c.R, c.G, c.B)
	l := mx - chroma/2
	s := 0.0
	if l > 0 && l < 1 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return HSL{H: roundHue(hue), S: s, L: l, A: c.A}
}

// RGB converts the color to gamma-encoded sRGB.
func (c HSL) RGB() RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	v := c.L + chroma/2
	s := 0.0
	if v > 0 {
		s = 2 * (1 - c.L/v)
	}
	return HSV{H: c.H, S: s, V: v, A: c.A}.RGB()
}

// HSV converts the color to hue, saturation, value.
func (c HSL) HSV() HSV {
	return c.RGB().HSV()
}
