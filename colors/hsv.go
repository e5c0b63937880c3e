// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// HSV is a hue, saturation, value color. Hue is in whole degrees
// [0, 360); saturation and value are in [0, 1].
type HSV struct {

	// H is the hue angle in degrees, in [0, 360).
	H float64

	// S is the saturation in [0, 1].
	S float64

	// V is the value (brightness) in [0, 1].
	V float64

	// A is the alpha in [0, 1].
	A float64
}

// FromHSV returns an sRGB color from picker-style HSV inputs:
// hue in degrees, saturation and value as percentages (0-100).
func FromHSV(h, sPct, vPct, alpha float64) RGB {
	hsv := HSV{H: wrapHue(h), S: sPct / 100, V: vPct / 100, A: alpha}
	return hsv.RGB()
}

// HSV converts the color to hue, saturation, value.
// Grayscale yields hue 0 and saturation 0.
func (c RGB) HSV() HSV {
	hue, mx, chroma := rgbHue(c.R, c.G, c.B)
	s := 0.0
	if mx > 0 {
		s = chroma / mx
	}
	return HSV{H: roundHue(hue), S: s, V: mx, A: c.A}
}

// RGB converts the color to gamma-encoded sRGB.
func (c HSV) RGB() RGB {
	h := wrapHue(c.H) / 60
	chroma := c.V * c.S
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := c.V - chroma
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{R: r + m, G: g + m, B: b + m, A: c.A}
}

// HSL converts the color to hue, saturation, lightness.
func (c HSV) HSL() HSL {
	return c.RGB().HSL()
}

// HWB converts the color to hue, whiteness, blackness.
func (c HSV) HWB() HWB {
	return HWB{H: c.H, W: (1 - c.S) * c.V, B: 1 - c.V, A: c.A}
}
