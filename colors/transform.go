// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorimetry/num"

// Spin returns a color with the hue rotated by the given amount in
// degrees, wrapping around 360. Saturation and lightness are kept.
func Spin(c RGB, deg float64) RGB {
	h := c.HSL()
	h.H = wrapHue(h.H + deg)
	return h.RGB().WithAlpha(c.A)
}

// Lighten returns a color that is lighter by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Lighten(c RGB, amount float64) RGB {
	h := c.HSL()
	h.L = num.Clamp01(h.L + amount/100)
	return h.RGB().WithAlpha(c.A)
}

// Darken returns a color that is darker by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Darken(c RGB, amount float64) RGB {
	h := c.HSL()
	h.L = num.Clamp01(h.L - amount/100)
	return h.RGB().WithAlpha(c.A)
}

// Saturate returns a color that is more saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Saturate(c RGB, amount float64) RGB {
	h := c.HSL()
	h.S = num.Clamp01(h.S + amount/100)
	return h.RGB().WithAlpha(c.A)
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Desaturate(c RGB, amount float64) RGB {
	h := c.HSL()
	h.S = num.Clamp01(h.S - amount/100)
	return h.RGB().WithAlpha(c.A)
}
