// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// HWB is a hue, whiteness, blackness color. Hue is in whole degrees
// [0, 360); whiteness and blackness are in [0, 1]. When w + b >= 1 the
// color collapses to the gray w / (w + b).
type HWB struct {

	// H is the hue angle in degrees, in [0, 360).
	H float64

	// W is the whiteness in [0, 1].
	W float64

	// B is the blackness in [0, 1].
	B float64

	// A is the alpha in [0, 1].
	A float64
}

// HWB converts the color to hue, whiteness, blackness.
func (c RGB) HWB() HWB {
	hsv := c.HSV()
	return HWB{H: hsv.H, W: (1 - hsv.S) * hsv.V, B: 1 - hsv.V, A: c.A}
}

// RGB converts the color to gamma-encoded sRGB. Whiteness is applied
// once: each pure-hue channel is scaled by 1 - w - b and offset by w.
func (c HWB) RGB() RGB {
	if c.W+c.B >= 1 {
		gray := c.W / (c.W + c.B)
		return RGB{R: gray, G: gray, B: gray, A: c.A}
	}
	r, g, b := hueToRGB(c.H)
	scale := 1 - c.W - c.B
	return RGB{
		R: r*scale + c.W,
		G: g*scale + c.W,
		B: b*scale + c.W,
		A: c.A,
	}
}

// HSV converts the color to hue, saturation, value.
func (c HWB) HSV() HSV {
	return c.RGB().HSV()
}
