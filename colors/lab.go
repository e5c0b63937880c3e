// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorimetry/cie"
)

// Lab is a CIE L*a*b* color. L is lightness (0 to 100 and above for
// HDR); A and B are the opponent coordinates, roughly in [-128, 127].
type Lab struct {

	// L is the lightness.
	L float64

	// A is the green-red opponent coordinate a*.
	A float64

	// B is the blue-yellow opponent coordinate b*.
	B float64

	// Alpha is the alpha in [0, 1].
	Alpha float64

	// White identifies the reference white; the zero value means D65.
	White cie.Meta
}

// XYZ converts the color to XYZ tristimulus values
// relative to its reference white.
func (c Lab) XYZ() (XYZ, error) {
	wp, err := cie.Whitepoint(c.White.OrDefault())
	if err != nil {
		return XYZ{}, err
	}
	x, y, z := cie.LABToXYZ(c.L, c.A, c.B, wp)
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, White: c.White.OrDefault()}, nil
}

// RGB converts the color to gamma-encoded sRGB.
func (c Lab) RGB() (RGB, error) {
	xyz, err := c.XYZ()
	if err != nil {
		return RGB{}, err
	}
	return xyz.RGB("")
}

// LCHab converts the color to its cylindrical form.
func (c Lab) LCHab() LCHab {
	l, ch, h := cie.LABToLCH(c.L, c.A, c.B)
	return LCHab{L: l, C: ch, H: h, Alpha: c.Alpha, White: c.White}
}

// LCHab is the cylindrical form of [Lab]: lightness, chroma, and hue
// in degrees [0, 360).
type LCHab struct {

	// L is the lightness.
	L float64

	// C is the chroma, >= 0.
	C float64

	// H is the hue angle in degrees, in [0, 360).
	H float64

	// Alpha is the alpha in [0, 1].
	Alpha float64

	// White identifies the reference white; the zero value means D65.
	White cie.Meta
}

// Lab converts the color back to cartesian form.
func (c LCHab) Lab() Lab {
	l, a, b := cie.LCHToLAB(c.L, c.C, c.H)
	return Lab{L: l, A: a, B: b, Alpha: c.Alpha, White: c.White}
}

// RGB converts the color to gamma-encoded sRGB.
func (c LCHab) RGB() (RGB, error) {
	return c.Lab().RGB()
}

// WithHue returns the color with the hue rotated by deg degrees,
// wrapped into [0, 360).
func (c LCHab) WithHue(deg float64) LCHab {
	c.H = wrapHue(c.H + deg)
	return c
}
