// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorimetry/cie"
)

// Luv is a CIE L*u*v* color.
type Luv struct {

	// L is the lightness.
	L float64

	// U, V are the chromaticity coordinates u*, v*.
	U, V float64

	// Alpha is the alpha in [0, 1].
	Alpha float64

	// White identifies the reference white; the zero value means D65.
	White cie.Meta
}

// XYZ converts the color to XYZ tristimulus values
// relative to its reference white.
func (c Luv) XYZ() (XYZ, error) {
	wp, err := cie.Whitepoint(c.White.OrDefault())
	if err != nil {
		return XYZ{}, err
	}
	x, y, z := cie.LUVToXYZ(c.L, c.U, c.V, wp)
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, White: c.White.OrDefault()}, nil
}

// RGB converts the color to gamma-encoded sRGB.
func (c Luv) RGB() (RGB, error) {
	xyz, err := c.XYZ()
	if err != nil {
		return RGB{}, err
	}
	return xyz.RGB("")
}

// LCHuv converts the color to its cylindrical form.
func (c Luv) LCHuv() LCHuv {
	l, ch, h := cie.LABToLCH(c.L, c.U, c.V)
	return LCHuv{L: l, C: ch, H: h, Alpha: c.Alpha, White: c.White}
}

// LCHuv is the cylindrical form of [Luv].
type LCHuv struct {

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

// Luv converts the color back to cartesian form.
func (c LCHuv) Luv() Luv {
	l, u, v := cie.LCHToLAB(c.L, c.C, c.H)
	return Luv{L: l, U: u, V: v, Alpha: c.Alpha, White: c.White}
}

// WithHue returns the color with the hue rotated by deg degrees,
// wrapped into [0, 360).
func (c LCHuv) WithHue(deg float64) LCHuv {
	c.H = wrapHue(c.H + deg)
	return c
}
