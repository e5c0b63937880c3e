// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorimetry/adapt"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/math3"
	"cogentcore.org/colorimetry/space"
)

// XYZ is a CIE XYZ tristimulus color, normalized so the reference
// white has Y = 1.
type XYZ struct {

	// X, Y, Z are the tristimulus values.
	X, Y, Z float64

	// Alpha is the alpha in [0, 1].
	Alpha float64

	// White identifies the reference white. The zero value means
	// D65 (ASTM E308, 2 degree observer).
	White cie.Meta
}

// Vector returns the tristimulus values as a vector.
func (c XYZ) Vector() math3.Vector3 {
	return math3.Vector3{X: c.X, Y: c.Y, Z: c.Z}
}

// whitepoint resolves the reference white tristimulus values.
func (c XYZ) whitepoint() (math3.Vector3, error) {
	return cie.Whitepoint(c.White.OrDefault())
}

// Adapt chromatically adapts the color to the given destination
// whitepoint under the named method (default Bradford when empty).
func (c XYZ) Adapt(dst cie.Meta, method string) (XYZ, error) {
	if method == "" {
		method = adapt.Bradford
	}
	v, err := adapt.Adapt(c.Vector(), c.White.OrDefault(), dst, method)
	if err != nil {
		return XYZ{}, err
	}
	return XYZ{X: v.X, Y: v.Y, Z: v.Z, Alpha: c.Alpha, White: dst}, nil
}

// RGB converts the color to gamma-encoded RGB in the named working
// space (sRGB when empty), chromatically adapting from the color's
// reference white to the space's whitepoint when they differ.
// Channels are clamped to [0, 1] at the gamma output.
func (c XYZ) RGB(spaceName string) (RGB, error) {
	if spaceName == "" {
		spaceName = space.SRGB
	}
	sp, err := space.Get(spaceName)
	if err != nil {
		return RGB{}, err
	}
	white := c.White.OrDefault()
	r, g, b, err := sp.ToRGB(c.Vector(), illuminantFor(white, sp.WhiteMeta))
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b, A: c.Alpha, Space: spaceName}, nil
}

// illuminantFor returns the source illuminant name to pass to the
// space conversion: empty when no adaptation is needed.
func illuminantFor(src, dst cie.Meta) string {
	if src.Illuminant == dst.Illuminant && src.Observer == dst.Observer {
		return ""
	}
	return src.Illuminant
}

// Lab converts the color to L*a*b* relative to its reference white.
func (c XYZ) Lab() (Lab, error) {
	wp, err := c.whitepoint()
	if err != nil {
		return Lab{}, err
	}
	l, a, b := cie.XYZToLAB(c.X, c.Y, c.Z, wp)
	return Lab{L: l, A: a, B: b, Alpha: c.Alpha, White: c.White.OrDefault()}, nil
}

// Luv converts the color to L*u*v* relative to its reference white.
func (c XYZ) Luv() (Luv, error) {
	wp, err := c.whitepoint()
	if err != nil {
		return Luv{}, err
	}
	l, u, v := cie.XYZToLUV(c.X, c.Y, c.Z, wp)
	return Luv{L: l, U: u, V: v, Alpha: c.Alpha, White: c.White.OrDefault()}, nil
}

// Yxy converts the color to Yxy luminance plus chromaticity.
func (c XYZ) Yxy() Yxy {
	y, cx, cy := cie.XYZToYxy(c.X, c.Y, c.Z)
	return Yxy{Y: y, Xc: cx, Yc: cy, Alpha: c.Alpha, White: c.White.OrDefault()}
}
