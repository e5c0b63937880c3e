// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/colorimetry/math3"

// uvPrime returns the u', v' chromaticity coordinates of the given
// tristimulus values. Black (all zero) maps to u' = v' = 0.
func uvPrime(x, y, z float64) (up, vp float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// XYZToLUV converts XYZ tristimulus values to L*u*v* relative to the
// given reference white.
func XYZToLUV(x, y, z float64, wp math3.Vector3) (l, u, v float64) {
	up, vp := uvPrime(x, y, z)
	upn, vpn := uvPrime(wp.X, wp.Y, wp.Z)
	l = YToL(y / wp.Y)
	u = 13 * l * (up - upn)
	v = 13 * l * (vp - vpn)
	return l, u, v
}

// LUVToXYZ converts L*u*v* to XYZ tristimulus values relative to the
// given reference white. L = 0 maps to black.
func LUVToXYZ(l, u, v float64, wp math3.Vector3) (x, y, z float64) {
	if l == 0 {
		return 0, 0, 0
	}
	upn, vpn := uvPrime(wp.X, wp.Y, wp.Z)
	up := u/(13*l) + upn
	vp := v/(13*l) + vpn
	y = LToY(l) * wp.Y
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return x, y, z
}
