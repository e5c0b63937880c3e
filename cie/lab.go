// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the CIE 1931/1964 observer datasets and the
// scalar conversions between XYZ and the perceptual CIE spaces
// (L*a*b*, L*u*v*, Yxy, and their cylindrical forms).
package cie

import (
	"math"

	"cogentcore.org/colorimetry/math3"
)

// CIE 2004 constants for the L* transfer function.
const (
	// Kappa is the L* slope constant 24389/27.
	Kappa = 24389.0 / 27

	// Epsilon is the L* branch threshold 216/24389.
	Epsilon = 216.0 / 24389
)

// LABCompress applies the cube-root compression used in the
// XYZ to L*a*b* conversion, with the linear branch below [Epsilon].
func LABCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(f float64) float64 {
	if t := f * f * f; t > Epsilon {
		return t
	}
	return (116*f - 16) / Kappa
}

// XYZToLAB converts XYZ tristimulus values to L*a*b* relative to the
// given reference white.
func XYZToLAB(x, y, z float64, wp math3.Vector3) (l, a, b float64) {
	fx := LABCompress(x / wp.X)
	fy := LABCompress(y / wp.Y)
	fz := LABCompress(z / wp.Z)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// LABToXYZ converts L*a*b* to XYZ tristimulus values relative to the
// given reference white. The Y branch is chosen on L directly, so
// lightness above the epsilon knee never routes through the linear
// segment.
func LABToXYZ(l, a, b float64, wp math3.Vector3) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	var yr float64
	if l > Kappa*Epsilon {
		yr = fy * fy * fy
	} else {
		yr = l / Kappa
	}
	return LABUncompress(fx) * wp.X, yr * wp.Y, LABUncompress(fz) * wp.Z
}

// YToL converts a relative luminance (reference white = 1)
// to L* lightness (0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}

// LToY converts L* lightness (0-100) to relative luminance
// (reference white = 1).
func LToY(l float64) float64 {
	if l > Kappa*Epsilon {
		f := (l + 16) / 116
		return f * f * f
	}
	return l / Kappa
}
