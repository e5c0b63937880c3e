// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import "math"

// The EOTF / OETF pairs of the built-in working spaces. Every function
// is extended as an odd function across zero, sign(v) * f(|v|), so that
// out-of-gamut negative channel values survive a round-trip.

// oddExt wraps f as an odd function.
func oddExt(f func(float64) float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < 0 {
			return -f(-v)
		}
		return f(v)
	}
}

// SRGBToLinearComp converts one gamma-encoded sRGB component to linear,
// with the piecewise split at 0.04045.
func SRGBToLinearComp(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts one linear component to gamma-encoded
// sRGB, with the piecewise split at 0.0031308.
func SRGBFromLinearComp(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// Rec. 2020 transfer constants per ITU-R BT.2020-2 at double precision.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020ToLinearComp(v float64) float64 {
	if v < rec2020Beta*4.5 {
		return v / 4.5
	}
	return math.Pow((v+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
}

func rec2020FromLinearComp(v float64) float64 {
	if v < rec2020Beta {
		return 4.5 * v
	}
	return rec2020Alpha*math.Pow(v, 0.45) - (rec2020Alpha - 1)
}

// Rec. 709 uses the same curve shape with the original
// three-decimal constants.
const (
	rec709Alpha = 1.099
	rec709Beta  = 0.018
)

func rec709ToLinearComp(v float64) float64 {
	if v < rec709Beta*4.5 {
		return v / 4.5
	}
	return math.Pow((v+rec709Alpha-1)/rec709Alpha, 1/0.45)
}

func rec709FromLinearComp(v float64) float64 {
	if v < rec709Beta {
		return 4.5 * v
	}
	return rec709Alpha*math.Pow(v, 0.45) - (rec709Alpha - 1)
}

// ProPhoto (ROMM) uses a 1.8 power law with a 1/512 linear knee.
const prophotoEt = 1.0 / 512

func prophotoToLinearComp(v float64) float64 {
	if v < prophotoEt*16 {
		return v / 16
	}
	return math.Pow(v, 1.8)
}

func prophotoFromLinearComp(v float64) float64 {
	if v < prophotoEt {
		return 16 * v
	}
	return math.Pow(v, 1/1.8)
}

// gammaPow returns a pure power-law EOTF/OETF pair for the given
// decoding exponent.
func gammaPow(exp float64) (toLinear, toGamma func(float64) float64) {
	toLinear = oddExt(func(v float64) float64 { return math.Pow(v, exp) })
	toGamma = oddExt(func(v float64) float64 { return math.Pow(v, 1/exp) })
	return toLinear, toGamma
}
