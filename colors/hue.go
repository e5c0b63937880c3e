// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// wrapHue folds a hue angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// roundHue rounds a hue angle to a whole number of degrees in [0, 360).
// The hue of the polar gamma-domain models (HSV, HSL, HWB, HSI) is
// quantized to integer degrees; a grayscale input always yields 0.
func roundHue(h float64) float64 {
	return math.Mod(math.Round(wrapHue(h)), 360)
}

// rgbHue returns the hexagonal hue of the given channels in degrees
// (unrounded), along with the channel max and the chroma range.
// Grayscale yields hue 0.
func rgbHue(r, g, b float64) (hue, mx, chroma float64) {
	mx = math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	chroma = mx - mn
	if chroma == 0 {
		return 0, mx, 0
	}
	switch mx {
	case r:
		hue = math.Mod((g-b)/chroma, 6)
	case g:
		hue = (b-r)/chroma + 2
	default:
		hue = (r-g)/chroma + 4
	}
	return wrapHue(hue * 60), mx, chroma
}

// hueToRGB returns the pure fully-saturated color of the given hue,
// i.e. the RGB cube surface point at chroma 1 with zero offset. The hue
// is wrapped into [0, 360) before the segment is selected, so h = 360
// is safe.
func hueToRGB(h float64) (r, g, b float64) {
	h = wrapHue(h) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch int(h) {
	case 0:
		return 1, x, 0
	case 1:
		return x, 1, 0
	case 2:
		return 0, 1, x
	case 3:
		return 0, x, 1
	case 4:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}
