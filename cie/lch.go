// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// LABToLCH converts the cartesian a, b opponent coordinates to the
// cylindrical chroma and hue form. The hue is atan2(b, a) in degrees,
// folded into [0, 360). The same conversion serves L*u*v*.
func LABToLCH(l, a, b float64) (ll, c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// LCHToLAB converts cylindrical chroma and hue back to cartesian
// a, b coordinates.
func LCHToLAB(l, c, h float64) (ll, a, b float64) {
	r := h * math.Pi / 180
	return l, c * math.Cos(r), c * math.Sin(r)
}
