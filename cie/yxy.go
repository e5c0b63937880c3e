// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// XYZToYxy converts XYZ tristimulus values to Yxy luminance plus
// chromaticity. For black (X + Y + Z = 0) the chromaticity is
// undefined, and x = y = 0 is returned.
func XYZToYxy(x, y, z float64) (yy, cx, cy float64) {
	sum := x + y + z
	if sum == 0 {
		return y, 0, 0
	}
	return y, x / sum, y / sum
}

// YxyToXYZ converts Yxy luminance plus chromaticity to XYZ tristimulus
// values. A zero y chromaticity maps to black.
func YxyToXYZ(yy, cx, cy float64) (x, y, z float64) {
	if cy == 0 {
		return 0, 0, 0
	}
	return cx * yy / cy, yy, (1 - cx - cy) * yy / cy
}
