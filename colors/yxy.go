// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorimetry/cie"

// Yxy is a CIE Yxy color: luminance Y plus the xy chromaticity
// coordinates.
type Yxy struct {

	// Y is the luminance, reference white = 1.
	Y float64

	// Xc, Yc are the x, y chromaticity coordinates.
	Xc, Yc float64

	// Alpha is the alpha in [0, 1].
	Alpha float64

	// White identifies the reference white; the zero value means D65.
	White cie.Meta
}

// XYZ converts the color to XYZ tristimulus values.
func (c Yxy) XYZ() XYZ {
	x, y, z := cie.YxyToXYZ(c.Y, c.Xc, c.Yc)
	return XYZ{X: x, Y: y, Z: z, Alpha: c.Alpha, White: c.White.OrDefault()}
}

// RGB converts the color to gamma-encoded sRGB.
func (c Yxy) RGB() (RGB, error) {
	return c.XYZ().RGB("")
}
