// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/colorimetry/math3"

// Tristimulus values of the common reference whites (ASTM E308,
// 2 degree observer), for direct use without table resolution.
var (
	WhiteD65 = math3.Vector3{X: 0.95047, Y: 1, Z: 1.08883}
	WhiteD50 = math3.Vector3{X: 0.96422, Y: 1, Z: 0.82521}
	WhiteE   = math3.Vector3{X: 1, Y: 1, Z: 1}
)

// MetaD65 identifies the D65 whitepoint by ASTM E308 lookup, the
// reference white carried by colors converted through the built-in
// working spaces.
var MetaD65 = Meta{Illuminant: "D65", Method: MethodASTME308}

// OrDefault returns m, or the ASTM D65 metadata if m is the zero value,
// so that zero-valued color types have a well-defined reference white.
func (m Meta) OrDefault() Meta {
	if m.Illuminant == "" && m.XY == nil {
		return MetaD65
	}
	return m
}
