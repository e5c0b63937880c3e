// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorimetry/space"
)

// MinContrast is the default minimum contrast ratio for tone
// classification, the WCAG AA threshold for large text.
const MinContrast = 3.1

// Luminance returns the WCAG relative luminance of the color:
// the Y row of the sRGB to XYZ transform applied to the
// linearized channels.
func Luminance(c RGB) float64 {
	return 0.2126*space.SRGBToLinearComp(c.R) +
		0.7152*space.SRGBToLinearComp(c.G) +
		0.0722*space.SRGBToLinearComp(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between the two
// colors, in [1, 21]. The ratio is symmetric.
func ContrastRatio(a, b RGB) float64 {
	ya, yb := Luminance(a), Luminance(b)
	return (math.Max(ya, yb) + 0.05) / (math.Min(ya, yb) + 0.05)
}

// Tone classifies a color as light or dark.
type Tone int

const (
	// ToneLight is a light color: dark content reads on top of it.
	ToneLight Tone = iota

	// ToneDark is a dark color: light content reads on top of it.
	ToneDark
)

func (t Tone) String() string {
	if t == ToneDark {
		return "dark"
	}
	return "light"
}

// ToneOf classifies the color using the default [MinContrast].
func ToneOf(c RGB) Tone {
	return ToneOfContrast(c, MinContrast)
}

// ToneOfContrast classifies the color as dark when white contrasts
// against it at least minContrast, or when white contrasts against it
// no worse than black does; otherwise it is light.
func ToneOfContrast(c RGB, minContrast float64) Tone {
	white := RGB{R: 1, G: 1, B: 1, A: 1}
	black := RGB{A: 1}
	vsWhite := ContrastRatio(c, white)
	vsBlack := ContrastRatio(c, black)
	if vsWhite >= minContrast || vsBlack <= vsWhite {
		return ToneDark
	}
	return ToneLight
}
