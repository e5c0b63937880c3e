// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae implements the CIE color difference formulas over
// L*a*b* values: ΔE*ab 1976, ΔE*94, ΔE00 per ISO/CIE 11664-6 with the
// Sharma mean-hue formulation, and CMC(l:c).
package deltae

import (
	"math"

	"cogentcore.org/colorimetry/colors"
)

// CIE76 returns the original 1976 color difference:
// the Euclidean distance in L*a*b*.
func CIE76(c1, c2 colors.Lab) float64 {
	dl := c2.L - c1.L
	da := c2.A - c1.A
	db := c2.B - c1.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Application selects the CIE94 weighting constants.
type Application int

const (
	// GraphicArts uses k1 = 0.045, k2 = 0.015, kL = 1.
	GraphicArts Application = iota

	// Textiles uses k1 = 0.048, k2 = 0.014, kL = 2.
	Textiles
)

// CIE94 returns the 1994 color difference with the weighting constants
// of the given application.
func CIE94(c1, c2 colors.Lab, app Application) float64 {
	k1, k2, kl := 0.045, 0.015, 1.0
	if app == Textiles {
		k1, k2, kl = 0.048, 0.014, 2.0
	}
	dl := c1.L - c2.L
	ch1 := math.Hypot(c1.A, c1.B)
	ch2 := math.Hypot(c2.A, c2.B)
	dc := ch1 - ch2
	da := c1.A - c2.A
	db := c1.B - c2.B
	// hue residual; cancellation can leave a tiny negative value
	dhSq := da*da + db*db - dc*dc
	if dhSq < 0 {
		dhSq = 0
	}
	sc := 1 + k1*ch1
	sh := 1 + k2*ch1
	tl := dl / kl
	tc := dc / sc
	return math.Sqrt(tl*tl + tc*tc + dhSq/(sh*sh))
}

// k25Pow7 is 25^7, the chroma normalization constant of ΔE00 and CMC.
const k25Pow7 = 6103515625.0

// lowChroma is the chroma product threshold below which the ΔE00 hue
// terms degenerate: ΔH' is forced to 0 and the mean hue is the plain
// sum h1' + h2'.
const lowChroma = 1e-4

// CIEDE2000 returns the CIE 2000 color difference per ISO/CIE 11664-6,
// using the Sharma, Wu, Dalal formulation of the mean hue. For
// Lab(100, 0, 10) against Lab(100, 0.1, -127.5) it yields
// 41.69699725982907, where the uncorrected variant yields 45.69....
func CIEDE2000(c1, c2 colors.Lab) float64 {
	ch1 := math.Hypot(c1.A, c1.B)
	ch2 := math.Hypot(c2.A, c2.B)
	chMean := (ch1 + ch2) / 2
	cm7 := math.Pow(chMean, 7)
	g := 0.5 * (1 - math.Sqrt(cm7/(cm7+k25Pow7)))

	a1p := c1.A * (1 + g)
	a2p := c2.A * (1 + g)
	c1p := math.Hypot(a1p, c1.B)
	c2p := math.Hypot(a2p, c2.B)
	h1p := hueOf(a1p, c1.B)
	h2p := hueOf(a2p, c2.B)

	dL := c2.L - c1.L
	dC := c2p - c1p

	var dH, hMean float64
	if c1p*c2p < lowChroma {
		dH = 0
		hMean = h1p + h2p
	} else {
		dhp := h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
		dH = 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hMean = (h1p + h2p) / 2
		case h1p+h2p < 360:
			hMean = (h1p + h2p + 360) / 2
		default:
			hMean = (h1p + h2p - 360) / 2
		}
	}

	lMean := (c1.L + c2.L) / 2
	cpMean := (c1p + c2p) / 2

	t := 1 - 0.17*math.Cos(rad(hMean-30)) + 0.24*math.Cos(rad(2*hMean)) +
		0.32*math.Cos(rad(3*hMean+6)) - 0.20*math.Cos(rad(4*hMean-63))
	dTheta := 30 * math.Exp(-((hMean-275)/25)*((hMean-275)/25))
	cp7 := math.Pow(cpMean, 7)
	rc := 2 * math.Sqrt(cp7/(cp7+k25Pow7))
	l50 := (lMean - 50) * (lMean - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cpMean
	sh := 1 + 0.015*cpMean*t
	rt := -rc * math.Sin(rad(2*dTheta))

	tl := dL / sl
	tc := dC / sc
	th := dH / sh
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}

// CMC returns the CMC(l:c) color difference; the standard acceptability
// ratio is l = 2, c = 1. The first color is the reference.
func CMC(ref, sample colors.Lab, l, c float64) float64 {
	ch1 := math.Hypot(ref.A, ref.B)
	ch2 := math.Hypot(sample.A, sample.B)
	h1 := hueOf(ref.A, ref.B)

	dl := ref.L - sample.L
	dc := ch1 - ch2
	da := ref.A - sample.A
	db := ref.B - sample.B
	dhSq := da*da + db*db - dc*dc
	if dhSq < 0 {
		dhSq = 0
	}

	sl := 0.511
	if ref.L >= 16 {
		sl = 0.040975 * ref.L / (1 + 0.01765*ref.L)
	}
	sc := 0.0638*ch1/(1+0.0131*ch1) + 0.638
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(rad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(rad(h1+35)))
	}
	ch4 := ch1 * ch1 * ch1 * ch1
	f := math.Sqrt(ch4 / (ch4 + 1900))
	sh := sc * (f*t + 1 - f)

	tl := dl / (l * sl)
	tc := dc / (c * sc)
	th2 := dhSq / (sh * sh)
	return math.Sqrt(tl*tl + tc*tc + th2)
}

// hueOf returns the hue angle of (a, b) in degrees [0, 360);
// the origin has hue 0.
func hueOf(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
