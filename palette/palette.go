// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette synthesizes harmonious tonal palettes around a seed
// color. The seed is matched against a set of golden reference
// palettes in L*a*b* space by the CIE 2000 color difference, and the
// winning palette is reshaped around the seed by propagating the
// lightness and chroma deltas through the cylindrical LCHab form.
package palette

import (
	"fmt"
	"strings"

	"cogentcore.org/colorimetry/colors"
	"cogentcore.org/colorimetry/deltae"
)

// AccentOffset is the index of the first accent tone (A100) in a full
// 14-tone palette.
const AccentOffset = 10

// lightnessStep is the minimum lightness separation enforced between
// consecutive tones.
const lightnessStep = 1.7

// ToneNames are the ordered names of the tones of a full palette.
var ToneNames = [14]string{
	"50", "100", "200", "300", "400",
	"500", "600", "700", "800", "900",
	"A100", "A200", "A400", "A700",
}

// ToneName returns the name of the tone at the given palette index.
func ToneName(i int) (string, error) {
	if i < 0 || i >= len(ToneNames) {
		return "", fmt.Errorf("palette: tone index %d out of range", i)
	}
	return ToneNames[i], nil
}

// Palette is a synthesized tonal palette. The color at BaseColorIndex
// is the seed itself.
type Palette struct {

	// BaseColorIndex is the tone slot the seed occupies.
	BaseColorIndex int

	// Colors are the tones, light to dark, then accents for a full
	// palette.
	Colors []colors.RGB
}

// New synthesizes a palette around the seed hex color from the given
// reference palettes and the lightness and chroma compensation
// vectors, which must be at least as long as the longest reference
// palette. Reference colors with a zero alpha are treated as opaque.
func New(seedHex string, refs [][]colors.Lab, lc, cc []float64) (Palette, error) {
	if len(refs) == 0 {
		return Palette{}, fmt.Errorf("palette: no reference palettes")
	}
	seed, err := colors.FromHex(seedHex)
	if err != nil {
		return Palette{}, err
	}
	seedLab, err := seed.Lab()
	if err != nil {
		return Palette{}, err
	}
	seedLCH := seedLab.LCHab()

	// nearest golden color across all reference palettes,
	// first encountered wins ties
	bestD := 0.0
	bestP, bestI := -1, 0
	for pi, p := range refs {
		for ci, ref := range p {
			d := deltae.CIEDE2000(ref, seedLab)
			if bestP < 0 || d < bestD {
				bestD, bestP, bestI = d, pi, ci
			}
		}
	}
	ref := make([]colors.LCHab, len(refs[bestP]))
	for i, c := range refs[bestP] {
		ref[i] = c.LCHab()
	}

	dL := ref[bestI].L - seedLCH.L
	dC := ref[bestI].C - seedLCH.C
	dH := ref[bestI].H - seedLCH.H
	midChroma := len(ref) > 5 && ref[5].C < 30

	maxLightness := 100.0
	out := make([]colors.RGB, len(ref))
	for i := range ref {
		if i == bestI {
			out[i] = seed
			maxLightness = max(seedLCH.L-lightnessStep, 0)
			continue
		}
		if i == AccentOffset {
			// accents restart the descending lightness walk
			maxLightness = 100
		}
		hue := wrap360(ref[i].H - dH)
		lightness := ref[i].L - (lc[i]/lc[bestI])*dL
		lightness = min(lightness, maxLightness)
		lightness = min(max(lightness, 0), 100)
		var chroma float64
		if midChroma {
			chroma = ref[i].C - dC
		} else {
			chroma = ref[i].C - dC*min(cc[i]/cc[bestI], 1.25)
		}
		chroma = max(chroma, 0)

		alpha := ref[i].Alpha
		if alpha == 0 {
			alpha = 1
		}
		tone := colors.LCHab{L: lightness, C: chroma, H: hue, Alpha: alpha}
		rgb, err := tone.RGB()
		if err != nil {
			return Palette{}, err
		}
		out[i] = rgb
		maxLightness = max(lightness-lightnessStep, 0)
	}
	return Palette{BaseColorIndex: bestI, Colors: out}, nil
}

// NewColor synthesizes the full 14-tone palette for the seed from the
// golden references.
func NewColor(seedHex string) (Palette, error) {
	refs := make([][]colors.Lab, len(GoldenPalettes))
	for i := range GoldenPalettes {
		refs[i] = GoldenPalettes[i][:]
	}
	return New(seedHex, refs, LightnessCompensation[:], ChromaCompensation[:])
}

// NewLight synthesizes the 10-tone light palette for the seed.
func NewLight(seedHex string) (Palette, error) {
	return New(seedHex, [][]colors.Lab{LightPalette[:]},
		LightnessCompensation[:10], ChromaCompensationLight[:])
}

// NewDark synthesizes the 10-tone dark palette for the seed.
func NewDark(seedHex string) (Palette, error) {
	return New(seedHex, [][]colors.Lab{DarkPalette[:]},
		LightnessCompensation[:10], ChromaCompensation[:10])
}

// ColorTone classifies a synthesized color as "light" or "dark" using
// the default minimum contrast; the literal strings "light" and "dark"
// pass through.
func ColorTone(c any) (string, error) {
	switch v := c.(type) {
	case string:
		s := strings.ToLower(v)
		if s == "light" || s == "dark" {
			return s, nil
		}
		rgb, err := colors.FromHex(v)
		if err != nil {
			return "", err
		}
		return colors.ToneOf(rgb).String(), nil
	case colors.RGB:
		return colors.ToneOf(v).String(), nil
	default:
		return "", fmt.Errorf("palette: cannot classify tone of %T", c)
	}
}

func wrap360(h float64) float64 {
	h += 360
	for h >= 360 {
		h -= 360
	}
	for h < 0 {
		h += 360
	}
	return h
}
