// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/colorimetry/colors"

// Rule is a named harmony rule: a pattern of hue offsets relating a
// base color to its companions.
type Rule string

const (
	Mono               Rule = "mono"
	Complementary      Rule = "complementary"
	SplitComplementary Rule = "splitComplementary"
	Analogous          Rule = "analogous"
	Triadic            Rule = "triadic"
	Tetradic           Rule = "tetradic"
)

// ruleOffsets maps each rule to the hue offsets, in degrees, added to
// the base hue. The base palette itself is always emitted first.
var ruleOffsets = map[Rule][]float64{
	Mono:               {},
	Complementary:      {180},
	SplitComplementary: {150, -150},
	Analogous:          {30, -30},
	Triadic:            {120, -120},
	Tetradic:           {90, 180, 270},
}

// ByRule synthesizes one full palette per color of the harmony rule:
// first the palette of the seed itself, then one per hue offset, each
// built from the seed rotated in HSL. An unknown rule yields the base
// palette alone.
func ByRule(seedHex string, rule Rule) ([]Palette, error) {
	base, err := NewColor(seedHex)
	if err != nil {
		return nil, err
	}
	out := []Palette{base}
	seed, err := colors.FromHex(seedHex)
	if err != nil {
		return nil, err
	}
	for _, off := range ruleOffsets[rule] {
		p, err := NewColor(colors.Spin(seed, off).Hex())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
