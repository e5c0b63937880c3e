// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math"
	"testing"

	"cogentcore.org/colorimetry/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexes(p Palette) []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

func TestNewColor(t *testing.T) {
	p, err := NewColor("#2b949e")
	require.NoError(t, err)
	assert.Equal(t, 7, p.BaseColorIndex)
	assert.Len(t, p.Colors, 14)
	assert.Equal(t, "#2B949E", p.Colors[p.BaseColorIndex].Hex())

	want := []string{
		"#E1F7F8", "#B5EAEE", "#86DCE3", "#5BCED8", "#41C3D0",
		"#33B9C9", "#30A9B7", "#2B949E", "#268087", "#1E5D5D",
		"#90FCF7", "#51FBF3", "#43E1F2", "#37B4C8",
	}
	assert.Equal(t, want, hexes(p))
}

// TestNewColorExactSeed feeds a seed that is itself a golden tone: the
// synthesized palette reproduces that golden palette.
func TestNewColorExactSeed(t *testing.T) {
	p, err := NewColor("#E91E63") // pink 500
	require.NoError(t, err)
	assert.Equal(t, 5, p.BaseColorIndex)
	assert.Equal(t, "#E91E63", p.Colors[5].Hex())
	assert.Equal(t, []string{"#FCE4EC", "#F8BBD0", "#F48FB1", "#F06292", "#EC407A"},
		hexes(p)[:5])
}

func TestNewColorFinite(t *testing.T) {
	for _, seed := range []string{"#2b949e", "#E91E63", "#112233", "#FACADE", "#00FF00"} {
		p, err := NewColor(seed)
		require.NoError(t, err)
		assert.Len(t, p.Colors, 14)
		for _, c := range p.Colors {
			for _, v := range []float64{c.R, c.G, c.B, c.A} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
		assert.Equal(t, colors.MustHex(seed).Hex(), p.Colors[p.BaseColorIndex].Hex())
	}
}

func TestNewLight(t *testing.T) {
	p, err := NewLight("#2b949e")
	require.NoError(t, err)
	assert.Equal(t, 9, p.BaseColorIndex)
	assert.Len(t, p.Colors, 10)
	want := []string{
		"#ADFFFF", "#A4FFFF", "#9AF9FF", "#91F0FA", "#89E9F3",
		"#7CDBE5", "#72D1DC", "#5DBEC8", "#45A8B2", "#2B949E",
	}
	assert.Equal(t, want, hexes(p))
}

func TestNewDark(t *testing.T) {
	p, err := NewDark("#2b949e")
	require.NoError(t, err)
	assert.Equal(t, 0, p.BaseColorIndex)
	assert.Len(t, p.Colors, 10)
	want := []string{
		"#2B949E", "#24909A", "#1D8B95", "#138791", "#06828C",
		"#007E88", "#007983", "#00727C", "#006B75", "#5A5483",
	}
	assert.Equal(t, want, hexes(p))
}

func TestNewBadHex(t *testing.T) {
	_, err := NewColor("#12345")
	assert.ErrorIs(t, err, colors.ErrHex)
}

func TestByRule(t *testing.T) {
	ps, err := ByRule("#2b949e", Tetradic)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for _, p := range ps {
		assert.Len(t, p.Colors, 14)
	}
	assert.Equal(t, "#2B949E", ps[0].Colors[ps[0].BaseColorIndex].Hex())
	assert.Equal(t, "#6E2B9E", ps[1].Colors[ps[1].BaseColorIndex].Hex())
	assert.Equal(t, "#9E352B", ps[2].Colors[ps[2].BaseColorIndex].Hex())
	assert.Equal(t, "#5B9E2B", ps[3].Colors[ps[3].BaseColorIndex].Hex())
}

func TestByRuleCounts(t *testing.T) {
	counts := map[Rule]int{
		Mono:               1,
		Complementary:      2,
		SplitComplementary: 3,
		Analogous:          3,
		Triadic:            3,
		Tetradic:           4,
	}
	for rule, n := range counts {
		ps, err := ByRule("#2b949e", rule)
		require.NoError(t, err)
		assert.Len(t, ps, n, string(rule))
	}

	// unknown rules yield the base palette alone
	ps, err := ByRule("#2b949e", Rule("sepia"))
	require.NoError(t, err)
	assert.Len(t, ps, 1)
}

func TestToneName(t *testing.T) {
	name, err := ToneName(0)
	require.NoError(t, err)
	assert.Equal(t, "50", name)

	name, err = ToneName(9)
	require.NoError(t, err)
	assert.Equal(t, "900", name)

	name, err = ToneName(AccentOffset)
	require.NoError(t, err)
	assert.Equal(t, "A100", name)

	name, err = ToneName(13)
	require.NoError(t, err)
	assert.Equal(t, "A700", name)

	_, err = ToneName(-1)
	assert.Error(t, err)
	_, err = ToneName(14)
	assert.Error(t, err)
}

func TestColorTone(t *testing.T) {
	s, err := ColorTone("light")
	require.NoError(t, err)
	assert.Equal(t, "light", s)

	s, err = ColorTone("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", s)

	s, err = ColorTone("#2B949E")
	require.NoError(t, err)
	assert.Equal(t, "dark", s)

	s, err = ColorTone(colors.MustHex("#FFEB3B"))
	require.NoError(t, err)
	assert.Equal(t, "light", s)

	_, err = ColorTone(42)
	assert.Error(t, err)
}

func TestGoldenData(t *testing.T) {
	assert.Len(t, GoldenPalettes, 20)
	for _, p := range GoldenPalettes {
		assert.Len(t, p, 14)
	}
	assert.Len(t, LightPalette, 10)
	assert.Len(t, DarkPalette, 10)
	for i, sd := range LightnessCompensation {
		assert.Greater(t, sd, 0.0, "lightness compensation %d", i)
	}
	for i, sd := range ChromaCompensation {
		assert.Greater(t, sd, 0.0, "chroma compensation %d", i)
	}
}
