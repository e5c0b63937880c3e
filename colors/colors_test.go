// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	c, err := NewRGB(0.2, 0.3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0.2, G: 0.3, B: 0.5, A: 1}, c)

	_, err = NewRGB(1.2, 0, 0)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewRGB(0, -0.1, 0)
	assert.ErrorIs(t, err, ErrRange)

	_, err = FromRGB255(43, 148, 158, 1)
	require.NoError(t, err)
	_, err = FromRGB255(256, 0, 0, 1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestHex(t *testing.T) {
	c, err := FromHex("#1A2")
	require.NoError(t, err)
	assert.Equal(t, "#11AA22", c.Hex())

	c, err = FromHex("1a2f") // no #, lowercase, 4 digits
	require.NoError(t, err)
	assert.Equal(t, "#11AA22", c.Hex())
	assert.Equal(t, 1.0, c.A)

	c, err = FromHex("#11AA2288")
	require.NoError(t, err)
	tolassert.Equal(t, 136.0/255, c.A)
	assert.Equal(t, "#11AA2288", c.Hex())

	c, err = FromHex("#aa88ee")
	require.NoError(t, err)
	assert.Equal(t, "#AA88EE", c.Hex())

	for _, bad := range []string{"", "#12345", "#GG0011", "red", "#12"} {
		_, err = FromHex(bad)
		assert.ErrorIs(t, err, ErrHex, bad)
	}
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#ABC"))
	assert.True(t, IsHexColor("abcd"))
	assert.True(t, IsHexColor("#AABBCC"))
	assert.True(t, IsHexColor("#AABBCCDD"))
	assert.False(t, IsHexColor("#AABBC"))
	assert.False(t, IsHexColor("hello"))
	assert.False(t, IsHexColor(""))
}

func TestFromName(t *testing.T) {
	c, err := FromName("lightseagreen")
	require.NoError(t, err)
	assert.Equal(t, "#20B2AA", c.Hex())

	c, err = FromName("Navy")
	require.NoError(t, err)
	assert.Equal(t, "#000080", c.Hex())

	_, err = FromName("not-a-color")
	assert.Error(t, err)
}

func TestValues(t *testing.T) {
	r, g, b, a := MustHex("#2B949E").Values()
	assert.Equal(t, [3]int{43, 148, 158}, [3]int{r, g, b})
	assert.Equal(t, 1.0, a)
}

func TestHSV(t *testing.T) {
	hsv := MustHex("#2B949E").HSV()
	assert.Equal(t, 185.0, hsv.H)
	tolassert.Equal(t, 0.7278481012658228, hsv.S)
	tolassert.Equal(t, 0.6196078431372549, hsv.V)

	// grayscale has hue 0 and saturation 0
	gray := MustHex("#808080").HSV()
	assert.Equal(t, 0.0, gray.H)
	assert.Equal(t, 0.0, gray.S)

	assert.Equal(t, "#FF0000", FromHSV(0, 100, 100, 1).Hex())
	assert.Equal(t, "#FF0000", FromHSV(360, 100, 100, 1).Hex())
	assert.Equal(t, "#66C3CC", FromHSV(185, 50, 80, 1).Hex())
}

func TestHSL(t *testing.T) {
	hsl := MustHex("#2B949E").HSL()
	assert.Equal(t, 185.0, hsl.H)
	tolassert.Equal(t, 0.572139303482587, hsl.S)
	tolassert.Equal(t, 0.3941176470588236, hsl.L)

	assert.Equal(t, "#334C80", FromHSL(220, 43, 35, 1).Hex())

	// lightness extremes
	assert.Equal(t, 0.0, MustHex("#000000").HSL().S)
	assert.Equal(t, 0.0, MustHex("#FFFFFF").HSL().S)
}

func TestHWB(t *testing.T) {
	hwb := MustHex("#2B949E").HWB()
	assert.Equal(t, 185.0, hwb.H)
	tolassert.Equal(t, 0.16862745098039217, hwb.W)
	tolassert.Equal(t, 0.3803921568627451, hwb.B)

	// w + b >= 1 collapses to gray w/(w+b)
	gray := HWB{H: 100, W: 0.75, B: 0.75, A: 1}.RGB()
	tolassert.Equal(t, 0.5, gray.R)
	tolassert.Equal(t, 0.5, gray.G)
	tolassert.Equal(t, 0.5, gray.B)
}

func TestHSI(t *testing.T) {
	hsi := MustHex("#2B949E").HSI()
	assert.Equal(t, 185.0, hsi.H)
	tolassert.Equal(t, 0.6303724928366762, hsi.S)
	tolassert.Equal(t, 0.4562091503267974, hsi.I)

	gray := MustHex("#808080").HSI()
	assert.Equal(t, 0.0, gray.H)
	assert.Equal(t, 0.0, gray.S)
}

var roundTripColors = []string{
	"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
	"#FFFF00", "#00FFFF", "#FF00FF", "#2B949E", "#AA88EE",
	"#7FDBFF", "#4682B4", "#123456", "#ABCDEF", "#66CCFF",
	"#336699", "#99CC33", "#808080", "#1A2B3C",
}

func TestRoundTrips(t *testing.T) {
	for _, hex := range roundTripColors {
		c := MustHex(hex)
		assert.Equal(t, hex, c.Hex(), "hex")
		assert.Equal(t, hex, c.HSV().RGB().Hex(), "hsv %s", hex)
		assert.Equal(t, hex, c.HSL().RGB().Hex(), "hsl %s", hex)
		assert.Equal(t, hex, c.HWB().RGB().Hex(), "hwb %s", hex)

		xyz, err := c.XYZ()
		require.NoError(t, err)
		back, err := xyz.RGB("")
		require.NoError(t, err)
		assert.Equal(t, hex, back.Hex(), "xyz %s", hex)

		lab, err := c.Lab()
		require.NoError(t, err)
		backL, err := lab.RGB()
		require.NoError(t, err)
		assert.Equal(t, hex, backL.Hex(), "lab %s", hex)

		lch, err := c.LCHab()
		require.NoError(t, err)
		backC, err := lch.RGB()
		require.NoError(t, err)
		assert.Equal(t, hex, backC.Hex(), "lchab %s", hex)

		luv, err := c.Luv()
		require.NoError(t, err)
		backU, err := luv.RGB()
		require.NoError(t, err)
		assert.Equal(t, hex, backU.Hex(), "luv %s", hex)

		yxy, err := c.Yxy()
		require.NoError(t, err)
		backY, err := yxy.RGB()
		require.NoError(t, err)
		assert.Equal(t, hex, backY.Hex(), "yxy %s", hex)
	}
}

func TestHueInteger(t *testing.T) {
	for _, hex := range roundTripColors {
		c := MustHex(hex)
		for _, h := range []float64{c.HSV().H, c.HSL().H, c.HWB().H} {
			assert.Equal(t, h, float64(int(h)), "integer hue for %s", hex)
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Less(t, h, 360.0)
		}
	}
}

func TestXYZ(t *testing.T) {
	xyz, err := MustHex("#aa88ee").XYZ()
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.40810674095224264, xyz.X, 1e-12)
	tolassert.EqualTol(t, 0.32327025360500034, xyz.Y, 1e-12)
	tolassert.EqualTol(t, 0.8496199979867983, xyz.Z, 1e-12)
}

func TestLabWhite(t *testing.T) {
	lab, err := MustHex("#FFF").Lab()
	require.NoError(t, err)
	assert.Equal(t, 100.0, num.RoundFloat(lab.L, 4))
	assert.Equal(t, 0.0, num.RoundFloat(lab.A, 4))
	assert.Equal(t, 0.0, num.RoundFloat(lab.B, 4))
}

func TestLab(t *testing.T) {
	lab, err := MustHex("#2B949E").Lab()
	require.NoError(t, err)
	tolassert.EqualTol(t, 56.24756147083107, lab.L, 1e-9)
	tolassert.EqualTol(t, -25.588677813473737, lab.A, 1e-9)
	tolassert.EqualTol(t, -13.819539042857375, lab.B, 1e-9)

	lch := lab.LCHab()
	tolassert.EqualTol(t, 29.081954741709204, lch.C, 1e-9)
	tolassert.EqualTol(t, 208.37191188338645, lch.H, 1e-9)
}

func TestLuv(t *testing.T) {
	luv, err := MustHex("#AA88EE").Luv()
	require.NoError(t, err)
	tolassert.EqualTol(t, 63.61225105469222, luv.L, 1e-9)
	tolassert.EqualTol(t, 9.331629961872379, luv.U, 1e-9)
	tolassert.EqualTol(t, -79.07372121447328, luv.V, 1e-9)
}

func TestLabD50(t *testing.T) {
	// a D50-referenced Lab converts through Bradford adaptation
	lab := Lab{L: 50, A: 20, B: -30, Alpha: 1,
		White: cie.Meta{Illuminant: "D50", Method: cie.MethodASTME308}}
	rgb, err := lab.RGB()
	require.NoError(t, err)
	assert.Equal(t, "#856CAA", rgb.Hex())
	tolassert.EqualTol(t, 0.5211306069156458, rgb.R, 1e-8)
	tolassert.EqualTol(t, 0.42366566320861176, rgb.G, 1e-8)
	tolassert.EqualTol(t, 0.6685140401434755, rgb.B, 1e-8)
}

func TestCSS(t *testing.T) {
	c, err := NewRGB(0.2, 0.3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "hsla(220, 43%, 35%, 1)", c.HSL().CSS())
	assert.Equal(t, "rgba(51, 77, 128, 1)", c.CSS())
	assert.Equal(t, "rgba(43, 148, 158, 0.5)", MustHex("#2B949E").WithAlpha(0.5).CSS())
}

func TestAlphaBlend(t *testing.T) {
	blend := AlphaBlend(
		MustHex("#FFFFFF"),
		MustHex("#FF0000E6"),
		MustHex("#00FF0080"),
		MustHex("#0000FF4D"),
	)
	r, g, b, a := blend.Values()
	assert.Equal(t, [3]int{89, 98, 85}, [3]int{r, g, b})
	assert.Equal(t, 1.0, a)

	// a single color blends over an opaque white backdrop
	single := AlphaBlend(MustHex("#FF000080"))
	r, g, b, _ = single.Values()
	assert.Equal(t, [3]int{255, 127, 127}, [3]int{r, g, b})
}

func TestLuminance(t *testing.T) {
	tolassert.EqualTol(t, 0.2416202254119167, Luminance(MustHex("#2B949E")), 1e-12)
	assert.Equal(t, 0.0, Luminance(MustHex("#000000")))
	tolassert.EqualTol(t, 1, Luminance(MustHex("#FFFFFF")), 1e-12)
}

func TestContrastRatio(t *testing.T) {
	white := MustHex("#FFFFFF")
	black := MustHex("#000000")
	teal := MustHex("#2B949E")

	tolassert.EqualTol(t, 21, ContrastRatio(white, black), 1e-12)
	tolassert.EqualTol(t, 1, ContrastRatio(white, white), 1e-12)
	tolassert.EqualTol(t, 3.6005733090592873, ContrastRatio(teal, white), 1e-10)
	assert.Equal(t, ContrastRatio(teal, white), ContrastRatio(white, teal))
}

func TestToneOf(t *testing.T) {
	assert.Equal(t, ToneDark, ToneOf(MustHex("#2B949E")))
	assert.Equal(t, ToneDark, ToneOf(MustHex("#000000")))
	assert.Equal(t, ToneDark, ToneOf(MustHex("#808080")))
	assert.Equal(t, ToneLight, ToneOf(MustHex("#FFFFFF")))
	assert.Equal(t, ToneLight, ToneOf(MustHex("#FFEB3B")))

	assert.Equal(t, "dark", ToneDark.String())
	assert.Equal(t, "light", ToneLight.String())
}

func TestSpin(t *testing.T) {
	teal := MustHex("#2B949E")
	assert.Equal(t, "#6E2B9E", Spin(teal, 90).Hex())
	assert.Equal(t, "#9E352B", Spin(teal, 180).Hex())
	assert.Equal(t, "#5B9E2B", Spin(teal, 270).Hex())
	assert.Equal(t, "#5B9E2B", Spin(teal, -90).Hex())
	assert.Equal(t, teal.Hex(), Spin(teal, 360).Hex())
}

func TestLightenDarken(t *testing.T) {
	teal := MustHex("#2B949E")
	assert.Equal(t, "#36BAC6", Lighten(teal, 10).Hex())
	assert.Equal(t, "#206F76", Darken(teal, 10).Hex())
	assert.Equal(t, "#FFFFFF", Lighten(teal, 100).Hex())
	assert.Equal(t, "#000000", Darken(teal, 100).Hex())
}

func TestSaturate(t *testing.T) {
	teal := MustHex("#2B949E")
	assert.Greater(t, Saturate(teal, 20).HSL().S, teal.HSL().S)
	assert.Less(t, Desaturate(teal, 20).HSL().S, teal.HSL().S)
}

func TestColorInterop(t *testing.T) {
	c := MustHex("#CC7243").WithAlpha(243.0 / 255)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xc329), r)
	assert.Equal(t, uint32(0x6d0f), g)
	assert.Equal(t, uint32(0x4019), b)
	assert.Equal(t, uint32(0xf3f3), a)

	back := FromColor(c.AsRGBA())
	tolassert.EqualTol(t, c.R, back.R, 1e-2)
	tolassert.EqualTol(t, c.A, back.A, 1e-2)

	conv := Model.Convert(color.RGBA{204, 114, 67, 255}).(RGB)
	assert.Equal(t, "#CC7243", conv.Hex())
}

func TestConvertSpace(t *testing.T) {
	teal := MustHex("#2B949E")
	p3, err := teal.Convert("display-p3")
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.2983757426136149, p3.R, 1e-9)
	tolassert.EqualTol(t, 0.5722465976728608, p3.G, 1e-9)
	tolassert.EqualTol(t, 0.6123643406932835, p3.B, 1e-9)
	assert.Equal(t, "display-p3", p3.Space)

	back, err := p3.Convert("srgb")
	require.NoError(t, err)
	tolassert.EqualTol(t, teal.R, back.R, 1e-6)
	tolassert.EqualTol(t, teal.G, back.G, 1e-6)
	tolassert.EqualTol(t, teal.B, back.B, 1e-6)

	_, err = teal.Convert("nope")
	assert.Error(t, err)
}
