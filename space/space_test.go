// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBMatrix(t *testing.T) {
	sp, err := Get(SRGB)
	require.NoError(t, err)
	m, err := sp.TransformMatrix(DefaultDigits)
	require.NoError(t, err)

	wantToXYZ := math3.Matrix3{
		{0.41245644, 0.35757608, 0.18043748},
		{0.21267285, 0.71515216, 0.07217499},
		{0.0193339, 0.11919203, 0.95030408},
	}
	wantToRGB := math3.Matrix3{
		{3.24045416, -1.53713851, -0.49853141},
		{-0.96926603, 1.87601085, 0.04155602},
		{0.05564343, -0.20402591, 1.05722519},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tolassert.EqualTol(t, wantToXYZ[i][j], m.ToXYZ[i][j], 1e-12)
			tolassert.EqualTol(t, wantToRGB[i][j], m.ToRGB[i][j], 1e-12)
		}
	}

	// the reference white maps onto the whitepoint
	wp := math3.MulVector(m.ToXYZ, math3.Vector3{X: 1, Y: 1, Z: 1})
	tolassert.EqualTol(t, 0.95047, wp.X, 1e-7)
	tolassert.EqualTol(t, 1, wp.Y, 1e-7)
	tolassert.EqualTol(t, 1.08883, wp.Z, 1e-7)
}

func TestTransformMatrixDigits(t *testing.T) {
	sp, err := Get(SRGB)
	require.NoError(t, err)
	rounded, err := sp.TransformMatrix(DefaultDigits)
	require.NoError(t, err)
	raw, err := sp.TransformMatrix(-1)
	require.NoError(t, err)
	assert.NotEqual(t, rounded.ToXYZ, raw.ToXYZ)
	tolassert.EqualTol(t, raw.ToXYZ[0][0], rounded.ToXYZ[0][0], 5e-9)

	// cached: same matrices on repeated calls
	again, err := sp.TransformMatrix(DefaultDigits)
	require.NoError(t, err)
	assert.Equal(t, rounded, again)
}

func TestTransferIdentity(t *testing.T) {
	for _, name := range []string{SRGB, AdobeRGB, CIERGB, DisplayP3, Rec2020, Rec709, ProPhoto, WideGamut} {
		sp, err := Get(name)
		require.NoError(t, err)
		for _, v := range []float64{0.0005, 0.002, 0.01, 0.04, 0.25, 0.5, 0.75, 1} {
			tolassert.EqualTol(t, v, sp.ToGamma(sp.ToLinear(v)), 1e-12, name)
			tolassert.EqualTol(t, v, sp.ToLinear(sp.ToGamma(v)), 1e-12, name)
			// odd extension across zero
			tolassert.EqualTol(t, -sp.ToLinear(v), sp.ToLinear(-v), 1e-15, name)
		}
	}
}

func TestRec2020Constants(t *testing.T) {
	sp, err := Get(Rec2020)
	require.NoError(t, err)
	// below the knee the curve is linear at slope 4.5
	tolassert.EqualTol(t, 0.045, sp.ToGamma(0.01), 1e-15)
	tolassert.EqualTol(t, 0.01, sp.ToLinear(0.045), 1e-15)
}

func TestRoundTrips(t *testing.T) {
	full := [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.9, 0.85, 0.7}, {0.2, 0.3, 0.5}, {0.01, 0.02, 0.03}, {0.666, 0.333, 0.999},
	}
	// pure power laws amplify matrix rounding noise without bound near
	// zero, so those spaces are exercised on interior points only
	interior := [][3]float64{
		{1, 1, 1}, {0.9, 0.85, 0.7}, {0.2, 0.3, 0.5}, {0.666, 0.333, 0.999}, {0.05, 0.1, 0.15},
	}
	cases := map[string][][3]float64{
		SRGB:      full,
		DisplayP3: full,
		Rec2020:   full,
		Rec709:    full,
		ProPhoto:  full,
		AdobeRGB:  interior,
		CIERGB:    interior,
		WideGamut: interior,
	}
	for name, colors := range cases {
		sp, err := Get(name)
		require.NoError(t, err)
		for _, c := range colors {
			xyz, err := sp.ToXYZ(c[0], c[1], c[2], "")
			require.NoError(t, err)
			r, g, b, err := sp.ToRGB(xyz, "")
			require.NoError(t, err)
			tolassert.EqualTol(t, c[0], r, 1e-7, name)
			tolassert.EqualTol(t, c[1], g, 1e-7, name)
			tolassert.EqualTol(t, c[2], b, 1e-7, name)
		}
	}
}

func TestSRGBRoundTripTight(t *testing.T) {
	sp, err := Get(SRGB)
	require.NoError(t, err)
	for _, c := range [][3]float64{{0, 0, 0}, {1, 1, 1}, {0.2, 0.3, 0.5}, {0.9, 0.85, 0.7}, {0.01, 0.02, 0.03}} {
		xyz, err := sp.ToXYZ(c[0], c[1], c[2], "")
		require.NoError(t, err)
		r, g, b, err := sp.ToRGB(xyz, "")
		require.NoError(t, err)
		tolassert.EqualTol(t, c[0], r, 1e-8)
		tolassert.EqualTol(t, c[1], g, 1e-8)
		tolassert.EqualTol(t, c[2], b, 1e-8)
	}
}

func TestAdaptedConversion(t *testing.T) {
	// sRGB to XYZ under D50, back under D50: Bradford both ways
	sp, err := Get(SRGB)
	require.NoError(t, err)
	xyz, err := sp.ToXYZ(0.2, 0.3, 0.5, "D50")
	require.NoError(t, err)
	r, g, b, err := sp.ToRGB(xyz, "D50")
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.2, r, 1e-7)
	tolassert.EqualTol(t, 0.3, g, 1e-7)
	tolassert.EqualTol(t, 0.5, b, 1e-7)
}

func TestConvert(t *testing.T) {
	sp, err := Get(SRGB)
	require.NoError(t, err)
	// identity conversion within sRGB
	r, g, b, err := sp.Convert(0.2, 0.3, 0.5, SRGB, "")
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.2, r, 1e-7)
	tolassert.EqualTol(t, 0.3, g, 1e-7)
	tolassert.EqualTol(t, 0.5, b, 1e-7)

	_, _, _, err = sp.Convert(0.2, 0.3, 0.5, "nope", "")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestRegistry(t *testing.T) {
	_, err := Get("nope")
	assert.ErrorIs(t, err, ErrUnknownSpace)

	lin := func(v float64) float64 { return v }
	sp, err := New("test-linear", [2]float64{0.64, 0.33}, [2]float64{0.30, 0.60}, [2]float64{0.15, 0.06},
		cie.Meta{Illuminant: "D65", Method: cie.MethodASTME308}, lin, lin)
	require.NoError(t, err)
	require.NoError(t, Register(sp))
	assert.ErrorIs(t, Register(sp), ErrDuplicateSpace)

	got, err := Get("test-linear")
	require.NoError(t, err)
	assert.Equal(t, sp, got)
}

func TestNewUnknownWhite(t *testing.T) {
	lin := func(v float64) float64 { return v }
	_, err := New("bad", [2]float64{0.64, 0.33}, [2]float64{0.30, 0.60}, [2]float64{0.15, 0.06},
		cie.Meta{Illuminant: "D60"}, lin, lin)
	assert.ErrorIs(t, err, cie.ErrUnknownIlluminant)
}
