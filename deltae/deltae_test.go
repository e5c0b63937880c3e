// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/colors"
	"github.com/stretchr/testify/assert"
)

func lab(l, a, b float64) colors.Lab {
	return colors.Lab{L: l, A: a, B: b, Alpha: 1}
}

func TestSelfDistanceZero(t *testing.T) {
	cs := []colors.Lab{
		lab(0, 0, 0), lab(100, 0, 0), lab(50, 2.6772, -79.7751), lab(35.0831, -44.1164, 3.7933),
	}
	for _, c := range cs {
		assert.Equal(t, 0.0, CIE76(c, c))
		assert.Equal(t, 0.0, CIE94(c, c, GraphicArts))
		assert.Equal(t, 0.0, CIE94(c, c, Textiles))
		assert.Equal(t, 0.0, CIEDE2000(c, c))
		assert.Equal(t, 0.0, CMC(c, c, 2, 1))
	}
}

func TestCIE76(t *testing.T) {
	tolassert.EqualTol(t, 78.82057967212623, CIE76(lab(50, 2.6772, -79.7751), lab(50, 0, -1)), 1e-10)
	d := CIE76(lab(50, 10, 10), lab(60, 10, 10))
	assert.Equal(t, 10.0, d)
}

func TestCIE94(t *testing.T) {
	c1 := lab(50, 2.6772, -79.7751)
	c2 := lab(50, 0, -82.7485)
	tolassert.EqualTol(t, 1.3950388678587375, CIE94(c1, c2, GraphicArts), 1e-9)
	tolassert.EqualTol(t, 1.4230462054212831, CIE94(c1, c2, Textiles), 1e-9)
}

// TestCIEDE2000Sharma checks pairs from the Sharma, Wu, Dalal
// supplementary dataset, which exercise the mean hue branches.
func TestCIEDE2000Sharma(t *testing.T) {
	cases := []struct {
		c1, c2 colors.Lab
		want   float64
	}{
		{lab(50, 2.6772, -79.7751), lab(50, 0, -82.7485), 2.0424596801565764},
		{lab(50, 3.1571, -77.2803), lab(50, 0, -82.7485), 2.861510174747494},
		{lab(50, 2.5, 0), lab(73, 25, -18), 27.14923130074626},
		{lab(50, 2.5, 0), lab(50, 3.2592, 0.335), 1.0000347617151735},
		{lab(35.0831, -44.1164, 3.7933), lab(35.0232, -40.0716, 1.5901), 1.8644952341594636},
		{lab(2.0776, 0.0795, -1.135), lab(0.9033, -0.0636, -0.5514), 0.9082328396025249},
	}
	for _, c := range cases {
		tolassert.EqualTol(t, c.want, CIEDE2000(c.c1, c.c2), 1e-9)
	}
}

// TestCIEDE2000MeanHue checks the value that separates the corrected
// mean hue formulation from the erroneous variant, which would
// yield 45.69....
func TestCIEDE2000MeanHue(t *testing.T) {
	d := CIEDE2000(lab(100, 0, 10), lab(100, 0.1, -127.5))
	tolassert.EqualTol(t, 41.69699725982907, d, 1e-9)
}

func TestCIEDE2000LowChroma(t *testing.T) {
	// both chromas below the cutoff: pure lightness difference
	d := CIEDE2000(lab(40, 0, 0), lab(60, 0, 0))
	tolassert.EqualTol(t, d, CIEDE2000(lab(60, 0, 0), lab(40, 0, 0)), 1e-12)
	assert.Greater(t, d, 0.0)
	assert.False(t, math.IsNaN(d))
}

func TestCIEDE2000Symmetry(t *testing.T) {
	pairs := [][2]colors.Lab{
		{lab(50, 2.6772, -79.7751), lab(50, 0, -82.7485)},
		{lab(50, 2.5, 0), lab(73, 25, -18)},
		{lab(56.2, -25.6, -13.8), lab(63.6, 34.1, -46.9)},
	}
	for _, p := range pairs {
		d1 := CIEDE2000(p[0], p[1])
		d2 := CIEDE2000(p[1], p[0])
		tolassert.EqualTol(t, d1, d2, 5e-5)
	}
}

func TestCMC(t *testing.T) {
	tolassert.EqualTol(t, 1.738736105726153,
		CMC(lab(50, 2.6772, -79.7751), lab(50, 0, -82.7485), 2, 1), 1e-9)

	// CMC is not symmetric: the first color is the reference
	d1 := CMC(lab(50, 30, 20), lab(55, 25, 15), 2, 1)
	d2 := CMC(lab(55, 25, 15), lab(50, 30, 20), 2, 1)
	assert.NotEqual(t, d1, d2)
}
