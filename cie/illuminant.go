// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"

	"cogentcore.org/colorimetry/math3"
)

// ErrUnknownIlluminant is returned when an illuminant name has no table
// entry for the requested observer.
var ErrUnknownIlluminant = errors.New("cie: unknown illuminant")

// Method selects how [Whitepoint] resolves a whitepoint.
type Method int

const (
	// MethodIEC619662 converts the xy chromaticity of the illuminant to
	// XYZ per IEC 61966-2-1. This is the default.
	MethodIEC619662 Method = iota

	// MethodASTME308 looks the tristimulus values up directly in the
	// ASTM E308 tables.
	MethodASTME308
)

// Meta identifies a whitepoint: a standard illuminant name under an
// observer angle, or an explicit xy chromaticity. The zero Observer
// means the 2 degree standard observer.
type Meta struct {

	// Illuminant is the standard illuminant name: A, B, C, D50, D55,
	// D65, D75, E, or F1 through F12. Names are case-sensitive.
	Illuminant string

	// Observer is the standard observer angle in degrees: 2 or 10.
	// Zero means 2.
	Observer int

	// XY, if non-nil, is an explicit xy chromaticity that overrides the
	// illuminant lookup (except under [MethodASTME308]).
	XY *[2]float64

	// Method selects the resolution policy.
	Method Method
}

// D65 identifies illuminant D65 under the 2 degree observer, resolved
// by the default IEC 61966-2-1 method. The reference white that the
// color types fall back to is [MetaD65], the ASTM E308 lookup.
var D65 = Meta{Illuminant: "D65"}

// tristimulus2 holds the ASTM E308 tristimulus values for the 2 degree
// standard observer, normalized so that Y = 1.
var tristimulus2 = map[string]math3.Vector3{
	"A":   {X: 1.09850, Y: 1, Z: 0.35585},
	"B":   {X: 0.99072, Y: 1, Z: 0.85223},
	"C":   {X: 0.98074, Y: 1, Z: 1.18232},
	"D50": {X: 0.96422, Y: 1, Z: 0.82521},
	"D55": {X: 0.95682, Y: 1, Z: 0.92149},
	"D65": {X: 0.95047, Y: 1, Z: 1.08883},
	"D75": {X: 0.94972, Y: 1, Z: 1.22638},
	"E":   {X: 1, Y: 1, Z: 1},
	"F1":  {X: 0.92834, Y: 1, Z: 1.03665},
	"F2":  {X: 0.99186, Y: 1, Z: 0.67393},
	"F3":  {X: 1.03754, Y: 1, Z: 0.49861},
	"F4":  {X: 1.09147, Y: 1, Z: 0.38813},
	"F5":  {X: 0.90872, Y: 1, Z: 0.98723},
	"F6":  {X: 0.97309, Y: 1, Z: 0.60191},
	"F7":  {X: 0.95041, Y: 1, Z: 1.08747},
	"F8":  {X: 0.96413, Y: 1, Z: 0.82333},
	"F9":  {X: 1.00365, Y: 1, Z: 0.67868},
	"F10": {X: 0.96174, Y: 1, Z: 0.81712},
	"F11": {X: 1.00962, Y: 1, Z: 0.64350},
	"F12": {X: 1.08046, Y: 1, Z: 0.39228},
}

// tristimulus10 holds the ASTM E308 tristimulus values for the
// 10 degree supplementary observer.
var tristimulus10 = map[string]math3.Vector3{
	"A":   {X: 1.11144, Y: 1, Z: 0.35200},
	"B":   {X: 0.99178, Y: 1, Z: 0.84349},
	"C":   {X: 0.97285, Y: 1, Z: 1.16145},
	"D50": {X: 0.96720, Y: 1, Z: 0.81427},
	"D55": {X: 0.95799, Y: 1, Z: 0.90926},
	"D65": {X: 0.94811, Y: 1, Z: 1.07304},
	"D75": {X: 0.94416, Y: 1, Z: 1.20641},
	"E":   {X: 1, Y: 1, Z: 1},
	"F1":  {X: 0.94791, Y: 1, Z: 1.03191},
	"F2":  {X: 1.03280, Y: 1, Z: 0.69026},
	"F3":  {X: 1.08968, Y: 1, Z: 0.51965},
	"F4":  {X: 1.14961, Y: 1, Z: 0.40963},
	"F5":  {X: 0.93369, Y: 1, Z: 0.98636},
	"F6":  {X: 1.02148, Y: 1, Z: 0.62074},
	"F7":  {X: 0.95792, Y: 1, Z: 1.07687},
	"F8":  {X: 0.97115, Y: 1, Z: 0.81135},
	"F9":  {X: 1.02116, Y: 1, Z: 0.67826},
	"F10": {X: 0.99001, Y: 1, Z: 0.83134},
	"F11": {X: 1.03866, Y: 1, Z: 0.65627},
	"F12": {X: 1.11428, Y: 1, Z: 0.40353},
}

// chromaticity2 holds the xy chromaticity coordinates of the standard
// illuminants under the 2 degree observer.
var chromaticity2 = map[string][2]float64{
	"A":   {0.44757, 0.40745},
	"B":   {0.34842, 0.35161},
	"C":   {0.31006, 0.31616},
	"D50": {0.34567, 0.35850},
	"D55": {0.33242, 0.34743},
	"D65": {0.31271, 0.32902},
	"D75": {0.29902, 0.31485},
	"E":   {1.0 / 3, 1.0 / 3},
	"F1":  {0.31310, 0.33727},
	"F2":  {0.37208, 0.37529},
	"F3":  {0.40910, 0.39430},
	"F4":  {0.44018, 0.40329},
	"F5":  {0.31379, 0.34531},
	"F6":  {0.37790, 0.38835},
	"F7":  {0.31292, 0.32933},
	"F8":  {0.34588, 0.35875},
	"F9":  {0.37417, 0.37281},
	"F10": {0.34609, 0.35986},
	"F11": {0.38052, 0.37713},
	"F12": {0.43695, 0.40441},
}

// chromaticity10 holds the xy chromaticity coordinates under the
// 10 degree observer.
var chromaticity10 = map[string][2]float64{
	"A":   {0.45117, 0.40594},
	"B":   {0.34980, 0.35270},
	"C":   {0.31039, 0.31905},
	"D50": {0.34773, 0.35952},
	"D55": {0.33411, 0.34877},
	"D65": {0.31382, 0.33100},
	"D75": {0.29968, 0.31740},
	"E":   {1.0 / 3, 1.0 / 3},
	"F1":  {0.31811, 0.33559},
	"F2":  {0.37925, 0.36733},
	"F3":  {0.41761, 0.38324},
	"F4":  {0.44920, 0.39074},
	"F5":  {0.31975, 0.34246},
	"F6":  {0.38660, 0.37847},
	"F7":  {0.31569, 0.32960},
	"F8":  {0.34902, 0.35939},
	"F9":  {0.37829, 0.37045},
	"F10": {0.35090, 0.35444},
	"F11": {0.38541, 0.37123},
	"F12": {0.44256, 0.39717},
}

// XYToXYZ converts an xy chromaticity to XYZ tristimulus values
// normalized so that Y = 1.
func XYToXYZ(x, y float64) math3.Vector3 {
	return math3.Vector3{X: x / y, Y: 1, Z: (1 - x - y) / y}
}

// Whitepoint resolves the whitepoint identified by meta to XYZ
// tristimulus values with Y = 1. Under [MethodASTME308] the tristimulus
// tables are consulted directly; otherwise an explicit xy chromaticity
// is used if present, else the chromaticity tables, converted per
// IEC 61966-2-1.
func Whitepoint(meta Meta) (math3.Vector3, error) {
	obs := meta.Observer
	if obs == 0 {
		obs = 2
	}
	if obs != 2 && obs != 10 {
		return math3.Vector3{}, fmt.Errorf("cie: unsupported observer %d°", obs)
	}
	if meta.Method == MethodASTME308 {
		tab := tristimulus2
		if obs == 10 {
			tab = tristimulus10
		}
		wp, ok := tab[meta.Illuminant]
		if !ok {
			return math3.Vector3{}, fmt.Errorf("%w: %q for observer %d°", ErrUnknownIlluminant, meta.Illuminant, obs)
		}
		return wp, nil
	}
	if meta.XY != nil {
		return XYToXYZ(meta.XY[0], meta.XY[1]), nil
	}
	tab := chromaticity2
	if obs == 10 {
		tab = chromaticity10
	}
	xy, ok := tab[meta.Illuminant]
	if !ok {
		return math3.Vector3{}, fmt.Errorf("%w: %q for observer %d°", ErrUnknownIlluminant, meta.Illuminant, obs)
	}
	return XYToXYZ(xy[0], xy[1]), nil
}
