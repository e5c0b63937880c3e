// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space implements RGB working spaces: named sets of primaries,
// reference whitepoint, and transfer functions, with lazily derived
// RGB to XYZ matrices. The registry is preloaded with the eight
// standard spaces and accepts more via [Register].
package space

import (
	"errors"
	"fmt"
	"sync"

	"cogentcore.org/colorimetry/adapt"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/math3"
	"cogentcore.org/colorimetry/num"
)

var (
	// ErrUnknownSpace is returned for an unregistered space name.
	ErrUnknownSpace = errors.New("space: unknown RGB working space")

	// ErrDuplicateSpace is returned by [Register] for a name that is
	// already taken.
	ErrDuplicateSpace = errors.New("space: duplicate RGB working space")
)

// Names of the built-in working spaces.
const (
	SRGB      = "srgb"
	AdobeRGB  = "adobe-rgb-1998"
	CIERGB    = "cie-rgb"
	DisplayP3 = "display-p3"
	Rec2020   = "rec2020"
	Rec709    = "rec709"
	ProPhoto  = "prophoto"
	WideGamut = "wide-gamut"
)

// DefaultDigits is the decimal precision the derived transform matrices
// are rounded to unless the caller asks otherwise.
const DefaultDigits = 8

// Matrices is a derived pair of transform matrices for one space.
type Matrices struct {

	// ToXYZ transforms linear RGB to XYZ.
	ToXYZ math3.Matrix3

	// ToRGB transforms XYZ to linear RGB.
	ToRGB math3.Matrix3
}

// RGBSpace is one RGB working space. The primaries and whitepoint are
// XYZ tristimuli; the transform matrices are derived from them on first
// demand and cached. Instances are registered once and shared, so the
// exported fields are read-only after construction; the derived
// matrices are cached under a mutex.
type RGBSpace struct {

	// Name is the registry key.
	Name string

	// Primaries are the XYZ tristimuli of the R, G, B primaries.
	Primaries [3]math3.Vector3

	// White is the XYZ tristimulus of the reference white, Y = 1.
	White math3.Vector3

	// WhiteMeta identifies the reference white for chromatic
	// adaptation between spaces.
	WhiteMeta cie.Meta

	// ToLinear is the EOTF: gamma-encoded to linear.
	ToLinear func(float64) float64

	// ToGamma is the OETF: linear to gamma-encoded.
	ToGamma func(float64) float64

	mu       sync.Mutex
	matrices map[int]Matrices // keyed by rounding digits
}

// New constructs a working space from the xy chromaticities of its
// primaries, the whitepoint, and the transfer function pair.
func New(name string, rxy, gxy, bxy [2]float64, white cie.Meta, toLinear, toGamma func(float64) float64) (*RGBSpace, error) {
	wp, err := cie.Whitepoint(white)
	if err != nil {
		return nil, err
	}
	return &RGBSpace{
		Name: name,
		Primaries: [3]math3.Vector3{
			cie.XYToXYZ(rxy[0], rxy[1]),
			cie.XYToXYZ(gxy[0], gxy[1]),
			cie.XYToXYZ(bxy[0], bxy[1]),
		},
		White:     wp,
		WhiteMeta: white,
		ToLinear:  toLinear,
		ToGamma:   toGamma,
	}, nil
}

// TransformMatrix returns the cached {toXyz, toRgb} matrix pair,
// deriving it on first use. The columns of toXyz are the primaries
// scaled so that the reference white maps to the whitepoint. digits >= 4
// rounds the derived matrices to that many decimals; -1 disables
// rounding. Use [DefaultDigits] for the standard precision.
func (sp *RGBSpace) TransformMatrix(digits int) (Matrices, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if m, ok := sp.matrices[digits]; ok {
		return m, nil
	}
	prim := math3.Matrix3{
		{sp.Primaries[0].X, sp.Primaries[1].X, sp.Primaries[2].X},
		{sp.Primaries[0].Y, sp.Primaries[1].Y, sp.Primaries[2].Y},
		{sp.Primaries[0].Z, sp.Primaries[1].Z, sp.Primaries[2].Z},
	}
	primInv, err := prim.Inverse()
	if err != nil {
		return Matrices{}, fmt.Errorf("space %q: %w", sp.Name, err)
	}
	s := math3.MulVector(primInv, sp.White)
	toXyz := math3.Matrix3{
		{s.X * prim[0][0], s.Y * prim[0][1], s.Z * prim[0][2]},
		{s.X * prim[1][0], s.Y * prim[1][1], s.Z * prim[1][2]},
		{s.X * prim[2][0], s.Y * prim[2][1], s.Z * prim[2][2]},
	}
	toRgb, err := toXyz.Inverse()
	if err != nil {
		return Matrices{}, fmt.Errorf("space %q: %w", sp.Name, err)
	}
	if digits >= 4 {
		toXyz = math3.Round(toXyz, digits)
		toRgb = math3.Round(toRgb, digits)
	}
	m := Matrices{ToXYZ: toXyz, ToRGB: toRgb}
	if sp.matrices == nil {
		sp.matrices = map[int]Matrices{}
	}
	sp.matrices[digits] = m
	return m, nil
}

// ToRGB converts XYZ tristimulus values to gamma-encoded RGB in this
// space. If srcIlluminant is set and differs from the space's
// illuminant, the values are first chromatically adapted under the
// Bradford transform. The gamma output is clamped to [0, 1]; the
// linear intermediate values are not clamped.
func (sp *RGBSpace) ToRGB(v math3.Vector3, srcIlluminant string) (r, g, b float64, err error) {
	if srcIlluminant != "" && srcIlluminant != sp.WhiteMeta.Illuminant {
		src := cie.Meta{Illuminant: srcIlluminant, Observer: sp.WhiteMeta.Observer, Method: sp.WhiteMeta.Method}
		v, err = adapt.Adapt(v, src, sp.WhiteMeta, adapt.Bradford)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	m, err := sp.TransformMatrix(DefaultDigits)
	if err != nil {
		return 0, 0, 0, err
	}
	lin := math3.MulVector(m.ToRGB, v)
	r = num.Clamp01(sp.ToGamma(lin.X))
	g = num.Clamp01(sp.ToGamma(lin.Y))
	b = num.Clamp01(sp.ToGamma(lin.Z))
	return r, g, b, nil
}

// ToXYZ converts gamma-encoded RGB in this space to XYZ tristimulus
// values. The inverse gamma output is not clamped, so out-of-gamut
// values pass through. If dstIlluminant is set and differs from the
// space's illuminant, the result is adapted to it under Bradford.
func (sp *RGBSpace) ToXYZ(r, g, b float64, dstIlluminant string) (math3.Vector3, error) {
	m, err := sp.TransformMatrix(DefaultDigits)
	if err != nil {
		return math3.Vector3{}, err
	}
	lin := math3.Vector3{X: sp.ToLinear(r), Y: sp.ToLinear(g), Z: sp.ToLinear(b)}
	v := math3.MulVector(m.ToXYZ, lin)
	if dstIlluminant != "" && dstIlluminant != sp.WhiteMeta.Illuminant {
		dst := cie.Meta{Illuminant: dstIlluminant, Observer: sp.WhiteMeta.Observer, Method: sp.WhiteMeta.Method}
		v, err = adapt.Adapt(v, sp.WhiteMeta, dst, adapt.Bradford)
		if err != nil {
			return math3.Vector3{}, err
		}
	}
	return v, nil
}

// Convert transforms an RGB vector from this space to the named target
// space by composing target.toRgb, the whitepoint adaptation (default
// method cat02), and this space's toXyz. Gamma handling is the caller's
// responsibility in this chained form.
func (sp *RGBSpace) Convert(r, g, b float64, target, method string) (rr, gg, bb float64, err error) {
	if method == "" {
		method = adapt.CAT02
	}
	dst, err := Get(target)
	if err != nil {
		return 0, 0, 0, err
	}
	srcM, err := sp.TransformMatrix(DefaultDigits)
	if err != nil {
		return 0, 0, 0, err
	}
	dstM, err := dst.TransformMatrix(DefaultDigits)
	if err != nil {
		return 0, 0, 0, err
	}
	am, err := adapt.Matrix(sp.WhiteMeta, dst.WhiteMeta, method)
	if err != nil {
		return 0, 0, 0, err
	}
	m := math3.Mul(dstM.ToRGB, math3.Mul(am, srcM.ToXYZ))
	v := math3.MulVector(m, math3.Vector3{X: r, Y: g, Z: b})
	return v.X, v.Y, v.Z, nil
}

// registry holds the named working spaces. Read-mostly after init.
var (
	registry   = map[string]*RGBSpace{}
	registryMu sync.RWMutex
)

// Register adds a working space to the registry.
// Registering an existing name fails.
func Register(sp *RGBSpace) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[sp.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateSpace, sp.Name)
	}
	registry[sp.Name] = sp
	return nil
}

// Get returns the named working space.
func Get(name string) (*RGBSpace, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	sp, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
	}
	return sp, nil
}

// mustNew is used for the built-in spaces, whose whitepoints
// are all in the tables.
func mustNew(name string, rxy, gxy, bxy [2]float64, white cie.Meta, toLinear, toGamma func(float64) float64) *RGBSpace {
	sp, err := New(name, rxy, gxy, bxy, white, toLinear, toGamma)
	if err != nil {
		panic(err)
	}
	return sp
}

func init() {
	// Built-in whitepoints resolve by ASTM E308 tristimulus lookup so
	// the derived matrices match the standard Lindbloom references.
	d65 := cie.Meta{Illuminant: "D65", Method: cie.MethodASTME308}
	d50 := cie.Meta{Illuminant: "D50", Method: cie.MethodASTME308}
	e := cie.Meta{Illuminant: "E", Method: cie.MethodASTME308}

	srgbLin := oddExt(SRGBToLinearComp)
	srgbGam := oddExt(SRGBFromLinearComp)
	adobeLin, adobeGam := gammaPow(563.0 / 256)
	pureLin, pureGam := gammaPow(2.2)

	for _, sp := range []*RGBSpace{
		mustNew(SRGB, [2]float64{0.64, 0.33}, [2]float64{0.30, 0.60}, [2]float64{0.15, 0.06}, d65, srgbLin, srgbGam),
		mustNew(AdobeRGB, [2]float64{0.64, 0.33}, [2]float64{0.21, 0.71}, [2]float64{0.15, 0.06}, d65, adobeLin, adobeGam),
		mustNew(CIERGB, [2]float64{0.735, 0.265}, [2]float64{0.274, 0.717}, [2]float64{0.167, 0.009}, e, pureLin, pureGam),
		mustNew(DisplayP3, [2]float64{0.680, 0.320}, [2]float64{0.265, 0.690}, [2]float64{0.150, 0.060}, d65, srgbLin, srgbGam),
		mustNew(Rec2020, [2]float64{0.708, 0.292}, [2]float64{0.170, 0.797}, [2]float64{0.131, 0.046}, d65, oddExt(rec2020ToLinearComp), oddExt(rec2020FromLinearComp)),
		mustNew(Rec709, [2]float64{0.64, 0.33}, [2]float64{0.30, 0.60}, [2]float64{0.15, 0.06}, d65, oddExt(rec709ToLinearComp), oddExt(rec709FromLinearComp)),
		mustNew(ProPhoto, [2]float64{0.7347, 0.2653}, [2]float64{0.1596, 0.8404}, [2]float64{0.0366, 0.0001}, d50, oddExt(prophotoToLinearComp), oddExt(prophotoFromLinearComp)),
		mustNew(WideGamut, [2]float64{0.735, 0.265}, [2]float64{0.115, 0.826}, [2]float64{0.157, 0.018}, d50, pureLin, pureGam),
	} {
		registry[sp.Name] = sp
	}
}
