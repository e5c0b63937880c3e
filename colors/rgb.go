// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors implements the color model value types: RGB, HSV,
// HSL, HSI, HWB, XYZ, Yxy, Lab, LCHab, Luv, and LCHuv, each carrying
// alpha, with conversions between adjacent models through the XYZ hub.
// All values are immutable; transformations return new instances.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/colorimetry/space"
)

// ErrRange is returned when a color component is outside its domain.
var ErrRange = errors.New("colors: component out of range")

// RGB is a gamma-encoded RGB color with components normalized to
// [0, 1], in the working space named by Space (sRGB when empty).
// Components are not premultiplied by alpha.
type RGB struct {

	// R, G, B are the gamma-encoded channels in [0, 1].
	R, G, B float64

	// A is the alpha in [0, 1]. Alpha is never clamped implicitly.
	A float64

	// Space is the working space registry name; empty means sRGB.
	Space string
}

// NewRGB returns an RGB color with the given components and alpha 1.
// Any component outside [0, 1] is rejected.
func NewRGB(r, g, b float64) (RGB, error) {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA returns an RGB color with the given components and alpha.
// Any channel outside [0, 1] is rejected.
func NewRGBA(r, g, b, a float64) (RGB, error) {
	for _, v := range [...]float64{r, g, b} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return RGB{}, fmt.Errorf("%w: rgb component %v", ErrRange, v)
		}
	}
	return RGB{R: r, G: g, B: b, A: a}, nil
}

// FromRGB255 returns an RGB color from 0-255 channel values
// and a 0-1 alpha.
func FromRGB255(r, g, b int, a float64) (RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: rgb255 component %d", ErrRange, v)
		}
	}
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: a}, nil
}

// WithAlpha returns the color with alpha set to a.
func (c RGB) WithAlpha(a float64) RGB {
	c.A = a
	return c
}

// WithSpace returns the color tagged as belonging to the named
// working space. The channel values are not converted; see [RGB.Convert].
func (c RGB) WithSpace(name string) RGB {
	c.Space = name
	return c
}

// spaceName returns the effective working space name.
func (c RGB) spaceName() string {
	if c.Space == "" {
		return space.SRGB
	}
	return c.Space
}

// Values returns the color as 0-255 rounded channel values
// plus the 0-1 alpha.
func (c RGB) Values() (r, g, b int, a float64) {
	return int(math.Round(c.R * 255)), int(math.Round(c.G * 255)), int(math.Round(c.B * 255)), c.A
}

// RGBA implements [color.Color], premultiplying by alpha.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*c.A*65535 + 0.5)
	g = uint32(c.G*c.A*65535 + 0.5)
	b = uint32(c.B*c.A*65535 + 0.5)
	a = uint32(c.A*65535 + 0.5)
	return
}

// AsRGBA returns the color as a standard 8-bit [color.RGBA] value,
// whose channels are premultiplied by alpha.
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{
		uint8(math.Round(c.R * c.A * 255)),
		uint8(math.Round(c.G * c.A * 255)),
		uint8(math.Round(c.B * c.A * 255)),
		uint8(math.Round(c.A * 255)),
	}
}

// FromColor returns an RGB color from a standard [color.Color],
// un-premultiplying the channels.
func FromColor(ci color.Color) RGB {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float64(a) / 65535
	return RGB{
		R: float64(r) / 65535 / fa,
		G: float64(g) / 65535 / fa,
		B: float64(b) / 65535 / fa,
		A: fa,
	}
}

// Model is the standard [color.Model] that converts colors to [RGB].
var Model = color.ModelFunc(model)

func model(ci color.Color) color.Color {
	if c, ok := ci.(RGB); ok {
		return c
	}
	return FromColor(ci)
}

func (c RGB) String() string {
	return c.Hex()
}

// XYZ converts the color to XYZ through its working space matrix,
// applying the EOTF first. The result carries the space's reference
// white.
func (c RGB) XYZ() (XYZ, error) {
	sp, err := space.Get(c.spaceName())
	if err != nil {
		return XYZ{}, err
	}
	v, err := sp.ToXYZ(c.R, c.G, c.B, "")
	if err != nil {
		return XYZ{}, err
	}
	return XYZ{X: v.X, Y: v.Y, Z: v.Z, Alpha: c.A, White: sp.WhiteMeta}, nil
}

// Lab converts the color to L*a*b* relative to its working space
// whitepoint.
func (c RGB) Lab() (Lab, error) {
	xyz, err := c.XYZ()
	if err != nil {
		return Lab{}, err
	}
	return xyz.Lab()
}

// LCHab converts the color to the cylindrical form of L*a*b*.
func (c RGB) LCHab() (LCHab, error) {
	lab, err := c.Lab()
	if err != nil {
		return LCHab{}, err
	}
	return lab.LCHab(), nil
}

// Luv converts the color to L*u*v* relative to its working space
// whitepoint.
func (c RGB) Luv() (Luv, error) {
	xyz, err := c.XYZ()
	if err != nil {
		return Luv{}, err
	}
	return xyz.Luv()
}

// LCHuv converts the color to the cylindrical form of L*u*v*.
func (c RGB) LCHuv() (LCHuv, error) {
	luv, err := c.Luv()
	if err != nil {
		return LCHuv{}, err
	}
	return luv.LCHuv(), nil
}

// Yxy converts the color to Yxy luminance plus chromaticity.
func (c RGB) Yxy() (Yxy, error) {
	xyz, err := c.XYZ()
	if err != nil {
		return Yxy{}, err
	}
	return xyz.Yxy(), nil
}

// Convert transforms the color into the named working space,
// going through linear RGB, the whitepoint adaptation (cat02),
// and the target gamma.
func (c RGB) Convert(target string) (RGB, error) {
	sp, err := space.Get(c.spaceName())
	if err != nil {
		return RGB{}, err
	}
	dst, err := space.Get(target)
	if err != nil {
		return RGB{}, err
	}
	r, g, b, err := sp.Convert(sp.ToLinear(c.R), sp.ToLinear(c.G), sp.ToLinear(c.B), target, "")
	if err != nil {
		return RGB{}, err
	}
	out := RGB{
		R:     clamp01(dst.ToGamma(r)),
		G:     clamp01(dst.ToGamma(g)),
		B:     clamp01(dst.ToGamma(b)),
		A:     c.A,
		Space: target,
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
