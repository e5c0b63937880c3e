// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt implements chromatic adaptation of XYZ tristimulus
// values between illuminants through a cone response space. The cone
// transforms include the CAT02 matrix of the CIECAM02 color appearance
// model (MoroneyFairchildHuntEtAl02) and the CAT16 revision (LiLiWang17),
// alongside the classic Bradford and von Kries transforms.
package adapt

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/math3"
)

var (
	// ErrUnknownMethod is returned for an unregistered adaptation
	// method name.
	ErrUnknownMethod = errors.New("adapt: unknown adaptation method")

	// ErrDuplicateMethod is returned by [Register] for a name that is
	// already taken.
	ErrDuplicateMethod = errors.New("adapt: duplicate adaptation method")
)

// Standard method names. Names are case-sensitive.
const (
	XYZScaling = "xyzScaling"
	VonKries   = "vonKries"
	Bradford   = "bradford"
	CAT02      = "cat02"
	CAT16      = "cat16"
)

// methods maps method names to their cone response matrices.
// Guarded by methodsMu; registration is rare and read access dominates.
var methods = map[string]math3.Matrix3{
	XYZScaling: math3.Identity3(),
	VonKries: {
		{0.40024, 0.7076, -0.08081},
		{-0.2263, 1.16532, 0.0457},
		{0, 0, 0.91822},
	},
	Bradford: {
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	},
	CAT02: {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	},
	CAT16: {
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	},
}

var methodsMu sync.RWMutex

// Register adds a new adaptation method under the given name, with the
// given cone response matrix. Registering an existing name fails.
func Register(name string, cone math3.Matrix3) error {
	methodsMu.Lock()
	defer methodsMu.Unlock()
	if _, ok := methods[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMethod, name)
	}
	methods[name] = cone
	return nil
}

// Options configures matrix construction.
type Options struct {

	// RoundedInverse rounds the inverted cone matrix to 7 decimals
	// before composing, reproducing the CSS Color 4 reference matrices.
	// The default (false) produces the Lindbloom result.
	RoundedInverse bool
}

// cache memoizes adaptation matrices for the process lifetime. The key
// space is tiny (a few illuminants times a few methods), so entries are
// never evicted. Concurrent recomputation of the same key is idempotent.
var (
	cache   = map[string]math3.Matrix3{}
	cacheMu sync.RWMutex
)

func cacheKey(src, dst cie.Meta, method string, opts Options) string {
	end := func(m cie.Meta) string {
		obs := m.Observer
		if obs == 0 {
			obs = 2
		}
		k := strconv.Itoa(obs) + ":" + m.Illuminant
		if m.Method == cie.MethodASTME308 {
			k += ":astm"
		}
		if m.XY != nil {
			// explicit chromaticities key by value
			k += ":" + strconv.FormatFloat(m.XY[0], 'g', -1, 64) +
				"," + strconv.FormatFloat(m.XY[1], 'g', -1, 64)
		}
		return k
	}
	k := end(src) + ">" + end(dst) + "@" + method
	if opts.RoundedInverse {
		k += ":r7"
	}
	return k
}

// Matrix returns the 3x3 matrix adapting XYZ values from the src
// whitepoint to the dst whitepoint under the named method, memoized on
// the (observer, illuminant) identifiers of both endpoints plus the
// method name.
func Matrix(src, dst cie.Meta, method string) (math3.Matrix3, error) {
	return MatrixWith(src, dst, method, Options{})
}

// MatrixWith is [Matrix] with explicit [Options].
func MatrixWith(src, dst cie.Meta, method string, opts Options) (math3.Matrix3, error) {
	key := cacheKey(src, dst, method, opts)
	cacheMu.RLock()
	m, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		return m, nil
	}
	m, err := build(src, dst, method, opts)
	if err != nil {
		return math3.Matrix3{}, err
	}
	cacheMu.Lock()
	cache[key] = m // all writers agree on the value
	cacheMu.Unlock()
	return m, nil
}

// build constructs the adaptation matrix: both whitepoints are
// transformed into cone response space, a diagonal gain matrix is
// formed from their ratio, and the result is M^-1 * D * M.
func build(src, dst cie.Meta, method string, opts Options) (math3.Matrix3, error) {
	methodsMu.RLock()
	cone, ok := methods[method]
	methodsMu.RUnlock()
	if !ok {
		return math3.Matrix3{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	ws, err := cie.Whitepoint(src)
	if err != nil {
		return math3.Matrix3{}, err
	}
	wd, err := cie.Whitepoint(dst)
	if err != nil {
		return math3.Matrix3{}, err
	}
	rs := math3.MulVector(cone, ws)
	rd := math3.MulVector(cone, wd)
	d := math3.Diagonal(rd.Div(rs))
	inv, err := cone.Inverse()
	if err != nil {
		return math3.Matrix3{}, err
	}
	if opts.RoundedInverse {
		inv = math3.Round(inv, 7)
	}
	return math3.Mul(inv, math3.Mul(d, cone)), nil
}

// Adapt transforms the given XYZ values from the src illuminant to the
// dst illuminant under the named method (typically [Bradford]).
func Adapt(v math3.Vector3, src, dst cie.Meta, method string) (math3.Vector3, error) {
	m, err := Matrix(src, dst, method)
	if err != nil {
		return math3.Vector3{}, err
	}
	return math3.MulVector(m, v), nil
}
