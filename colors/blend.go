// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// AlphaBlend composites the given colors with Porter-Duff source-over,
// in order. A single color is blended over an opaque white backdrop;
// otherwise the first color is the backdrop. Channels are folded at
// 8-bit resolution, quantizing after each step, and the result is
// opaque.
func AlphaBlend(cs ...RGB) RGB {
	if len(cs) == 0 {
		return RGB{R: 1, G: 1, B: 1, A: 1}
	}
	dst := RGB{R: 1, G: 1, B: 1, A: 1}
	srcs := cs
	if len(cs) > 1 {
		dst = cs[0]
		srcs = cs[1:]
	}
	q := func(v float64) float64 { return math.Round(v*255) / 255 }
	r, g, b, a := q(dst.R), q(dst.G), q(dst.B), dst.A
	for _, src := range srcs {
		sa := src.A
		r = q(q(src.R)*sa + r*a*(1-sa))
		g = q(q(src.G)*sa + g*a*(1-sa))
		b = q(q(src.B)*sa + b*a*(1-sa))
		a = 1
	}
	return RGB{R: r, G: g, B: b, A: a}
}
