// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName returns the named SVG 1.1 / CSS color, e.g. "navy" or
// "LightSeaGreen". Names are case-insensitive.
func FromName(name string) (RGB, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, fmt.Errorf("colors: unknown color name %q", name)
	}
	return RGB{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}, nil
}
