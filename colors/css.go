// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strconv"
)

// cssAlpha formats alpha verbatim with the shortest
// round-trippable representation.
func cssAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// CSS formats the color as a CSS rgba() string with 0-255 rounded
// integer channels and the alpha verbatim.
func (c RGB) CSS() string {
	r, g, b, _ := c.Values()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, cssAlpha(c.A))
}

// CSS formats the color as a CSS hsla() string with the hue in degrees,
// saturation and lightness as rounded percentages, and the alpha
// verbatim.
func (c HSL) CSS() string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)",
		int(wrapHue(c.H)), int(math.Round(c.S*100)), int(math.Round(c.L*100)), cssAlpha(c.A))
}
