// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/imstyle/mat32"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns a color that is the given percent blend between the
// first and second color: 10 = 10% of the second and 90% of the
// first, etc. RGB channels are blended in RGB space; alpha is
// interpolated linearly.
func Blend(pct float32, x, y color.Color) color.RGBA {
	xr := AsRGBA(x)
	yr := AsRGBA(y)
	t := mat32.Clamp(pct, 0, 100) / 100
	a := uint8((1-t)*float32(xr.A) + t*float32(yr.A) + 0.5)
	cx, okx := colorful.MakeColor(xr)
	cy, oky := colorful.MakeColor(yr)
	if !okx || !oky {
		// one side is fully transparent; fall back to channel lerp
		return color.RGBA{
			R: uint8((1-t)*float32(xr.R) + t*float32(yr.R) + 0.5),
			G: uint8((1-t)*float32(xr.G) + t*float32(yr.G) + 0.5),
			B: uint8((1-t)*float32(xr.B) + t*float32(yr.B) + 0.5),
			A: a,
		}
	}
	m := cx.BlendRgb(cy, float64(t)).Clamped()
	r, g, b := m.RGB255()
	af := float32(a) / 255
	return color.RGBA{
		R: uint8(float32(r)*af + 0.5),
		G: uint8(float32(g)*af + 0.5),
		B: uint8(float32(b)*af + 0.5),
		A: a,
	}
}

// TintTowards shifts the given color halfway towards the target
// color, compensating for translucency so that the result reads as a
// perceptual desaturation rather than an alpha fade. Used for graying
// out content painted on non-uniform backgrounds.
func TintTowards(c, target color.RGBA) color.RGBA {
	r, g, b, a := c.R, c.G, c.B, c.A
	if a == 0 {
		r /= 2
		g /= 2
		b /= 2
	} else if a < 170 {
		// cheapish, and looks ok
		div := uint8(2 * 255 / int32(a))
		r = r/2 + target.R/div
		g = g/2 + target.G/div
		b = b/2 + target.B/div
		a /= 2
	} else {
		r = r/2 + target.R/2
		g = g/2 + target.G/2
		b = b/2 + target.B/2
	}
	return color.RGBA{r, g, b, a}
}
