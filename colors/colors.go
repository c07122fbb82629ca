// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color constructors and operations used
// by the styling system. Colors are [color.RGBA] values with
// premultiplied alpha, per the standard library convention.
package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Transparent is the fully transparent color.
	Transparent = color.RGBA{}

	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA returns the given color as a premultiplied [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromRGB returns an opaque color from the given red, green, and
// blue components.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromRGBA returns a color from the given premultiplied components.
func FromRGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// FromGray returns an opaque gray color with the given luminance.
func FromGray(g uint8) color.RGBA {
	return color.RGBA{g, g, g, 255}
}

// BlackAlpha returns black with the given alpha.
func BlackAlpha(a uint8) color.RGBA {
	return color.RGBA{0, 0, 0, a}
}

// WhiteAlpha returns premultiplied white with the given alpha.
func WhiteAlpha(a uint8) color.RGBA {
	return color.RGBA{a, a, a, a}
}

// AdditiveLuminance returns a purely additive color with the given
// luminance and zero alpha, which brightens whatever it is painted
// over without covering it.
func AdditiveLuminance(l uint8) color.RGBA {
	return color.RGBA{l, l, l, 0}
}

// IsFullyTransparent reports whether the color is the fully
// transparent color (all components zero, including additive ones).
func IsFullyTransparent(c color.RGBA) bool {
	return c == color.RGBA{}
}

// ApplyOpacity multiplies all components of the given premultiplied
// color by the given factor, clamped to [0, 1].
func ApplyOpacity(c color.RGBA, opacity float32) color.RGBA {
	switch {
	case opacity >= 1:
		return c
	case opacity <= 0:
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R)*opacity + 0.5),
		G: uint8(float32(c.G)*opacity + 0.5),
		B: uint8(float32(c.B)*opacity + 0.5),
		A: uint8(float32(c.A)*opacity + 0.5),
	}
}

// AsHex returns the color as a #rrggbb hex string, for display and
// for terminal style engines.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 0 {
		return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
	}
	cf, ok := colorful.MakeColor(r)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
