// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/imstyle/mat32"
)

// Stroke describes the width and color of a painted line or outline.
// A zero width or fully transparent color means nothing is painted.
type Stroke struct {

	// Width is the stroke width in scene units.
	Width float32

	// Color is the stroke color.
	Color color.RGBA
}

// NewStroke returns a new [Stroke] with the given width and color.
func NewStroke(width float32, clr color.RGBA) Stroke {
	return Stroke{Width: width, Color: clr}
}

// IsEmpty reports whether nothing would be painted by this stroke.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color == color.RGBA{}
}

// CornerRadius is the rounding of each corner of a rectangle,
// in scene units.
type CornerRadius struct {
	NW float32
	NE float32
	SW float32
	SE float32
}

// SameRadius returns a [CornerRadius] with all four corners set to
// the given value.
func SameRadius(r float32) CornerRadius {
	return CornerRadius{NW: r, NE: r, SW: r, SE: r}
}

// Shadow is a drop shadow behind a window or popup.
type Shadow struct {

	// Offset is how much the shadow is offset from the element.
	Offset mat32.Vec2

	// Blur is the blur radius: higher values give softer shadows.
	Blur float32

	// Spread widens the shadow beyond the element's rectangle.
	Spread float32

	// Color is the shadow color, usually translucent black.
	Color color.RGBA
}

// Margin is the transparent spacing around each side of a box,
// in scene units.
type Margin struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

// SameMargin returns a [Margin] with all four sides set to the given
// value.
func SameMargin(m float32) Margin {
	return Margin{Left: m, Right: m, Top: m, Bottom: m}
}

// Size returns the total extra size the margin adds on each axis.
func (m Margin) Size() mat32.Vec2 {
	return mat32.V2(m.Left+m.Right, m.Top+m.Bottom)
}
