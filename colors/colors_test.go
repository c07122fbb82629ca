// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, color.RGBA{40, 50, 60, 255}, FromRGB(40, 50, 60))
	assert.Equal(t, color.RGBA{40, 50, 60, 70}, FromRGBA(40, 50, 60, 70))
	assert.Equal(t, color.RGBA{90, 90, 90, 255}, FromGray(90))
	assert.Equal(t, color.RGBA{0, 0, 0, 96}, BlackAlpha(96))
	assert.Equal(t, color.RGBA{96, 96, 96, 96}, WhiteAlpha(96))
	assert.Equal(t, color.RGBA{5, 5, 5, 0}, AdditiveLuminance(5))
}

func TestIsFullyTransparent(t *testing.T) {
	assert.True(t, IsFullyTransparent(Transparent))
	assert.False(t, IsFullyTransparent(AdditiveLuminance(1)))
	assert.False(t, IsFullyTransparent(Black))
}

func TestApplyOpacity(t *testing.T) {
	c := FromRGBA(100, 200, 50, 255)

	assert.Equal(t, c, ApplyOpacity(c, 1))
	assert.Equal(t, c, ApplyOpacity(c, 1.5))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(c, 0))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(c, -0.2))

	half := ApplyOpacity(c, 0.5)
	assert.Equal(t, color.RGBA{50, 100, 25, 128}, half)

	// additive colors stay additive: alpha remains 0
	add := ApplyOpacity(AdditiveLuminance(100), 0.5)
	assert.Equal(t, uint8(0), add.A)
	assert.Equal(t, uint8(50), add.R)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#000000", AsHex(Black))
	assert.Equal(t, "#ffffff", AsHex(White))
	assert.Equal(t, "#5aaaff", AsHex(FromRGB(90, 170, 255)))
	// fully transparent still renders its raw channels
	assert.Equal(t, "#050505", AsHex(AdditiveLuminance(5)))
}

func TestBlendEndpoints(t *testing.T) {
	a := FromRGB(10, 20, 30)
	b := FromRGB(200, 100, 0)
	assert.Equal(t, a, Blend(0, a, b))
	assert.Equal(t, b, Blend(100, a, b))
	// out of range percents clamp
	assert.Equal(t, a, Blend(-50, a, b))
	assert.Equal(t, b, Blend(250, a, b))
}

func TestBlendAlpha(t *testing.T) {
	a := FromRGBA(100, 100, 100, 200)
	b := FromRGBA(100, 100, 100, 100)
	m := Blend(50, a, b)
	assert.Equal(t, uint8(150), m.A)
}

func TestTintTowardsOpaque(t *testing.T) {
	c := FromRGB(100, 200, 60)
	target := FromGray(40)
	got := TintTowards(c, target)
	assert.Equal(t, color.RGBA{70, 120, 50, 255}, got)
}

func TestTintTowardsTransparent(t *testing.T) {
	got := TintTowards(AdditiveLuminance(100), FromGray(40))
	assert.Equal(t, color.RGBA{50, 50, 50, 0}, got)
}

func TestTintTowardsTranslucent(t *testing.T) {
	c := FromRGBA(100, 100, 100, 128)
	target := FromGray(200)
	// div = 2*255/128 = 3, so each channel is c/2 + 200/3, alpha halves
	got := TintTowards(c, target)
	assert.Equal(t, color.RGBA{116, 116, 116, 64}, got)
}
