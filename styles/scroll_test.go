// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollStyleDefaults(t *testing.T) {
	var ss ScrollStyle
	ss.Defaults()

	var floating ScrollStyle
	floating.FloatingBars()
	assert.Equal(t, floating, ss)
	assert.True(t, ss.Floating)
}

func TestScrollAllocatedWidth(t *testing.T) {
	var ss ScrollStyle

	// floating bars normally allocate nothing
	ss.FloatingBars()
	assert.Equal(t, float32(0), ss.AllocatedWidth())
	ss.FloatingAllocatedWidth = 6
	assert.Equal(t, float32(6), ss.AllocatedWidth())

	// solid bars allocate margins plus bar width
	ss.SolidBars()
	assert.Equal(t, float32(4+6+0), ss.AllocatedWidth())
	ss.BarOuterMargin = 2
	assert.Equal(t, float32(12), ss.AllocatedWidth())

	ss.ThinBars()
	assert.Equal(t, float32(6), ss.AllocatedWidth())
}

func TestScrollAnimationDurationFor(t *testing.T) {
	var sa ScrollAnimation
	sa.Defaults()

	// short scrolls clamp to the minimum duration
	assert.Equal(t, float32(0.1), sa.DurationFor(10))
	// long scrolls clamp to the maximum
	assert.Equal(t, float32(0.3), sa.DurationFor(100000))
	assert.Equal(t, float32(0.3), sa.DurationFor(-100000))
	// in between, duration is distance over speed
	assert.Equal(t, float32(0.2), sa.DurationFor(200))
}

func TestScrollAnimationNone(t *testing.T) {
	sa := ScrollAnimationNone()
	assert.Equal(t, float32(0), sa.DurationFor(0))
	assert.Equal(t, float32(0), sa.DurationFor(1e9))
}

func TestScrollAnimationFixedDuration(t *testing.T) {
	sa := ScrollAnimationDuration(0.25)
	assert.Equal(t, float32(0.25), sa.DurationFor(1))
	assert.Equal(t, float32(0.25), sa.DurationFor(1e9))
}

func TestScrollAnimationText(t *testing.T) {
	var def ScrollAnimation
	def.Defaults()

	for _, sa := range []ScrollAnimation{
		def,
		ScrollAnimationNone(),
		ScrollAnimationDuration(0.2),
	} {
		b, err := sa.MarshalText()
		assert.NoError(t, err)
		var got ScrollAnimation
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, sa, got, "text %q", b)
	}

	b, err := ScrollAnimationNone().MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "+Inf 0 0", string(b))

	var sa ScrollAnimation
	assert.Error(t, sa.UnmarshalText([]byte("1000 0.1")))
	assert.Error(t, sa.UnmarshalText([]byte("fast 0.1 0.3")))
}
