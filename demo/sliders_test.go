// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"testing"

	"cogentcore.org/imstyle/abilities"
	"cogentcore.org/imstyle/states"
	"cogentcore.org/imstyle/styles"
	"github.com/stretchr/testify/assert"
)

func TestSlidersDefaults(t *testing.T) {
	sl := NewSliders()
	assert.Equal(t, float64(0), sl.Min)
	assert.Equal(t, float64(10000), sl.Max)
	assert.True(t, sl.Logarithmic)
	assert.Equal(t, ClampAlways, sl.Clamping)
	assert.Nil(t, sl.HandleShape)
}

func TestSetValueClamping(t *testing.T) {
	sl := NewSliders()

	sl.SetValue(20000)
	assert.Equal(t, float64(10000), sl.Value)
	sl.SetValue(-5)
	assert.Equal(t, float64(0), sl.Value)

	sl.Clamping = ClampNever
	sl.SetValue(20000)
	assert.Equal(t, float64(20000), sl.Value)

	sl.Integer = true
	sl.SetValue(3.7)
	assert.Equal(t, float64(4), sl.Value)
}

func TestFormatValue(t *testing.T) {
	st := styles.NewStyle()
	sl := NewSliders()

	sl.SetValue(10)
	assert.Equal(t, "10.0", sl.FormatValue(st))

	sl.SetValue(0.125)
	assert.Equal(t, "0.125", sl.FormatValue(st))

	sl.Integer = true
	sl.SetValue(42.4)
	assert.Equal(t, "42", sl.FormatValue(st))

	// a custom style formatter feeds through
	st.NumberFormatter = styles.NewNumberFormatter(
		func(value float64, minDecimals, maxDecimals int) string {
			return "n/a"
		})
	assert.Equal(t, "n/a", sl.FormatValue(st))
}

func TestEffectiveHandleShape(t *testing.T) {
	st := styles.NewStyle()
	sl := NewSliders()

	assert.Equal(t, styles.CircleHandle(), sl.EffectiveHandleShape(st))

	st.Visuals.HandleShape = styles.RectHandle(1)
	assert.Equal(t, styles.RectHandle(1), sl.EffectiveHandleShape(st))

	hs := styles.RectHandle(0.5)
	sl.HandleShape = &hs
	assert.Equal(t, hs, sl.EffectiveHandleShape(st))
}

func TestEffectiveTrailingFill(t *testing.T) {
	st := styles.NewStyle()
	sl := NewSliders()
	assert.False(t, sl.EffectiveTrailingFill(st))

	st.Visuals.SliderTrailingFill = true
	assert.True(t, sl.EffectiveTrailingFill(st))

	st.Visuals.SliderTrailingFill = false
	sl.TrailingFill = true
	assert.True(t, sl.EffectiveTrailingFill(st))
}

func TestRailVisuals(t *testing.T) {
	st := styles.NewStyle()
	sl := NewSliders()
	r := styles.WidgetState{
		Abilities: abilities.Of(abilities.Slideable),
		States:    states.Of(states.Active),
	}
	assert.Same(t, &st.Visuals.Widgets.Active, sl.RailVisuals(st, r))
}
