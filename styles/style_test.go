// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"cogentcore.org/imstyle/fonts"
	"cogentcore.org/imstyle/states"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := NewStyle()
	assert.True(t, s.Visuals.DarkMode)
	assert.Equal(t, Button, s.DragValueTextStyle)
	assert.Equal(t, float32(1.0/12.0), s.AnimationTime)
	assert.True(t, s.CompactMenuStyle)
	if assert.NotNil(t, s.OverrideTextVAlign) {
		assert.Equal(t, Center, *s.OverrideTextVAlign)
	}
	assert.Nil(t, s.OverrideTextStyle)
	assert.Nil(t, s.OverrideFont)
	assert.True(t, s.NumberFormatter.IsDefault() || s.NumberFormatter.Equal(DefaultNumberFormatter()))
}

func TestPresets(t *testing.T) {
	assert.True(t, NewDarkStyle().Visuals.DarkMode)
	assert.False(t, NewLightStyle().Visuals.DarkMode)
}

func TestTextStyleKeys(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, []TextStyle{Small, Body, Monospace, Button, Heading}, s.TextStyleKeys())

	s.TextStyles["Context"] = fonts.New(14, fonts.Proportional)
	s.TextStyles["Arrow"] = fonts.New(10, fonts.Proportional)
	assert.Equal(t,
		[]TextStyle{Small, Body, Monospace, Button, Heading, "Arrow", "Context"},
		s.TextStyleKeys())
}

func TestPresetsContainCanonicalKeys(t *testing.T) {
	for _, s := range []*Style{NewDarkStyle(), NewLightStyle()} {
		for _, ts := range []TextStyle{Small, Body, Monospace, Button, Heading} {
			assert.Contains(t, s.TextStyles, ts)
			assert.NotPanics(t, func() { ts.Resolve(s) })
		}
	}
}

func TestResolveMissingStylePanics(t *testing.T) {
	s := NewStyle()
	assert.PanicsWithValue(t,
		`styles: failed to find "Caption" in Style.TextStyles; available styles: [Small Body Monospace Button Heading]`,
		func() { TextStyle("Caption").Resolve(s) })
}

func TestResolveFontSelection(t *testing.T) {
	s := NewStyle()

	// the default selection is Body
	assert.Equal(t, s.TextStyles[Body], s.ResolveFontSelection(FontSelection{}))

	// a style-wide text style override changes the default
	h := Heading
	s.OverrideTextStyle = &h
	assert.Equal(t, s.TextStyles[Heading], s.ResolveFontSelection(FontSelection{}))

	// a style-wide font override wins over the text style override
	f := fonts.New(20, fonts.Monospace)
	s.OverrideFont = &f
	assert.Equal(t, f, s.ResolveFontSelection(FontSelection{}))

	// an explicit selection wins over everything style-wide
	assert.Equal(t, s.TextStyles[Small], s.ResolveFontSelection(SelectStyle(Small)))
	exp := fonts.New(7, fonts.Proportional)
	assert.Equal(t, exp, s.ResolveFontSelection(SelectFont(exp)))
}

func TestResolveFont(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, fonts.New(12, fonts.Monospace), s.ResolveFont(Monospace))
}

func TestInteract(t *testing.T) {
	s := NewStyle()
	assert.Same(t, &s.Visuals.Widgets.Hovered, s.Interact(clickable(states.Hovered)))
	assert.Same(t, &s.Visuals.Widgets.Noninteractive, s.Noninteractive())
}

func TestInteractSelectable(t *testing.T) {
	s := NewStyle()
	r := clickable(states.Hovered)

	plain := s.InteractSelectable(r, false)
	assert.Equal(t, s.Visuals.Widgets.Hovered, plain)

	sel := s.InteractSelectable(r, true)
	assert.Equal(t, s.Visuals.Selection.BgFill, sel.BgFill)
	assert.Equal(t, s.Visuals.Selection.BgFill, sel.WeakBgFill)
	assert.Equal(t, s.Visuals.Selection.Stroke, sel.FgStroke)
	// the background stroke and geometry still come from the state
	assert.Equal(t, s.Visuals.Widgets.Hovered.BgStroke, sel.BgStroke)
	assert.Equal(t, s.Visuals.Widgets.Hovered.CornerRadius, sel.CornerRadius)
	assert.Equal(t, s.Visuals.Widgets.Hovered.Expansion, sel.Expansion)
}

func TestWrapModeOr(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, WrapModeTruncate, s.WrapModeOr(WrapModeTruncate))

	wrap := false
	s.Wrap = &wrap
	assert.Equal(t, WrapModeExtend, s.WrapModeOr(WrapModeTruncate))
	wrap = true
	assert.Equal(t, WrapModeWrap, s.WrapModeOr(WrapModeTruncate))

	// the explicit mode wins over the deprecated flag
	wm := WrapModeTruncate
	s.WrapMode = &wm
	assert.Equal(t, WrapModeTruncate, s.WrapModeOr(WrapModeExtend))
}

func TestClone(t *testing.T) {
	s := NewStyle()
	s.TextStyles["Custom"] = fonts.New(11, fonts.Proportional)

	cp := s.Clone()
	assert.NotSame(t, s, cp)
	assert.True(t, cp.NumberFormatter.Equal(s.NumberFormatter))

	// deep copy: mutating the clone's map leaves the original alone
	cp.TextStyles[Body] = fonts.New(99, fonts.Monospace)
	assert.Equal(t, fonts.New(12.5, fonts.Proportional), s.TextStyles[Body])
	assert.Contains(t, cp.TextStyles, TextStyle("Custom"))

	// pointer fields are copied, not shared
	if assert.NotNil(t, cp.OverrideTextVAlign) {
		assert.NotSame(t, s.OverrideTextVAlign, cp.OverrideTextVAlign)
	}
}

func TestStyleModifier(t *testing.T) {
	s := NewStyle()

	var m StyleModifier
	m.Apply(s) // nil modifier is a no-op

	m = func(s *Style) { s.AnimationTime = 0 }
	m.Apply(s)
	assert.Equal(t, float32(0), s.AnimationTime)
}

func TestTextStyleCompare(t *testing.T) {
	assert.Equal(t, -1, Small.Compare(Body))
	assert.Equal(t, 1, Heading.Compare(Button))
	assert.Equal(t, 0, Body.Compare(Body))
	assert.Equal(t, -1, Heading.Compare(TextStyle("Aardvark")))
	assert.Equal(t, 1, TextStyle("Zebra").Compare(TextStyle("Aardvark")))
	assert.True(t, Body.IsCanonical())
	assert.False(t, TextStyle("Zebra").IsCanonical())
}
