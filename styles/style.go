// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles implements the theme model for an immediate-mode
// GUI: a [Style] aggregate of spacing, interaction timing, and the
// [Visuals] color/shape theme, with per-widget-state resolution of
// paint parameters. A frame-building routine holds one Style; each
// widget, after computing its interaction [Response], asks the Style
// to resolve a [WidgetVisuals] for that response, and resolves any
// text style key to a [fonts.Font]. All resolution is pure and
// synchronous, on the thread that owns the UI context.
package styles

import (
	"log/slog"
	"slices"

	"cogentcore.org/imstyle/fonts"
	"github.com/jinzhu/copier"
)

// Style specifies the look and feel of the GUI: one complete theme.
// It is constructed once per theme context, optionally mutated in
// place by host code, read (never mutated) during per-widget
// resolution, and replaced wholesale on theme switch.
type Style struct {

	// OverrideTextStyle, if set, changes the default [TextStyle] for
	// all widgets. An explicit per-widget text style takes precedence
	// over this.
	OverrideTextStyle *TextStyle

	// OverrideFont, if set, changes the font family and size for all
	// widgets, taking precedence over OverrideTextStyle.
	OverrideFont *fonts.Font

	// OverrideTextVAlign, if set, is how to vertically align text.
	// When nil, alignment depends on the current layout.
	OverrideTextVAlign *Align

	// TextStyles maps each [TextStyle] to the [fonts.Font] to use for
	// it. It must contain at least the five canonical keys, which
	// [DefaultTextStyles] provides. Use [TextStyle.Resolve] to look
	// something up, and [Style.TextStyleKeys] for deterministic
	// enumeration.
	TextStyles map[TextStyle]fonts.Font

	// DragValueTextStyle is the style used for numeric-entry widget
	// text.
	DragValueTextStyle TextStyle

	// NumberFormatter is how numbers are formatted as strings in
	// numeric-entry widgets. Override it to e.g. add thousands
	// separators. It is never serialized: loading a style resets it
	// to the default formatter.
	NumberFormatter NumberFormatter

	// Wrap determines whether text should wrap.
	//
	// Deprecated: use WrapMode instead. When WrapMode is nil, a
	// non-nil Wrap still takes effect: true means [WrapModeWrap] and
	// false means [WrapModeExtend].
	Wrap *bool

	// WrapMode, if set, is the default for whether text wraps,
	// truncates, or extends at the right edge of its container.
	// When nil, the layout decides.
	WrapMode *TextWrapMode

	// Spacing is the sizes and distances between widgets.
	Spacing Spacing

	// Interaction is how and when interaction happens.
	Interaction Interaction

	// Visuals is the color and shape theme.
	Visuals Visuals

	// AnimationTime is how many seconds a typical animation lasts.
	AnimationTime float32

	// ExplanationTooltips shows tooltips explaining widgets when
	// hovered.
	ExplanationTooltips bool

	// URLInTooltip shows the URL of hyperlinks in a tooltip when
	// hovered.
	URLInTooltip bool

	// AlwaysScrollTheOnlyDirection allows horizontal scrolling
	// without a modifier key when scrolling is enabled for only one
	// direction.
	AlwaysScrollTheOnlyDirection bool

	// ScrollAnimation is the animation used when programmatically
	// scrolling.
	ScrollAnimation ScrollAnimation

	// CompactMenuStyle uses a more compact style for menus.
	CompactMenuStyle bool
}

// Defaults sets the default style, with dark visuals.
func (s *Style) Defaults() {
	s.OverrideTextStyle = nil
	s.OverrideFont = nil
	va := Center
	s.OverrideTextVAlign = &va
	s.TextStyles = DefaultTextStyles()
	s.DragValueTextStyle = Button
	s.NumberFormatter = DefaultNumberFormatter()
	s.Wrap = nil
	s.WrapMode = nil
	s.Spacing.Defaults()
	s.Interaction.Defaults()
	s.Visuals = DarkVisuals()
	s.AnimationTime = 1.0 / 12.0
	s.ExplanationTooltips = false
	s.URLInTooltip = false
	s.AlwaysScrollTheOnlyDirection = false
	s.ScrollAnimation.Defaults()
	s.CompactMenuStyle = true
}

// NewStyle returns a new default [Style], which uses the dark theme.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// NewDarkStyle returns a new [Style] using the dark theme preset.
func NewDarkStyle() *Style {
	return NewStyle()
}

// NewLightStyle returns a new [Style] using the light theme preset.
func NewLightStyle() *Style {
	s := NewStyle()
	s.Visuals = LightVisuals()
	return s
}

// Interact returns the visuals to use for an interactive widget with
// the given response. You must already have a response: space must be
// allocated and interaction computed before painting the widget.
func (s *Style) Interact(r Response) *WidgetVisuals {
	return s.Visuals.Widgets.Resolve(r)
}

// InteractSelectable is [Style.Interact] for toggle-like widgets
// (checkboxes, selectable list rows). When selected, the resolved
// visuals are copied with both background fills replaced by the
// selection fill and the foreground stroke replaced by the selection
// stroke; the background stroke is left untouched.
func (s *Style) InteractSelectable(r Response, selected bool) WidgetVisuals {
	wv := *s.Visuals.Widgets.Resolve(r)
	if selected {
		wv.WeakBgFill = s.Visuals.Selection.BgFill
		wv.BgFill = s.Visuals.Selection.BgFill
		wv.FgStroke = s.Visuals.Selection.Stroke
	}
	return wv
}

// Noninteractive returns the visuals to use for non-interactive
// widgets.
func (s *Style) Noninteractive() *WidgetVisuals {
	return &s.Visuals.Widgets.Noninteractive
}

// TextStyleKeys returns all known text style keys, sorted in the
// canonical order (see [TextStyle.Compare]) for deterministic
// enumeration.
func (s *Style) TextStyleKeys() []TextStyle {
	keys := make([]TextStyle, 0, len(s.TextStyles))
	for ts := range s.TextStyles {
		keys = append(keys, ts)
	}
	slices.SortFunc(keys, TextStyle.Compare)
	return keys
}

// ResolveFont resolves the given text style key against this style;
// see [TextStyle.Resolve].
func (s *Style) ResolveFont(ts TextStyle) fonts.Font {
	return ts.Resolve(s)
}

// ResolveFontSelection resolves the given font selection against
// this style; see [FontSelection.Resolve].
func (s *Style) ResolveFontSelection(fs FontSelection) fonts.Font {
	return fs.Resolve(s)
}

// WrapModeOr resolves the text wrap mode: the explicit WrapMode wins,
// else the deprecated Wrap flag is honored, else the given layout
// default is returned.
func (s *Style) WrapModeOr(layoutDefault TextWrapMode) TextWrapMode {
	if s.WrapMode != nil {
		return *s.WrapMode
	}
	if s.Wrap != nil {
		if *s.Wrap {
			return WrapModeWrap
		}
		return WrapModeExtend
	}
	return layoutDefault
}

// Clone returns a deep copy of this style. The number formatter
// function value is shared, not copied: it is an immutable callable,
// and sharing preserves its identity-based equality.
func (s *Style) Clone() *Style {
	cp := &Style{}
	err := copier.CopyWithOption(cp, s, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("styles.Style.Clone: copy failed", "err", err)
	}
	cp.NumberFormatter = s.NumberFormatter
	return cp
}

// StyleModifier is a stored modification of a [Style], applied with
// [StyleModifier.Apply]. A nil modifier does nothing.
type StyleModifier func(s *Style)

// Apply applies the modification to the given style.
func (m StyleModifier) Apply(s *Style) {
	if m != nil {
		m(s)
	}
}
