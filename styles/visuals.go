// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"image/color"

	"cogentcore.org/imstyle/colors"
	"cogentcore.org/imstyle/cursors"
	"cogentcore.org/imstyle/mat32"
)

// WidgetVisuals is the resolved paint parameters for one widget
// interaction state. bg = background, fg = foreground.
type WidgetVisuals struct {

	// BgFill is the background color of widgets that must have a
	// background fill, such as the slider background, a checkbox
	// background, or a radio button background.
	// It must never be fully transparent.
	BgFill color.RGBA

	// WeakBgFill is the background color of widgets that can
	// optionally have a background fill, such as buttons.
	// It may be fully transparent.
	WeakBgFill color.RGBA

	// BgStroke is the surrounding rectangle stroke for things that
	// need it, like buttons and the box of the checkbox.
	BgStroke Stroke

	// CornerRadius is the rounding of button frames etc.
	CornerRadius CornerRadius

	// FgStroke is the stroke and text color of the interactive part
	// of a component: button text, slider grab, check-mark.
	FgStroke Stroke

	// Expansion makes the frame this much larger, in scene units.
	Expansion float32
}

// TextColor returns the text color for this state, which is the
// foreground stroke color.
func (wv *WidgetVisuals) TextColor() color.RGBA {
	return wv.FgStroke.Color
}

// Widgets is the visuals of widgets for the different states of
// interaction.
type Widgets struct {

	// Noninteractive is the style of a widget that you cannot
	// interact with. Noninteractive.BgStroke is the outline of
	// windows; Noninteractive.BgFill is the background color of
	// windows; Noninteractive.FgStroke is the normal text color.
	Noninteractive WidgetVisuals

	// Inactive is the style of an interactive widget, such as a
	// button, at rest.
	Inactive WidgetVisuals

	// Hovered is the style of an interactive widget while you hover
	// it, or when it is highlighted.
	Hovered WidgetVisuals

	// Active is the style of an interactive widget as you are
	// clicking or dragging it, or while it has keyboard focus.
	Active WidgetVisuals

	// Open is the style of a button that has an open menu beneath it,
	// such as a combo box. It is never produced by [Widgets.Resolve];
	// callers representing an open dropdown use it directly.
	Open WidgetVisuals
}

// Resolve classifies the given response into exactly one interaction
// state and returns its visuals. The precedence is strict and
// ordered: noninteractive first; then active (pointer down, focus, or
// just clicked); then hovered (hover or highlight); else inactive.
// A focused-but-not-hovered widget is therefore Active, never Hovered.
func (w *Widgets) Resolve(r Response) *WidgetVisuals {
	if !r.Interactive() {
		return &w.Noninteractive
	} else if r.PointerDownOn() || r.HasFocus() || r.Clicked() {
		return &w.Active
	} else if r.Hovered() || r.Highlighted() {
		return &w.Hovered
	}
	return &w.Inactive
}

// Selection is the fill and stroke used for selected text, selected
// rows, and other active items.
type Selection struct {
	BgFill color.RGBA
	Stroke Stroke
}

func darkSelection() Selection {
	return Selection{
		BgFill: colors.FromRGB(0, 92, 128),
		Stroke: NewStroke(1, colors.FromRGB(192, 222, 255)),
	}
}

func lightSelection() Selection {
	return Selection{
		BgFill: colors.FromRGB(144, 209, 255),
		Stroke: NewStroke(1, colors.FromRGB(0, 83, 125)),
	}
}

// HandleShapes are the kinds of [HandleShape].
type HandleShapes int32

const (
	// HandleCircle is a circular handle.
	HandleCircle HandleShapes = iota

	// HandleRect is a rectangular handle, with an aspect ratio.
	HandleRect
)

// HandleShape is the shape of the handle for sliders and similar
// widgets.
type HandleShape struct {

	// Shape is the kind of handle.
	Shape HandleShapes

	// AspectRatio is the width to height ratio of a [HandleRect]
	// handle; set below 1 to make it narrower. Must be positive.
	AspectRatio float32
}

// CircleHandle returns the circular handle shape.
func CircleHandle() HandleShape {
	return HandleShape{Shape: HandleCircle}
}

// RectHandle returns a rectangular handle shape with the given
// aspect ratio.
func RectHandle(aspectRatio float32) HandleShape {
	return HandleShape{Shape: HandleRect, AspectRatio: aspectRatio}
}

// NumericColorSpace determines how numeric color values are
// displayed to the user.
type NumericColorSpace int32

const (
	// GammaByte displays color components as gamma-space bytes, 0-255.
	GammaByte NumericColorSpace = iota

	// LinearFloat displays color components as linear-space floats, 0-1.
	LinearFloat
)

// AlphaFromCoverage controls how text glyph coverage is converted to
// alpha during rasterization.
type AlphaFromCoverage int32

const (
	// AlphaLinear maps coverage directly to alpha.
	// The default for light mode.
	AlphaLinear AlphaFromCoverage = iota

	// AlphaDarkModeBoost applies a perceptual boost that keeps thin
	// light-on-dark text from looking spindly.
	// The default for dark mode.
	AlphaDarkModeBoost
)

// TextCursorStyle is the look and feel of the text cursor.
type TextCursorStyle struct {

	// Stroke is the color and width of the text cursor.
	Stroke Stroke

	// Preview shows where the text cursor would be if you clicked.
	Preview bool

	// Blink makes the cursor blink.
	Blink bool

	// OnDuration is how long the cursor is visible when blinking,
	// in seconds.
	OnDuration float32

	// OffDuration is how long the cursor is invisible when blinking,
	// in seconds.
	OffDuration float32
}

// Defaults sets the dark mode text cursor defaults.
func (tc *TextCursorStyle) Defaults() {
	tc.Stroke = NewStroke(2, colors.FromRGB(192, 222, 255))
	tc.Preview = false
	tc.Blink = true
	tc.OnDuration = 0.5
	tc.OffDuration = 0.5
}

// Visuals is the full color and shape theme.
type Visuals struct {

	// DarkMode is true when the visuals are overall dark with light
	// text, and false when they are overall light with dark text.
	// Setting it does nothing by itself: it is a descriptive summary
	// of the rest of the settings, and no derived color computation
	// reads it.
	DarkMode bool

	// TextAlphaFromCoverage controls how text is rasterized.
	TextAlphaFromCoverage AlphaFromCoverage

	// OverrideTextColor overrides the text color for all text.
	// When nil, text color is the foreground stroke color of the
	// resolved widget state.
	OverrideTextColor *color.RGBA

	// WeakTextAlpha is how strong "weak" text is. Ignored when
	// OverrideWeakTextColor is set.
	WeakTextAlpha float32

	// OverrideWeakTextColor is the color of "weak" text. When nil,
	// it is [Visuals.TextColor] multiplied by WeakTextAlpha.
	OverrideWeakTextColor *color.RGBA

	// Widgets is the visual style of widgets per interaction state.
	Widgets Widgets

	// Selection is the fill and stroke for selected items.
	Selection Selection

	// HyperlinkColor is the color used for hyperlinks.
	HyperlinkColor color.RGBA

	// FaintBgColor is just barely different from the background
	// color, used for striped grids and tables.
	FaintBgColor color.RGBA

	// ExtremeBgColor is a very dark or light color for the
	// corresponding theme, used as the background of text edits,
	// scroll bars, and other things that need to look different from
	// other interactive stuff.
	ExtremeBgColor color.RGBA

	// OverrideTextEditBgColor is the background color of text edit
	// fields. When nil, ExtremeBgColor is used.
	OverrideTextEditBgColor *color.RGBA

	// CodeBgColor is the background color behind code-styled
	// monospaced labels.
	CodeBgColor color.RGBA

	// WarnFgColor is a good color for warning text.
	WarnFgColor color.RGBA

	// ErrorFgColor is a good color for error text.
	ErrorFgColor color.RGBA

	WindowCornerRadius CornerRadius
	WindowShadow       Shadow
	WindowFill         color.RGBA
	WindowStroke       Stroke

	// WindowHighlightTopmost highlights the topmost window.
	WindowHighlightTopmost bool

	MenuCornerRadius CornerRadius

	// PanelFill is the panel background color.
	PanelFill color.RGBA

	PopupShadow Shadow

	ResizeCornerSize float32

	// TextCursor is how the text cursor acts.
	TextCursor TextCursorStyle

	// ClipRectMargin allows child widgets right on the border to
	// still paint a stroke with some thickness. It should be at
	// least half the widest frame stroke plus the maximum
	// [WidgetVisuals.Expansion].
	ClipRectMargin float32

	// ButtonFrame shows a background behind buttons.
	ButtonFrame bool

	// CollapsingHeaderFrame shows a background behind collapsing
	// headers.
	CollapsingHeaderFrame bool

	// IndentHasLeftVline draws a vertical line left of indented
	// regions.
	IndentHasLeftVline bool

	// Striped is whether grids and tables are striped by default.
	Striped bool

	// SliderTrailingFill shows a trailing color behind a slider's
	// handle, up to the current value.
	SliderTrailingFill bool

	// HandleShape is the shape of slider handles.
	HandleShape HandleShape

	// InteractCursor, when set, is the cursor to switch to when
	// hovering an interactive widget.
	InteractCursor *cursors.Cursor

	// ImageLoadingSpinners shows a spinner when loading an image.
	ImageLoadingSpinners bool

	// NumericColorSpace is how to display numeric color values.
	NumericColorSpace NumericColorSpace

	// DisabledAlpha is how much the alpha of a disabled widget is
	// modified.
	DisabledAlpha float32
}

// Noninteractive returns the visuals for non-interactive widgets.
func (v *Visuals) Noninteractive() *WidgetVisuals {
	return &v.Widgets.Noninteractive
}

// TextColor returns the effective non-interactive text color:
// the override when set, else the Noninteractive foreground stroke
// color.
func (v *Visuals) TextColor() color.RGBA {
	if v.OverrideTextColor != nil {
		return *v.OverrideTextColor
	}
	return v.Widgets.Noninteractive.TextColor()
}

// WeakTextColor returns the effective weak text color: the explicit
// weak color when set, else [Visuals.TextColor] with its alpha
// multiplied by WeakTextAlpha.
func (v *Visuals) WeakTextColor() color.RGBA {
	if v.OverrideWeakTextColor != nil {
		return *v.OverrideWeakTextColor
	}
	return colors.ApplyOpacity(v.TextColor(), v.WeakTextAlpha)
}

// StrongTextColor returns the effective strong text color, which is
// the Active state's foreground stroke color.
func (v *Visuals) StrongTextColor() color.RGBA {
	return v.Widgets.Active.TextColor()
}

// TextEditBgColor returns the effective background color of text
// edit fields: the override when set, else ExtremeBgColor.
func (v *Visuals) TextEditBgColor() color.RGBA {
	if v.OverrideTextEditBgColor != nil {
		return *v.OverrideTextEditBgColor
	}
	return v.ExtremeBgColor
}

// Disable returns a "disabled" version of the given color, with its
// opacity multiplied by DisabledAlpha. If modifying opacity is
// undesirable, as when painting on non-uniform backgrounds, use
// [Visuals.GrayOut] instead.
func (v *Visuals) Disable(c color.RGBA) color.RGBA {
	return colors.ApplyOpacity(c, v.DisabledAlpha)
}

// GrayOut returns a "grayed out" version of the given color, blended
// toward the noninteractive weak background fill. Unlike
// [Visuals.Disable] it does not change the opacity.
func (v *Visuals) GrayOut(c color.RGBA) color.RGBA {
	return colors.TintTowards(c, v.Widgets.Noninteractive.WeakBgFill)
}

func darkWidgets() Widgets {
	return Widgets{
		Noninteractive: WidgetVisuals{
			WeakBgFill:   colors.FromGray(27),
			BgFill:       colors.FromGray(27),
			BgStroke:     NewStroke(1, colors.FromGray(60)),  // separators, indentation lines
			FgStroke:     NewStroke(1, colors.FromGray(140)), // normal text color
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
		Inactive: WidgetVisuals{
			WeakBgFill:   colors.FromGray(60), // button background
			BgFill:       colors.FromGray(60), // checkbox background
			BgStroke:     Stroke{},
			FgStroke:     NewStroke(1, colors.FromGray(180)), // button text
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
		Hovered: WidgetVisuals{
			WeakBgFill:   colors.FromGray(70),
			BgFill:       colors.FromGray(70),
			BgStroke:     NewStroke(1, colors.FromGray(150)), // e.g. hover over window edge or button
			FgStroke:     NewStroke(1.5, colors.FromGray(240)),
			CornerRadius: SameRadius(3),
			Expansion:    1,
		},
		Active: WidgetVisuals{
			WeakBgFill:   colors.FromGray(55),
			BgFill:       colors.FromGray(55),
			BgStroke:     NewStroke(1, colors.White),
			FgStroke:     NewStroke(2, colors.White),
			CornerRadius: SameRadius(2),
			Expansion:    1,
		},
		Open: WidgetVisuals{
			WeakBgFill:   colors.FromGray(45),
			BgFill:       colors.FromGray(27),
			BgStroke:     NewStroke(1, colors.FromGray(60)),
			FgStroke:     NewStroke(1, colors.FromGray(210)),
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
	}
}

func lightWidgets() Widgets {
	return Widgets{
		Noninteractive: WidgetVisuals{
			WeakBgFill:   colors.FromGray(248),
			BgFill:       colors.FromGray(248),
			BgStroke:     NewStroke(1, colors.FromGray(190)), // separators, indentation lines
			FgStroke:     NewStroke(1, colors.FromGray(80)),  // normal text color
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
		Inactive: WidgetVisuals{
			WeakBgFill:   colors.FromGray(230), // button background
			BgFill:       colors.FromGray(230), // checkbox background
			BgStroke:     Stroke{},
			FgStroke:     NewStroke(1, colors.FromGray(60)), // button text
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
		Hovered: WidgetVisuals{
			WeakBgFill:   colors.FromGray(220),
			BgFill:       colors.FromGray(220),
			BgStroke:     NewStroke(1, colors.FromGray(105)),
			FgStroke:     NewStroke(1.5, colors.Black),
			CornerRadius: SameRadius(3),
			Expansion:    1,
		},
		Active: WidgetVisuals{
			WeakBgFill:   colors.FromGray(165),
			BgFill:       colors.FromGray(165),
			BgStroke:     NewStroke(1, colors.Black),
			FgStroke:     NewStroke(2, colors.Black),
			CornerRadius: SameRadius(2),
			Expansion:    1,
		},
		Open: WidgetVisuals{
			WeakBgFill:   colors.FromGray(220),
			BgFill:       colors.FromGray(220),
			BgStroke:     NewStroke(1, colors.FromGray(160)),
			FgStroke:     NewStroke(1, colors.Black),
			CornerRadius: SameRadius(2),
			Expansion:    0,
		},
	}
}

// DarkVisuals returns the default dark theme.
func DarkVisuals() Visuals {
	v := Visuals{
		DarkMode:              true,
		TextAlphaFromCoverage: AlphaDarkModeBoost,
		WeakTextAlpha:         0.6,
		Widgets:               darkWidgets(),
		Selection:             darkSelection(),
		HyperlinkColor:        colors.FromRGB(90, 170, 255),
		FaintBgColor:          colors.AdditiveLuminance(5), // visible, but barely so
		ExtremeBgColor:        colors.FromGray(10),         // e.g. text edit background
		CodeBgColor:           colors.FromGray(64),
		WarnFgColor:           colors.FromRGB(255, 143, 0), // orange
		ErrorFgColor:          colors.FromRGB(255, 0, 0),   // red

		WindowCornerRadius: SameRadius(6),
		WindowShadow: Shadow{
			Offset: mat32.V2(10, 20),
			Blur:   15,
			Color:  colors.BlackAlpha(96),
		},
		WindowFill:             colors.FromGray(27),
		WindowStroke:           NewStroke(1, colors.FromGray(60)),
		WindowHighlightTopmost: true,

		MenuCornerRadius: SameRadius(6),

		PanelFill: colors.FromGray(27),

		PopupShadow: Shadow{
			Offset: mat32.V2(6, 10),
			Blur:   8,
			Color:  colors.BlackAlpha(96),
		},

		ResizeCornerSize: 12,

		ClipRectMargin:        3, // at least half the widest frame stroke + max expansion
		ButtonFrame:           true,
		CollapsingHeaderFrame: false,
		IndentHasLeftVline:    true,

		Striped: false,

		SliderTrailingFill: false,
		HandleShape:        CircleHandle(),

		ImageLoadingSpinners: true,

		NumericColorSpace: GammaByte,
		DisabledAlpha:     0.5,
	}
	v.TextCursor.Defaults()
	return v
}

// LightVisuals returns the default light theme. It is defined as a
// set of overrides applied to [DarkVisuals], so any field added to
// the dark theme is inherited here unless explicitly recolored.
func LightVisuals() Visuals {
	v := DarkVisuals()
	v.DarkMode = false
	v.TextAlphaFromCoverage = AlphaLinear
	v.Widgets = lightWidgets()
	v.Selection = lightSelection()
	v.HyperlinkColor = colors.FromRGB(0, 155, 255)
	v.ExtremeBgColor = colors.FromGray(255)
	v.CodeBgColor = colors.FromGray(230)
	// a warning color that still pops on a bright background
	v.WarnFgColor = colors.FromRGB(255, 100, 0)
	v.WindowShadow.Color = colors.BlackAlpha(25)
	v.WindowFill = colors.FromGray(248)
	v.WindowStroke = NewStroke(1, colors.FromGray(190))
	v.PanelFill = colors.FromGray(248)
	v.PopupShadow.Color = colors.BlackAlpha(25)
	v.TextCursor.Stroke = NewStroke(2, colors.FromRGB(0, 83, 125))
	return v
}
