// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "cogentcore.org/imstyle/mat32"

// Spacing controls the sizes of and distances between widgets,
// in scene units.
type Spacing struct {

	// ItemSpacing is the horizontal and vertical spacing between
	// widgets. It is inserted after adding a widget, so to increase
	// the spacing between widgets A and B, change it before adding A.
	ItemSpacing mat32.Vec2

	// WindowMargin is the margin within a window frame.
	WindowMargin Margin

	// ButtonPadding is added on each side of a button's text.
	ButtonPadding mat32.Vec2

	// MenuMargin is the margin within a menu frame.
	MenuMargin Margin

	// Indent is how much to indent collapsing regions etc.
	Indent float32

	// InteractSize is the minimum size of a numeric-entry widget,
	// color picker button, and other small widgets. InteractSize.Y
	// is the default height of buttons, sliders, etc. Anything
	// clickable should be at least this size.
	InteractSize mat32.Vec2

	// SliderWidth is the default width of a slider.
	SliderWidth float32

	// SliderRailHeight is the default rail height of a slider.
	SliderRailHeight float32

	// ComboWidth is the default (minimum) width of a combo box.
	ComboWidth float32

	// TextEditWidth is the default width of a text edit field.
	TextEditWidth float32

	// IconWidth is the width/height of the outer part of the icon at
	// the start of checkboxes, radio buttons, and collapsing headers
	// (e.g. the box of the checkbox).
	IconWidth float32

	// IconWidthInner is the width/height of the inner part of that
	// icon (e.g. the check of the checkbox).
	IconWidthInner float32

	// IconSpacing is the spacing between the icon and the text.
	IconSpacing float32

	// DefaultAreaSize is the size used for a new area's maximum
	// rectangle the first frame. Text wraps at this width. If the
	// contents are smaller, the area shrinks to fit; if they
	// overflow, it grows.
	DefaultAreaSize mat32.Vec2

	// TooltipWidth is the width of a tooltip.
	TooltipWidth float32

	// MenuWidth is the default wrapping width of a menu; longer
	// items wrap to a new line.
	MenuWidth float32

	// MenuSpacing is the horizontal distance between a menu and a
	// submenu.
	MenuSpacing float32

	// IndentEndsWithHorizontalLine ends indented regions with a
	// horizontal separator.
	IndentEndsWithHorizontalLine bool

	// ComboHeight is the height of a combo box before showing
	// scroll bars.
	ComboHeight float32

	// Scroll controls the spacing and visuals of scroll bars.
	Scroll ScrollStyle
}

// Defaults sets the default spacing.
func (sp *Spacing) Defaults() {
	sp.ItemSpacing = mat32.V2(8, 3)
	sp.WindowMargin = SameMargin(6)
	sp.MenuMargin = SameMargin(6)
	sp.ButtonPadding = mat32.V2(4, 1)
	sp.Indent = 18 // match checkbox/radio: ButtonPadding.X + IconWidth + IconSpacing
	sp.InteractSize = mat32.V2(40, 18)
	sp.SliderWidth = 100
	sp.SliderRailHeight = 8
	sp.ComboWidth = 100
	sp.TextEditWidth = 280
	sp.IconWidth = 14
	sp.IconWidthInner = 8
	sp.IconSpacing = 4
	sp.DefaultAreaSize = mat32.V2(600, 400)
	sp.TooltipWidth = 500
	sp.MenuWidth = 400
	sp.MenuSpacing = 2
	sp.IndentEndsWithHorizontalLine = false
	sp.ComboHeight = 200
	sp.Scroll.Defaults()
}

// Interaction controls how and when interaction happens.
type Interaction struct {

	// InteractRadius is how close a widget must be to the pointer to
	// have a chance to register as a click or drag. Larger values
	// make widgets easier to hit, which matters for touch screens.
	InteractRadius float32

	// ResizeGrabRadiusSide is the radius of the interactive area of
	// the side of a window during drag-to-resize.
	ResizeGrabRadiusSide float32

	// ResizeGrabRadiusCorner is the radius of the interactive area
	// of the corner of a window during drag-to-resize.
	ResizeGrabRadiusCorner float32

	// ShowTooltipsOnlyWhenStill suppresses tooltips while the
	// pointer is moving.
	ShowTooltipsOnlyWhenStill bool

	// TooltipDelay is the delay in seconds before showing tooltips
	// after the pointer stops moving.
	TooltipDelay float32

	// TooltipGraceTime: after a tooltip has been shown, hovering
	// another widget within this many seconds shows its tooltip
	// right away, skipping TooltipDelay. This lets the user move
	// over dead space to hover the next thing quickly.
	TooltipGraceTime float32

	// SelectableLabels is whether text on labels can be selected by
	// default.
	SelectableLabels bool

	// MultiWidgetTextSelect is whether text selection can span
	// multiple labels.
	MultiWidgetTextSelect bool
}

// Defaults sets the default interaction settings.
func (it *Interaction) Defaults() {
	it.InteractRadius = 5
	it.ResizeGrabRadiusSide = 5
	it.ResizeGrabRadiusCorner = 10
	it.ShowTooltipsOnlyWhenStill = true
	it.TooltipDelay = 0.5
	it.TooltipGraceTime = 0.2
	it.SelectableLabels = true
	it.MultiWidgetTextSelect = true
}
