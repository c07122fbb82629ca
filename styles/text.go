// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strings"

	"cogentcore.org/imstyle/fonts"
)

// TextStyle is a logical text style key, resolved to a concrete
// [fonts.Font] by lookup in [Style.TextStyles]. The canonical keys
// are [Small], [Body], [Monospace], [Button], and [Heading]; any
// other value is a user-defined named style. A user-defined style
// spelled exactly like a canonical key is that canonical key.
type TextStyle string

const (
	// Small is used when small text is needed.
	Small TextStyle = "Small"

	// Body is for normal labels: easily readable, doesn't take up
	// too much space.
	Body TextStyle = "Body"

	// Monospace is the same size as [Body], but used when monospace
	// is important, as for code snippets and aligning numbers.
	Monospace TextStyle = "Monospace"

	// Button is for buttons; maybe slightly bigger than [Body],
	// signifying that the item can be interacted with.
	Button TextStyle = "Button"

	// Heading is probably larger than [Body].
	Heading TextStyle = "Heading"
)

// canonicalRank orders the canonical styles ahead of (and among)
// user-defined named styles.
var canonicalRank = map[TextStyle]int{
	Small: 0, Body: 1, Monospace: 2, Button: 3, Heading: 4,
}

// IsCanonical reports whether this is one of the five canonical keys.
func (ts TextStyle) IsCanonical() bool {
	_, ok := canonicalRank[ts]
	return ok
}

// Compare provides a total order over text styles: the canonical
// keys in their declared order first, then user-defined named styles
// by name. It returns -1, 0, or 1, for use with slices.SortFunc.
func (ts TextStyle) Compare(o TextStyle) int {
	ri, iok := canonicalRank[ts]
	rj, jok := canonicalRank[o]
	switch {
	case iok && jok:
		return cmpInt(ri, rj)
	case iok:
		return -1
	case jok:
		return 1
	default:
		return strings.Compare(string(ts), string(o))
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Resolve looks up this text style in the given style's
// [Style.TextStyles]. A missing key is a configuration bug, not a
// recoverable runtime condition: every default theme populates the
// canonical keys, so Resolve panics with the available keys rather
// than silently substituting a fallback that would mask a broken
// theme configuration.
func (ts TextStyle) Resolve(st *Style) fonts.Font {
	f, ok := st.TextStyles[ts]
	if !ok {
		panic(fmt.Sprintf("styles: failed to find %q in Style.TextStyles; available styles: %v",
			string(ts), st.TextStyleKeys()))
	}
	return f
}

// DefaultTextStyles returns the text styles of the default theme,
// containing all five canonical keys.
func DefaultTextStyles() map[TextStyle]fonts.Font {
	return map[TextStyle]fonts.Font{
		Small:     fonts.New(9, fonts.Proportional),
		Body:      fonts.New(12.5, fonts.Proportional),
		Button:    fonts.New(12.5, fonts.Proportional),
		Heading:   fonts.New(18, fonts.Proportional),
		Monospace: fonts.New(12, fonts.Monospace),
	}
}

// FontSelection selects a [fonts.Font], either by picking one
// directly, by naming a [TextStyle] to look up, or by deferring to
// the style's defaults. The zero value is the default selection.
type FontSelection struct {

	// Font directly selects a size and family, taking precedence
	// over everything else when set.
	Font *fonts.Font

	// Style selects a [TextStyle] to look up in [Style.TextStyles].
	Style *TextStyle
}

// SelectFont returns a [FontSelection] that directly selects the
// given font.
func SelectFont(f fonts.Font) FontSelection {
	return FontSelection{Font: &f}
}

// SelectStyle returns a [FontSelection] that looks up the given
// text style.
func SelectStyle(ts TextStyle) FontSelection {
	return FontSelection{Style: &ts}
}

// Resolve resolves this selection against the given style.
// The default selection resolves to [Style.OverrideFont] if set,
// else to [Style.OverrideTextStyle] if set, else to [Body]:
// a font-level override always wins over a text-style-level one.
func (fs FontSelection) Resolve(st *Style) fonts.Font {
	switch {
	case fs.Font != nil:
		return *fs.Font
	case fs.Style != nil:
		return fs.Style.Resolve(st)
	case st.OverrideFont != nil:
		return *st.OverrideFont
	case st.OverrideTextStyle != nil:
		return st.OverrideTextStyle.Resolve(st)
	}
	return Body.Resolve(st)
}

// TextWrapMode determines how text that reaches the right edge of
// its container is handled.
type TextWrapMode int32

const (
	// WrapModeExtend lets the text extend the container.
	WrapModeExtend TextWrapMode = iota

	// WrapModeWrap wraps the text to a new line.
	WrapModeWrap

	// WrapModeTruncate truncates the text with an ellipsis.
	WrapModeTruncate
)

var wrapModeNames = []string{"extend", "wrap", "truncate"}

func (wm TextWrapMode) String() string {
	if 0 <= wm && wm < TextWrapMode(len(wrapModeNames)) {
		return wrapModeNames[wm]
	}
	return "extend"
}

// Align specifies text alignment along an axis.
type Align int32

const (
	// Start aligns to the start (top, for vertical alignment).
	Start Align = iota

	// Center aligns to the center.
	Center

	// End aligns to the end (bottom, for vertical alignment).
	End
)

var alignNames = []string{"start", "center", "end"}

func (al Align) String() string {
	if 0 <= al && al < Align(len(alignNames)) {
		return alignNames[al]
	}
	return "start"
}
