// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo provides headless demo widget models that exercise
// the styling system without a layout or render engine.
package demo

import (
	"math"

	"cogentcore.org/imstyle/styles"
)

// SliderClamping controls how a slider handles values outside its
// range.
type SliderClamping int32

const (
	// ClampNever lets the slider show values outside its range, and
	// never clamps edits.
	ClampNever SliderClamping = iota

	// ClampEdits clamps values entered through the slider, but shows
	// out-of-range values set from code.
	ClampEdits

	// ClampAlways clamps incoming and outgoing values to the range.
	ClampAlways
)

var clampingNames = []string{"never", "edits", "always"}

func (sc SliderClamping) String() string {
	if 0 <= sc && sc < SliderClamping(len(clampingNames)) {
		return clampingNames[sc]
	}
	return "always"
}

// SliderOrientation is the direction a slider travels in.
type SliderOrientation int32

const (
	Horizontal SliderOrientation = iota
	Vertical
)

// Sliders is the state of the slider showcase: one demo slider with
// every styling-relevant knob. It exercises [styles.HandleShape],
// slider trailing fill, and the style's number formatter.
type Sliders struct {
	Min         float64
	Max         float64
	Logarithmic bool
	Clamping    SliderClamping
	SmartAim    bool
	Step        float64
	UseSteps    bool
	Integer     bool
	Vertical    bool
	Value       float64

	// TrailingFill paints the rail up to the handle for this slider,
	// in addition to the style-wide [styles.Visuals.SliderTrailingFill].
	TrailingFill bool

	// HandleShape, if set, overrides the style-wide handle shape for
	// this slider.
	HandleShape *styles.HandleShape
}

// Defaults sets the showcase defaults: a logarithmic slider over
// 0 to 10000.
func (sl *Sliders) Defaults() {
	sl.Min = 0
	sl.Max = 10000
	sl.Logarithmic = true
	sl.Clamping = ClampAlways
	sl.SmartAim = true
	sl.Step = 10
	sl.UseSteps = false
	sl.Integer = false
	sl.Vertical = false
	sl.Value = 10
	sl.TrailingFill = false
	sl.HandleShape = nil
}

// NewSliders returns a new slider showcase with default settings.
func NewSliders() *Sliders {
	sl := &Sliders{}
	sl.Defaults()
	return sl
}

// SetValue sets the slider value, honoring the clamping mode.
func (sl *Sliders) SetValue(v float64) {
	if sl.Clamping == ClampAlways {
		v = math.Min(math.Max(v, sl.Min), sl.Max)
	}
	if sl.Integer {
		v = math.Round(v)
	}
	sl.Value = v
}

// FormatValue formats the current value for display using the given
// style's number formatter. Integer sliders show no decimals; float
// sliders pick the smallest faithful representation up to 4 decimals.
func (sl *Sliders) FormatValue(st *styles.Style) string {
	if sl.Integer {
		return st.NumberFormatter.Format(sl.Value, 0, 0)
	}
	return st.NumberFormatter.Format(sl.Value, 1, 4)
}

// RailVisuals resolves the paint parameters for the slider rail for
// the given response: the rail uses the mandatory background fill,
// so it is always legible.
func (sl *Sliders) RailVisuals(st *styles.Style, r styles.Response) *styles.WidgetVisuals {
	return st.Interact(r)
}

// EffectiveHandleShape returns this slider's handle shape, falling
// back to the style-wide shape when no per-slider override is set.
func (sl *Sliders) EffectiveHandleShape(st *styles.Style) styles.HandleShape {
	if sl.HandleShape != nil {
		return *sl.HandleShape
	}
	return st.Visuals.HandleShape
}

// EffectiveTrailingFill reports whether the rail is painted up to
// the handle, either per-slider or style-wide.
func (sl *Sliders) EffectiveTrailingFill(st *styles.Style) bool {
	return sl.TrailingFill || st.Visuals.SliderTrailingFill
}
