// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/imstyle/mat32"
	"gopkg.in/yaml.v3"
)

// ScrollStyle controls the spacing and visuals of scroll bars.
// There are three presets to choose from: [ScrollStyle.Solid],
// [ScrollStyle.Thin], and [ScrollStyle.Floating].
type ScrollStyle struct {

	// Floating makes the scroll bars float above the content,
	// partially covering it. Otherwise the bars allocate space,
	// shrinking the area available to the contents.
	Floating bool

	// BarWidth is the width of the scroll bars at their largest.
	BarWidth float32

	// HandleMinLength makes sure the scroll handle is at least this big.
	HandleMinLength float32

	// BarInnerMargin is the margin between the contents and the bar.
	BarInnerMargin float32

	// BarOuterMargin is the margin between the bar and the outer
	// container. Only makes sense for non-floating bars.
	BarOuterMargin float32

	// FloatingWidth is the thin width of floating bars that are not
	// being hovered; hovering expands them to BarWidth.
	FloatingWidth float32

	// FloatingAllocatedWidth is how much space is allocated for a
	// floating scroll bar. Normally zero, but can be set to a small
	// value along with nonzero dormant opacities to always show a
	// thin scroll bar.
	FloatingAllocatedWidth float32

	// ForegroundColor uses colors with more contrast, which is good
	// for floating bars.
	ForegroundColor bool

	// DormantBackgroundOpacity is the opacity of the background when
	// the user is neither scrolling nor hovering the scroll area.
	// Only for floating bars; solid bars are always opaque.
	DormantBackgroundOpacity float32

	// ActiveBackgroundOpacity is the opacity of the background when
	// the user hovers the scroll area but not the bar itself.
	// Only for floating bars; solid bars are always opaque.
	ActiveBackgroundOpacity float32

	// InteractBackgroundOpacity is the opacity of the background
	// when the user hovers over the bar.
	// Only for floating bars; solid bars are always opaque.
	InteractBackgroundOpacity float32

	// DormantHandleOpacity is the opacity of the handle when the
	// user is neither scrolling nor hovering the scroll area.
	// Only for floating bars; solid bars are always opaque.
	DormantHandleOpacity float32

	// ActiveHandleOpacity is the opacity of the handle when the user
	// hovers the scroll area but not the bar itself.
	// Only for floating bars; solid bars are always opaque.
	ActiveHandleOpacity float32

	// InteractHandleOpacity is the opacity of the handle when the
	// user hovers over the bar.
	// Only for floating bars; solid bars are always opaque.
	InteractHandleOpacity float32
}

// Defaults sets the default scroll style, which is [ScrollStyle.Floating].
func (ss *ScrollStyle) Defaults() {
	ss.FloatingBars()
}

// SolidBars sets the solid preset: bars that always use up space.
func (ss *ScrollStyle) SolidBars() {
	*ss = ScrollStyle{
		Floating:               false,
		BarWidth:               6,
		HandleMinLength:        12,
		BarInnerMargin:         4,
		BarOuterMargin:         0,
		FloatingWidth:          2,
		FloatingAllocatedWidth: 0,

		ForegroundColor: false,

		DormantBackgroundOpacity:  0,
		ActiveBackgroundOpacity:   0.4,
		InteractBackgroundOpacity: 0.7,

		DormantHandleOpacity:  0,
		ActiveHandleOpacity:   0.6,
		InteractHandleOpacity: 1,
	}
}

// ThinBars sets the thin preset: thin bars that expand on hover.
func (ss *ScrollStyle) ThinBars() {
	ss.SolidBars()
	ss.Floating = true
	ss.BarWidth = 10
	ss.FloatingAllocatedWidth = 6
	ss.ForegroundColor = false

	ss.DormantBackgroundOpacity = 1
	ss.DormantHandleOpacity = 1

	ss.ActiveBackgroundOpacity = 1
	ss.ActiveHandleOpacity = 1

	// translucent when expanded so the content shows through
	ss.InteractBackgroundOpacity = 0.6
	ss.InteractHandleOpacity = 0.6
}

// FloatingBars sets the floating preset: no bars until you hover the
// scroll area, at which point they appear faintly and then expand
// when you hover the bars themselves.
func (ss *ScrollStyle) FloatingBars() {
	ss.SolidBars()
	ss.Floating = true
	ss.BarWidth = 10
	ss.ForegroundColor = true
	ss.FloatingAllocatedWidth = 0
	ss.DormantBackgroundOpacity = 0
	ss.DormantHandleOpacity = 0
}

// AllocatedWidth returns the width of a vertical bar, or the height
// of a horizontal bar, that the layout must reserve.
func (ss *ScrollStyle) AllocatedWidth() float32 {
	if ss.Floating {
		return ss.FloatingAllocatedWidth
	}
	return ss.BarInnerMargin + ss.BarWidth + ss.BarOuterMargin
}

// ScrollAnimation is the animation used when programmatically
// scrolling somewhere. The duration is calculated from the distance
// to be scrolled and PointsPerSecond, then clamped into Duration.
type ScrollAnimation struct {

	// PointsPerSecond is the scrolling speed.
	PointsPerSecond float32

	// Duration is the min/max scroll duration, in seconds.
	Duration mat32.Range32
}

// Defaults sets the default speed-based animation: 1000 points per
// second, clamped between 0.1 and 0.3 seconds.
func (sa *ScrollAnimation) Defaults() {
	sa.PointsPerSecond = 1000
	sa.Duration = mat32.R32(0.1, 0.3)
}

// ScrollAnimationNone returns an animation that scrolls instantly.
func ScrollAnimationNone() ScrollAnimation {
	return ScrollAnimation{
		PointsPerSecond: mat32.Inf(1),
		Duration:        mat32.R32(0, 0),
	}
}

// ScrollAnimationDuration returns an animation with a fixed duration
// in seconds, regardless of distance.
func ScrollAnimationDuration(t float32) ScrollAnimation {
	return ScrollAnimation{
		PointsPerSecond: mat32.Inf(1),
		Duration:        mat32.R32(t, t),
	}
}

// DurationFor returns the animation duration in seconds for
// scrolling the given distance in points.
func (sa ScrollAnimation) DurationFor(distance float32) float32 {
	return sa.Duration.ClampValue(mat32.Abs(distance) / sa.PointsPerSecond)
}

// MarshalText encodes the animation as "pps min max".
// [ScrollAnimationNone] and [ScrollAnimationDuration] use an infinite
// speed, which JSON and TOML cannot carry as a struct-field float,
// so the animation serializes as a string in every format.
func (sa ScrollAnimation) MarshalText() ([]byte, error) {
	return []byte(formatF32(sa.PointsPerSecond) + " " +
		formatF32(sa.Duration.Min) + " " + formatF32(sa.Duration.Max)), nil
}

// UnmarshalText decodes the "pps min max" form written by
// [ScrollAnimation.MarshalText].
func (sa *ScrollAnimation) UnmarshalText(b []byte) error {
	fields := strings.Fields(string(b))
	if len(fields) != 3 {
		return fmt.Errorf("styles.ScrollAnimation: expected 3 fields in %q", b)
	}
	var vals [3]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return fmt.Errorf("styles.ScrollAnimation: parsing %q: %w", f, err)
		}
		vals[i] = float32(v)
	}
	sa.PointsPerSecond = vals[0]
	sa.Duration = mat32.R32(vals[1], vals[2])
	return nil
}

// MarshalYAML marshals through [ScrollAnimation.MarshalText].
func (sa ScrollAnimation) MarshalYAML() (any, error) {
	b, err := sa.MarshalText()
	return string(b), err
}

// UnmarshalYAML unmarshals through [ScrollAnimation.UnmarshalText];
// the yaml package does not consult encoding.TextUnmarshaler itself.
func (sa *ScrollAnimation) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	return sa.UnmarshalText([]byte(s))
}

func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
