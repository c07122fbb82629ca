// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"cogentcore.org/imstyle/abilities"
	"cogentcore.org/imstyle/states"
)

// Response describes a widget's interaction outcome for the current
// frame, as produced by the layout and interaction engine. It is the
// read-only input to widget visual state resolution; you must already
// have a response, i.e. space must be allocated and interaction
// computed, before painting the widget.
type Response interface {

	// Interactive reports whether the widget accepts interaction
	// at all. Hover-only widgets are not interactive.
	Interactive() bool

	// PointerDownOn reports whether a pointer button is currently
	// held down on this widget.
	PointerDownOn() bool

	// HasFocus reports whether the widget has keyboard focus.
	HasFocus() bool

	// Clicked reports whether the widget was clicked this frame.
	Clicked() bool

	// Hovered reports whether the pointer is over the widget.
	Hovered() bool

	// Highlighted reports whether the widget is programmatically
	// highlighted.
	Highlighted() bool
}

// WidgetState is a concrete [Response] assembled from ability and
// state flags, for hosts and tests that do not have a full
// interaction engine. The Abilities determine whether the element is
// interactive; the States carry the per-frame interaction flags.
type WidgetState struct {

	// Abilities specifies the kinds of interaction this element
	// supports.
	Abilities abilities.Abilities

	// States holds the interaction state flags for this frame.
	States states.States

	// JustClicked is the transient was-clicked-this-frame flag,
	// which is an event rather than a persistent state.
	JustClicked bool
}

// Interactive reports whether the element has any pressable ability.
func (ws WidgetState) Interactive() bool {
	return ws.Abilities.IsPressable()
}

// PointerDownOn reports the Active state: a pointer held down on the
// element, or the element being dragged or slid.
func (ws WidgetState) PointerDownOn() bool {
	return ws.States.Is(states.Active)
}

// HasFocus reports the Focused state.
func (ws WidgetState) HasFocus() bool {
	return ws.States.Is(states.Focused)
}

// Clicked reports the transient just-clicked flag.
func (ws WidgetState) Clicked() bool {
	return ws.JustClicked
}

// Hovered reports the Hovered or LongHovered state.
func (ws WidgetState) Hovered() bool {
	return ws.States.Is(states.Hovered) || ws.States.Is(states.LongHovered)
}

// Highlighted reports the Highlighted state.
func (ws WidgetState) Highlighted() bool {
	return ws.States.Is(states.Highlighted)
}
