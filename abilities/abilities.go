// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the abilities of GUI elements to take on
// different states, aligned with the [states] flags.
package abilities

import "cogentcore.org/imstyle/enums"

// Abilities represent abilities of GUI elements to take on different
// states. They determine whether an element is interactive at all for
// the purposes of styling. Each constant is a bit index.
type Abilities int64

const (
	// Selectable means it can be Selected.
	Selectable Abilities = iota

	// Activatable means it can be made Active by pressing down on it,
	// which gives it a visible state layer color change.
	Activatable

	// Clickable means it can be Clicked, receiving Click events when
	// the user executes a pointer down and up event on the same
	// element, but otherwise does not change its rendering when
	// pressed (as Activatable does).
	Clickable

	// Draggable means it can be Dragged.
	Draggable

	// Slideable means it has a slider element that can grabbed
	// to change value, as in a slider or scroll bar handle.
	Slideable

	// Checkable means it can be Checked.
	Checkable

	// Focusable means it can be Focused: capable of receiving and
	// processing key events directly.
	Focusable

	// Hoverable means it can be Hovered.
	Hoverable

	// LongHoverable means it can be LongHovered, triggering a tooltip.
	LongHoverable

	AbilitiesN
)

var abilitiesNames = []string{"Selectable", "Activatable", "Clickable",
	"Draggable", "Slideable", "Checkable", "Focusable", "Hoverable",
	"LongHoverable"}

// Pressable is the list of abilities that make something pressable:
// an element with any of these reacts visibly to interaction.
var Pressable = []Abilities{Selectable, Activatable, Clickable,
	Draggable, Slideable, Checkable}

// Int64 returns the bit index of this flag as an int64.
func (ab Abilities) Int64() int64 { return int64(ab) }

// String returns the name of a single flag constant, or the
// |-separated names of all set flags for a combined value.
func (ab Abilities) String() string {
	if 0 <= ab && ab < AbilitiesN {
		return abilitiesNames[ab]
	}
	all := make([]enums.BitFlag, AbilitiesN)
	for i := range all {
		all[i] = Abilities(i)
	}
	return enums.BitFlagString(int64(ab), all)
}

// HasFlag returns whether the given flag is set.
func (ab Abilities) HasFlag(f Abilities) bool {
	return enums.HasFlag(int64(ab), f)
}

// SetFlag returns a copy of ab with the given flags set or cleared.
func (ab Abilities) SetFlag(on bool, f ...Abilities) Abilities {
	v := int64(ab)
	bf := make([]enums.BitFlag, len(f))
	for i, fl := range f {
		bf[i] = fl
	}
	enums.SetFlag(&v, on, bf...)
	return Abilities(v)
}

// Is is a shortcut for HasFlag.
func (ab Abilities) Is(f Abilities) bool {
	return ab.HasFlag(f)
}

// IsPressable returns true when the element has any of the
// [Pressable] abilities.
func (ab Abilities) IsPressable() bool {
	bf := make([]enums.BitFlag, len(Pressable))
	for i, f := range Pressable {
		bf[i] = f
	}
	return enums.HasAnyFlags(int64(ab), bf...)
}

// IsHoverable is true for both Hoverable and LongHoverable.
func (ab Abilities) IsHoverable() bool {
	return ab.HasFlag(Hoverable) || ab.HasFlag(LongHoverable)
}

// Of returns an abilities value with all of the given flags set.
func Of(f ...Abilities) Abilities {
	return Abilities(0).SetFlag(true, f...)
}
