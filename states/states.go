// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the GUI states of elements that are
// relevant for styling, based on
// [CSS Pseudo-classes](https://developer.mozilla.org/en-US/docs/Web/CSS/Pseudo-classes)
package states

import "cogentcore.org/imstyle/enums"

// States are GUI states of elements that are relevant for styling
// based on the per-frame interaction outcome for the element.
// Each constant is a bit index; use [States.HasFlag] etc to query.
type States int64

const (
	// Disabled elements cannot be interacted with or selected, but do display.
	Disabled States = iota

	// ReadOnly elements cannot be changed.
	ReadOnly

	// Selected elements have been marked for clipboard or other such actions.
	Selected

	// Active elements are currently being interacted with: a pointer
	// button is held down on them, or they are being dragged or slid.
	Active

	// Focused elements receive keyboard input.
	Focused

	// Checked is for check boxes, radio buttons, and other toggles.
	Checked

	// Hovered indicates that a pointer is over the element, but it
	// is not Active.
	Hovered

	// LongHovered indicates a Hover that persists without significant
	// movement for a minimum period of time, which typically triggers
	// a tooltip popup.
	LongHovered

	// Highlighted indicates programmatic highlighting, treated the
	// same as Hovered for styling purposes.
	Highlighted

	// Open indicates an element with a currently-open dropdown or
	// menu beneath it, such as a combo box.
	Open

	StatesN
)

var statesNames = []string{"Disabled", "ReadOnly", "Selected", "Active",
	"Focused", "Checked", "Hovered", "LongHovered", "Highlighted", "Open"}

// Int64 returns the bit index of this flag as an int64.
func (st States) Int64() int64 { return int64(st) }

// String returns the name of a single flag constant, or the
// |-separated names of all set flags for a combined value (the
// result of [States.SetFlag]).
func (st States) String() string {
	if 0 <= st && st < StatesN {
		return statesNames[st]
	}
	all := make([]enums.BitFlag, StatesN)
	for i := range all {
		all[i] = States(i)
	}
	return enums.BitFlagString(int64(st), all)
}

// HasFlag returns whether the given flag is set.
func (st States) HasFlag(f States) bool {
	return enums.HasFlag(int64(st), f)
}

// SetFlag returns a copy of st with the given flags set or cleared.
func (st States) SetFlag(on bool, f ...States) States {
	v := int64(st)
	bf := make([]enums.BitFlag, len(f))
	for i, fl := range f {
		bf[i] = fl
	}
	enums.SetFlag(&v, on, bf...)
	return States(v)
}

// Is is a shortcut for HasFlag.
func (st States) Is(f States) bool {
	return st.HasFlag(f)
}

// Of returns a state value with all of the given flags set.
func Of(f ...States) States {
	return States(0).SetFlag(true, f...)
}
