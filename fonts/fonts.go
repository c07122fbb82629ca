// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts defines the font selection value types used by the
// styling system: a generic family choice and a sized font.
// The actual typeface loading and shaping is the host's concern.
package fonts

import "fmt"

// Family indicates the generic family of typeface to use, where the
// concrete typeface for each generic family is chosen by the host.
type Family int32

const (
	// Proportional is a proportionally-spaced typeface, for most text.
	Proportional Family = iota

	// Monospace is a fixed-width typeface, for code snippets and
	// aligning numbers.
	Monospace

	// Custom is a specific named typeface, given in [Font.CustomFamily].
	Custom
)

var familyNames = []string{"proportional", "monospace", "custom"}

func (f Family) String() string {
	if 0 <= f && f < Family(len(familyNames)) {
		return familyNames[f]
	}
	return "proportional"
}

// Font is a font of a certain size: the resolved result of looking up
// a text style. It is a plain value with no identity.
type Font struct {

	// Size is the font height in points.
	Size float32

	// Family is the generic family of typeface to use.
	Family Family

	// CustomFamily is the specific typeface name, for Family = [Custom].
	CustomFamily string
}

// New returns a new [Font] with the given size and generic family.
func New(size float32, family Family) Font {
	return Font{Size: size, Family: family}
}

// NewCustom returns a new [Font] with the given size and a specific
// named typeface.
func NewCustom(size float32, name string) Font {
	return Font{Size: size, Family: Custom, CustomFamily: name}
}

func (f Font) String() string {
	if f.Family == Custom {
		return fmt.Sprintf("%v %vpt", f.CustomFamily, f.Size)
	}
	return fmt.Sprintf("%v %vpt", f.Family, f.Size)
}
