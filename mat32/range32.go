// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat32

// Range32 is an inclusive range of float32 values, from Min to Max.
type Range32 struct {
	Min float32
	Max float32
}

// R32 returns a new [Range32] with the given min and max values.
func R32(min, max float32) Range32 {
	return Range32{Min: min, Max: max}
}

// ClampValue clamps the given value to this range.
func (r Range32) ClampValue(v float32) float32 {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether the range contains the given value.
func (r Range32) Contains(v float32) bool {
	return r.Min <= v && v <= r.Max
}

// Span returns Max - Min.
func (r Range32) Span() float32 {
	return r.Max - r.Min
}
