// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common helpers for bit-flag enum types,
// where each enum constant is a bit index into an int64 value.
package enums

import "strings"

// BitFlag is implemented by bit-index enum constants.
type BitFlag interface {
	// Int64 returns the bit index as an int64.
	Int64() int64

	// String returns the name of this flag value.
	String() string
}

// HasFlag returns whether the given bit index is set in the value.
func HasFlag(value int64, f BitFlag) bool {
	return value&(1<<uint64(f.Int64())) != 0
}

// SetFlag sets or clears the given bit indexes in the value.
func SetFlag(value *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint64(v.Int64())
	}
	if on {
		*value |= mask
	} else {
		*value &^= mask
	}
}

// HasAnyFlags returns whether any of the given bit indexes are set
// in the value.
func HasAnyFlags(value int64, f ...BitFlag) bool {
	for _, v := range f {
		if HasFlag(value, v) {
			return true
		}
	}
	return false
}

// BitFlagString returns a |-separated string of the names of the
// flags set in the given value, using the given full list of flags
// for the type.
func BitFlagString(value int64, all []BitFlag) string {
	var sb strings.Builder
	for _, f := range all {
		if !HasFlag(value, f) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}
