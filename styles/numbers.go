// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"reflect"
	"strconv"
)

// NumberFormatterFunc formats a numeric value as display text.
// minDecimals and maxDecimals give the range of the number of
// decimals to show, counted after the decimal point.
type NumberFormatterFunc func(value float64, minDecimals, maxDecimals int) string

// NumberFormatter is a pluggable strategy for formatting numbers in
// numeric-entry widgets, stored as a shared immutable function value.
// Equality is identity equality of the underlying function: two
// styles are equal in this field only when they share the same
// callable. The zero value formats with [FormatWithDecimalsInRange].
type NumberFormatter struct {
	format NumberFormatterFunc
}

// NewNumberFormatter returns a [NumberFormatter] using the given
// function.
func NewNumberFormatter(f NumberFormatterFunc) NumberFormatter {
	return NumberFormatter{format: f}
}

// DefaultNumberFormatter returns the default formatter, which uses
// [FormatWithDecimalsInRange].
func DefaultNumberFormatter() NumberFormatter {
	return NewNumberFormatter(FormatWithDecimalsInRange)
}

// Format formats the given number with the given range of decimals.
// The minimum number of decimals is respected (including trailing
// zeroes), but if the value needs more decimals to be represented
// accurately, more are shown, up to the given max.
func (nf NumberFormatter) Format(value float64, minDecimals, maxDecimals int) string {
	if nf.format == nil {
		return FormatWithDecimalsInRange(value, minDecimals, maxDecimals)
	}
	return nf.format(value, minDecimals, maxDecimals)
}

// IsDefault reports whether this formatter is the zero value, which
// uses the default formatting function.
func (nf NumberFormatter) IsDefault() bool {
	return nf.format == nil
}

// Equal reports whether both formatters share the same underlying
// function value. Function behavior is never compared structurally.
func (nf NumberFormatter) Equal(o NumberFormatter) bool {
	return reflect.ValueOf(nf.format).Pointer() == reflect.ValueOf(o.format).Pointer()
}

// FormatWithDecimalsInRange formats the value with the smallest
// number of decimals in [minDecimals, maxDecimals] that round-trips
// it exactly, falling back to maxDecimals.
func FormatWithDecimalsInRange(value float64, minDecimals, maxDecimals int) string {
	if maxDecimals < minDecimals {
		maxDecimals = minDecimals
	}
	for decimals := minDecimals; decimals < maxDecimals; decimals++ {
		s := strconv.FormatFloat(value, 'f', decimals, 64)
		if parsed, err := strconv.ParseFloat(s, 64); err == nil && parsed == value {
			return s
		}
	}
	return strconv.FormatFloat(value, 'f', maxDecimals, 64)
}
