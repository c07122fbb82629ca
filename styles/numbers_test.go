// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWithDecimalsInRange(t *testing.T) {
	tests := []struct {
		value    float64
		min, max int
		want     string
	}{
		{0, 0, 0, "0"},
		{10, 0, 0, "10"},
		{10, 1, 4, "10.0"},
		{0.5, 1, 4, "0.5"},
		{0.25, 1, 4, "0.25"},
		{0.125, 1, 4, "0.125"},
		{1.0 / 3.0, 1, 4, "0.3333"},
		{-2.5, 0, 4, "-2.5"},
		{5, 2, 0, "5.00"}, // max below min is raised to min
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v_%d_%d", test.value, test.min, test.max), func(t *testing.T) {
			assert.Equal(t, test.want, FormatWithDecimalsInRange(test.value, test.min, test.max))
		})
	}
}

func TestNumberFormatterZeroValue(t *testing.T) {
	var nf NumberFormatter
	assert.True(t, nf.IsDefault())
	assert.Equal(t, "0.25", nf.Format(0.25, 1, 4))
}

func TestNumberFormatterCustom(t *testing.T) {
	nf := NewNumberFormatter(func(value float64, minDecimals, maxDecimals int) string {
		return fmt.Sprintf("<%v>", value)
	})
	assert.False(t, nf.IsDefault())
	assert.Equal(t, "<3.5>", nf.Format(3.5, 0, 2))
}

func TestNumberFormatterEqual(t *testing.T) {
	a := DefaultNumberFormatter()
	b := DefaultNumberFormatter()
	assert.True(t, a.Equal(b))

	c := NewNumberFormatter(func(value float64, minDecimals, maxDecimals int) string {
		return "x"
	})
	assert.False(t, a.Equal(c))
	assert.True(t, c.Equal(c))
}
