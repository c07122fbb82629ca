// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	st := Of(Hovered, Focused)
	assert.True(t, st.Is(Hovered))
	assert.True(t, st.Is(Focused))
	assert.False(t, st.Is(Active))

	st = st.SetFlag(true, Active)
	assert.True(t, st.Is(Active))

	st = st.SetFlag(false, Hovered, Focused)
	assert.False(t, st.Is(Hovered))
	assert.False(t, st.Is(Focused))
	assert.True(t, st.Is(Active))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Active", Active.String())
	assert.Equal(t, "Focused|Hovered", Of(Focused, Hovered).String())
}
