// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/imstyle/colors"
	"cogentcore.org/imstyle/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStyle returns a style with enough non-default settings to
// catch fields dropped in serialization.
func testStyle() *Style {
	s := NewLightStyle()
	h := Heading
	s.OverrideTextStyle = &h
	s.TextStyles["Caption"] = fonts.New(10.5, fonts.Proportional)
	s.TextStyles["Code"] = fonts.NewCustom(13, "Iosevka")
	wm := WrapModeTruncate
	s.WrapMode = &wm
	s.Spacing.Indent = 24
	s.Spacing.Scroll.SolidBars()
	s.Interaction.ResizeGrabRadiusSide = 7
	s.Visuals.Striped = true
	s.Visuals.HandleShape = RectHandle(0.6)
	s.Visuals.HyperlinkColor = colors.FromRGB(10, 20, 200)
	s.AnimationTime = 0.25
	s.ScrollAnimation = ScrollAnimationDuration(0.2)
	return s
}

// normalized strips the number formatter, which is a function value
// and is never serialized, so whole-struct comparison can use
// reflection equality.
func normalized(s *Style) *Style {
	cp := s.Clone()
	cp.NumberFormatter = NumberFormatter{}
	return cp
}

func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		t.Run(ext[1:], func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), "style"+ext)
			s := testStyle()
			require.NoError(t, s.Save(fn))

			got, err := OpenStyle(fn)
			require.NoError(t, err)

			// the formatter always resets to the default on load
			assert.True(t, got.NumberFormatter.Equal(DefaultNumberFormatter()))
			assert.Equal(t, normalized(s), normalized(got))
		})
	}
}

func TestRoundTripScrollAnimationPresets(t *testing.T) {
	presets := []struct {
		name string
		sa   ScrollAnimation
	}{
		{"none", ScrollAnimationNone()},
		{"duration", ScrollAnimationDuration(0.2)},
	}
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		for _, preset := range presets {
			t.Run(ext[1:]+"_"+preset.name, func(t *testing.T) {
				fn := filepath.Join(t.TempDir(), "style"+ext)
				s := NewStyle()
				s.ScrollAnimation = preset.sa
				require.NoError(t, s.Save(fn))

				got, err := OpenStyle(fn)
				require.NoError(t, err)
				assert.Equal(t, preset.sa, got.ScrollAnimation)
			})
		}
	}
}

func TestOpenYmlExtension(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "style.yml")
	s := testStyle()
	require.NoError(t, s.Save(fn))

	got, err := OpenStyle(fn)
	require.NoError(t, err)
	assert.Equal(t, normalized(s), normalized(got))
}

func TestOpenMergesOntoDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "style.json")
	require.NoError(t, os.WriteFile(fn, []byte(`{"AnimationTime": 0.5}`), 0o666))

	got, err := OpenStyle(fn)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), got.AnimationTime)
	// fields the file does not mention keep their defaults
	assert.True(t, got.Visuals.DarkMode)
	assert.Equal(t, DefaultTextStyles(), got.TextStyles)
	assert.True(t, got.CompactMenuStyle)
}

func TestUnsupportedExtension(t *testing.T) {
	s := NewStyle()
	assert.Error(t, s.Save("style.ini"))
	assert.Error(t, s.Open("style.ini"))
	_, err := OpenStyle("style.cfg")
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := OpenStyle(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
