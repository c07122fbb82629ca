// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Style persistence. A style round-trips through JSON, TOML, or YAML
// with default-valued fields when absent, so saved themes remain
// loadable after new fields are added. The number formatter is a
// function value and is never serialized: it always resets to the
// default formatter on load. Open methods merge the stored fields
// onto the receiver, so open into a default style (see [OpenStyle])
// to get defaults for anything the file does not mention.

// OpenStyle returns a new default [Style] with the stored style
// merged over it, dispatching on the file extension
// (.json, .toml, .yaml, or .yml).
func OpenStyle(filename string) (*Style, error) {
	s := NewStyle()
	if err := s.Open(filename); err != nil {
		return nil, err
	}
	return s, nil
}

// Open reads the style from the given file, dispatching on the file
// extension (.json, .toml, .yaml, or .yml).
func (s *Style) Open(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return s.OpenJSON(filename)
	case ".toml":
		return s.OpenTOML(filename)
	case ".yaml", ".yml":
		return s.OpenYAML(filename)
	default:
		return fmt.Errorf("styles.Open: unsupported file extension %q", ext)
	}
}

// Save writes the style to the given file, dispatching on the file
// extension (.json, .toml, .yaml, or .yml).
func (s *Style) Save(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		return s.SaveJSON(filename)
	case ".toml":
		return s.SaveTOML(filename)
	case ".yaml", ".yml":
		return s.SaveYAML(filename)
	default:
		return fmt.Errorf("styles.Save: unsupported file extension %q", ext)
	}
}

// OpenJSON reads the style from the given JSON file.
func (s *Style) OpenJSON(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("styles.OpenJSON: %w", err)
	}
	if err := json.Unmarshal(b, s); err != nil {
		return fmt.Errorf("styles.OpenJSON: %q: %w", filename, err)
	}
	s.NumberFormatter = DefaultNumberFormatter()
	return nil
}

// SaveJSON writes the style to the given file as indented JSON.
func (s *Style) SaveJSON(filename string) error {
	b, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return fmt.Errorf("styles.SaveJSON: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o666); err != nil {
		return fmt.Errorf("styles.SaveJSON: %w", err)
	}
	return nil
}

// OpenTOML reads the style from the given TOML file.
func (s *Style) OpenTOML(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("styles.OpenTOML: %w", err)
	}
	if err := toml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("styles.OpenTOML: %q: %w", filename, err)
	}
	s.NumberFormatter = DefaultNumberFormatter()
	return nil
}

// SaveTOML writes the style to the given file as TOML.
func (s *Style) SaveTOML(filename string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("styles.SaveTOML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o666); err != nil {
		return fmt.Errorf("styles.SaveTOML: %w", err)
	}
	return nil
}

// OpenYAML reads the style from the given YAML file.
func (s *Style) OpenYAML(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("styles.OpenYAML: %w", err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return fmt.Errorf("styles.OpenYAML: %q: %w", filename, err)
	}
	s.NumberFormatter = DefaultNumberFormatter()
	return nil
}

// SaveYAML writes the style to the given file as YAML.
func (s *Style) SaveYAML(filename string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("styles.SaveYAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o666); err != nil {
		return fmt.Errorf("styles.SaveYAML: %w", err)
	}
	return nil
}
