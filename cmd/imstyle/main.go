// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command imstyle inspects and converts imstyle themes: it renders a
// theme's widget-state palette in the terminal and round-trips theme
// files between JSON, TOML, and YAML.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/imstyle/styles"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imstyle",
		Short: "Inspect and convert imstyle GUI themes",
		Long: `imstyle inspects and converts themes for the imstyle styling library.

  imstyle preview --theme light        # render the light theme palette
  imstyle export --theme dark my.toml  # write the dark preset to a file
  imstyle convert my.toml my.json      # convert a saved theme`,
		SilenceUsage: true,
	}

	cmd.AddCommand(previewCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(convertCmd())

	return cmd
}

// styleForTheme returns the preset style for a --theme flag value.
func styleForTheme(theme string) (*styles.Style, error) {
	switch theme {
	case "dark":
		return styles.NewDarkStyle(), nil
	case "light":
		return styles.NewLightStyle(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q: use dark or light", theme)
	}
}

func exportCmd() *cobra.Command {
	var theme string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a theme preset to a .json, .toml, or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := styleForTheme(theme)
			if err != nil {
				return err
			}
			return st.Save(args[0])
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "dark", "theme preset to export (dark or light)")
	return cmd
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a saved theme between formats, by file extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := styles.OpenStyle(args[0])
			if err != nil {
				return err
			}
			return st.Save(args[1])
		},
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
