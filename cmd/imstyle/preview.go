// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/imstyle/colors"
	"cogentcore.org/imstyle/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	var theme string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a theme's widget-state palette in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := styleForTheme(theme)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(st, theme))
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "dark", "theme to preview (dark or light)")
	return cmd
}

// renderPreview draws one swatch row per widget interaction state,
// plus the theme's semantic text colors.
func renderPreview(st *styles.Style, theme string) string {
	vis := &st.Visuals
	header := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("imstyle %s theme", theme))

	rows := []struct {
		name string
		wv   *styles.WidgetVisuals
	}{
		{"noninteractive", &vis.Widgets.Noninteractive},
		{"inactive", &vis.Widgets.Inactive},
		{"hovered", &vis.Widgets.Hovered},
		{"active", &vis.Widgets.Active},
		{"open", &vis.Widgets.Open},
	}

	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, row := range rows {
		sw := lipgloss.NewStyle().
			Background(lipgloss.Color(colors.AsHex(row.wv.BgFill))).
			Foreground(lipgloss.Color(colors.AsHex(row.wv.TextColor()))).
			Padding(0, 1).
			Render(fmt.Sprintf("%-14s", row.name))
		fmt.Fprintf(b, "%s  bg %s  fg %s  expand %.1f\n",
			sw, colors.AsHex(row.wv.BgFill), colors.AsHex(row.wv.TextColor()),
			row.wv.Expansion)
	}

	b.WriteString("\n")
	sel := lipgloss.NewStyle().
		Background(lipgloss.Color(colors.AsHex(vis.Selection.BgFill))).
		Foreground(lipgloss.Color(colors.AsHex(vis.Selection.Stroke.Color))).
		Padding(0, 1).
		Render("selection     ")
	fmt.Fprintf(b, "%s  bg %s\n", sel, colors.AsHex(vis.Selection.BgFill))

	fmt.Fprintf(b, "\ntext %s  strong %s  weak %s\nhyperlink %s  warn %s  error %s\n",
		colors.AsHex(vis.TextColor()), colors.AsHex(vis.StrongTextColor()),
		colors.AsHex(vis.WeakTextColor()),
		colors.AsHex(vis.HyperlinkColor), colors.AsHex(vis.WarnFgColor),
		colors.AsHex(vis.ErrorFgColor))

	return b.String()
}
