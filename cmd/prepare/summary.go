// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/cinematch/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EC4F4")).
			Width(22)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EF4A1"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4C56E"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F45E6E"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// renderSummary formats the result of a run for the terminal.
func renderSummary(opts options, report catalog.CleanReport) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + value
	}
	count := func(n int, style lipgloss.Style) string {
		if n == 0 {
			return fmt.Sprint(n)
		}
		return style.Render(fmt.Sprint(n))
	}

	lines := []string{
		titleStyle.Render("Dataset prepared"),
		"",
		row("Input", opts.in),
		row("Rows read", fmt.Sprint(report.Input)),
		row("Dropped (blank name)", count(report.DroppedEmptyName, warnStyle)),
		row("Dropped (empty title)", count(report.DroppedByTitle, warnStyle)),
		row("Rows written", successStyle.Render(fmt.Sprint(report.Output))),
	}
	if opts.out != "" {
		lines = append(lines, row("CSV", opts.out))
	}
	if opts.sqlitePath != "" {
		lines = append(lines, row("SQLite", fmt.Sprintf("%s (table %s)", opts.sqlitePath, opts.table)))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
