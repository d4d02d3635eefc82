// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ux provides terminal styling for the LatticeQEC CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The error-flag colors are the categories the lattice
// view distinguishes: X, Z, and both-at-once.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // main accent
	ColorTealDeep    = lipgloss.Color("#16858E") // borders
	ColorSlate       = lipgloss.Color("#2C4A54") // muted text

	ColorErrorX    = lipgloss.Color("#E74C3C") // X-type error flag
	ColorErrorZ    = lipgloss.Color("#F4D03F") // Z-type error flag
	ColorErrorBoth = lipgloss.Color("#C678DD") // both flags set
	ColorActive    = lipgloss.Color("#2CD7C7") // activated check

	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Box       lipgloss.Style

	QubitClean  lipgloss.Style
	QubitX      lipgloss.Style
	QubitZ      lipgloss.Style
	QubitBoth   lipgloss.Style
	CheckIdle   lipgloss.Style
	CheckActive lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorTealBright),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealPrimary).Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),

	QubitClean:  lipgloss.NewStyle().Foreground(ColorSlate),
	QubitX:      lipgloss.NewStyle().Foreground(ColorErrorX).Bold(true),
	QubitZ:      lipgloss.NewStyle().Foreground(ColorErrorZ).Bold(true),
	QubitBoth:   lipgloss.NewStyle().Foreground(ColorErrorBoth).Bold(true),
	CheckIdle:   lipgloss.NewStyle().Foreground(ColorSlate),
	CheckActive: lipgloss.NewStyle().Foreground(ColorActive).Bold(true),
}

// Title prints a styled title line.
func Title(text string) {
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a styled success line.
func Success(text string) {
	fmt.Println(Styles.Success.Render("✓ " + text))
}

// Warning prints a styled warning line to stderr.
func Warning(text string) {
	fmt.Fprintln(os.Stderr, Styles.Warning.Render("⚠ "+text))
}

// Error prints a styled error line to stderr.
func Error(text string) {
	fmt.Fprintln(os.Stderr, Styles.Error.Render("✗ "+text))
}

// Muted prints a de-emphasized line.
func Muted(text string) {
	fmt.Println(Styles.Muted.Render(text))
}

// Box prints content inside a rounded border with a title.
func Box(title, content string) {
	if title != "" {
		fmt.Println(Styles.Subtitle.Render(title))
	}
	fmt.Println(Styles.Box.Render(content))
}
