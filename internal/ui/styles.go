package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the report output.
// Off a TTY (the usual case in CI logs) they render as plain text.

var (
	// BannerStyle renders the report title line.
	BannerStyle = lipgloss.NewStyle().Bold(true)

	// SectionOKStyle renders improvement/within-threshold section headers.
	SectionOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")) // Green

	// SectionNewStyle renders the new-benchmarks section header.
	SectionNewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray

	// SectionFailStyle renders the regressions section header.
	SectionFailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")). // Red
				Bold(true)
)
