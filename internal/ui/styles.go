// Package ui provides Charm-based UI components for goodmood
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared styles, rebuilt whenever the palette changes.
var (
	Bold = lipgloss.NewStyle().Bold(true)

	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	QuoteStyle  lipgloss.Style
	AuthorStyle lipgloss.Style
	BioStyle    lipgloss.Style

	SuccessBox lipgloss.Style
	QuoteBox   lipgloss.Style

	HeaderStyle lipgloss.Style
)

func rebuildStyles(p Palette) {
	fg := func(s lipgloss.Style, c lipgloss.Color) lipgloss.Style {
		if p.Disabled {
			return s
		}
		return s.Foreground(c)
	}

	Title = fg(lipgloss.NewStyle().Bold(true).MarginBottom(1), p.Primary)
	Tagline = fg(lipgloss.NewStyle().Italic(true), p.Secondary)
	SuccessStyle = fg(lipgloss.NewStyle().Bold(true), p.Success)
	ErrorStyle = fg(lipgloss.NewStyle().Bold(true), p.Error)
	MutedStyle = fg(lipgloss.NewStyle(), p.Muted)
	HintStyle = fg(lipgloss.NewStyle().Italic(true), p.Muted)

	QuoteStyle = fg(lipgloss.NewStyle().Italic(true), p.Foreground)
	AuthorStyle = fg(lipgloss.NewStyle().Bold(true), p.Primary)
	BioStyle = fg(lipgloss.NewStyle(), p.Muted)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
	if p.Disabled {
		SuccessBox = box
		QuoteBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)
		HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		return
	}

	SuccessBox = box.BorderForeground(p.Success)
	QuoteBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 3)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Padding(0, 1).
		Bold(true)
}

// PrimaryStyle returns a bold style in the primary color.
func PrimaryStyle() lipgloss.Style {
	if activePalette.Disabled {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders a section header banner.
func Header(title string) string {
	return HeaderStyle.Render(title)
}
