package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the narrator and the table.
type Theme struct {
	Title   lipgloss.Style
	Node    lipgloss.Style
	Update  lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
}

// DefaultTheme is the colored theme for interactive terminals.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		Node:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Update:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	}
}

// PlainTheme renders without colors or emphasis; used for logs, files and tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:   plain,
		Node:    plain,
		Update:  plain,
		Muted:   plain,
		Warning: plain,
		Header:  plain.Padding(0, 1),
		Cell:    plain.Padding(0, 1),
		Border:  plain,
	}
}
