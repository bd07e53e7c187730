// Package render formats analysis results for terminals and JSON consumers.
package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for console output.
type Theme struct {
	Block    lipgloss.Style
	Location lipgloss.Style
	LineNum  lipgloss.Style
	Summary  lipgloss.Style
	Dim      lipgloss.Style
}

// DefaultTheme is the default color scheme.
var DefaultTheme = Theme{
	Block:    lipgloss.NewStyle().Bold(true),
	Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var theme = DefaultTheme
