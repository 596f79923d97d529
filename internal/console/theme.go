package console

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Faint  lipgloss.Style
	Error  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Faint:  lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
