package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	column     lipgloss.Style
	cell       lipgloss.Style
	missing    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	success    lipgloss.Style
	fieldKey   lipgloss.Style
	fieldValue lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		missing:    lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fieldKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		fieldValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
