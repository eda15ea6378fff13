package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title     lipgloss.Style
	Panel     lipgloss.Style
	PanelHead lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	URL       lipgloss.Style
	Status    lipgloss.Style
	Cursor    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Faint     lipgloss.Style
	Spinner   lipgloss.Style
	Message   lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	border := lipgloss.Color("#4B5563")
	return Styles{
		Title: base.Bold(true).
			Foreground(lipgloss.Color("#22D3EE")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),
		Panel: base.Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		PanelHead: base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Label:     base.Foreground(lipgloss.Color("#6B7280")),
		Value:     base.Foreground(lipgloss.Color("#22C55E")),
		URL:       base.Foreground(lipgloss.Color("#F59E0B")),
		Status:    base.Foreground(lipgloss.Color("#22D3EE")),
		Cursor:    base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Item:      base.Foreground(lipgloss.Color("#D1D5DB")),
		Selected:  base.Bold(true).Background(lipgloss.Color("#374151")),
		Success:   base.Bold(true).Foreground(lipgloss.Color("#22C55E")),
		Error:     base.Bold(true).Foreground(lipgloss.Color("#EF4444")),
		Faint:     base.Faint(true),
		Spinner:   base.Bold(true).Foreground(lipgloss.Color("#22D3EE")),
		Message:   base.Bold(true).Foreground(lipgloss.Color("#F59E0B")),
	}
}
