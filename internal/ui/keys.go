package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"ytwiz/internal/wizard"
)

type keyMap struct {
	Quit      key.Binding
	QuitQ     key.Binding
	Confirm   key.Binding
	Up        key.Binding
	Down      key.Binding
	Restart   key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		QuitQ: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// stepHelp implements help.KeyMap for whatever the current step accepts.
type stepHelp struct {
	keys keyMap
	step wizard.Step
}

func (h stepHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.step {
	case wizard.StepEnterURL:
		return []key.Binding{k.Confirm, k.Backspace, k.Quit}
	case wizard.StepDownloading:
		return []key.Binding{k.QuitQ}
	case wizard.StepComplete:
		return []key.Binding{k.Restart, k.QuitQ}
	default:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.QuitQ}
	}
}

func (h stepHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
