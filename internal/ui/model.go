package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"ytwiz/internal/wizard"
)

const defaultInterval = 100 * time.Millisecond

// Model adapts a wizard.Machine to Bubble Tea. Update is the only place the
// machine is driven; the download worker touches nothing but the record.
type Model struct {
	machine  *wizard.Machine
	interval time.Duration
	logger   *log.Logger

	keys   keyMap
	help   help.Model
	styles Styles
	width  int
}

// NewModel wraps m. A non-positive interval falls back to 100ms.
func NewModel(m *wizard.Machine, interval time.Duration, logger *log.Logger) Model {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		machine:  m,
		interval: interval,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
	}
}

// Machine exposes the wrapped state machine.
func (m Model) Machine() *wizard.Machine { return m.machine }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.handleKey(msg) {
			m.logger.Debug("quit requested", "step", m.machine.Step())
			return m, tea.Quit
		}

	case tickMsg:
		m.onTick()
		return m, m.tick()
	}
	return m, nil
}

// onTick is one iteration of the poll loop: apply a finished download, then
// animate.
func (m Model) onTick() {
	if m.machine.CheckCompletion() {
		snap := m.machine.Progress().Snapshot()
		m.logger.Info("download completed", "outcome", snap.Outcome, "status", snap.Message)
	}
	m.machine.AdvanceSpinner()
}

// handleKey applies k to the machine and reports whether the program should
// exit.
func (m Model) handleKey(k tea.KeyMsg) bool {
	mc := m.machine
	before := mc.Step()
	defer func() {
		if after := mc.Step(); after != before {
			m.logger.Debug("step changed", "from", before, "to", after)
		}
	}()

	if key.Matches(k, m.keys.Quit) {
		return true
	}

	if mc.InputMode() {
		switch k.Type {
		case tea.KeyRunes:
			for _, r := range k.Runes {
				mc.PushChar(r)
			}
			return false
		case tea.KeySpace:
			mc.PushChar(' ')
			return false
		}
		if key.Matches(k, m.keys.Backspace) {
			mc.PopChar()
			return false
		}
	} else if key.Matches(k, m.keys.QuitQ) {
		return true
	}

	switch {
	case key.Matches(k, m.keys.Confirm):
		mc.Confirm()
	case key.Matches(k, m.keys.Up):
		mc.MoveCursor(wizard.Up)
	case key.Matches(k, m.keys.Down):
		mc.MoveCursor(wizard.Down)
	case key.Matches(k, m.keys.Restart):
		mc.Restart()
	}
	return false
}
