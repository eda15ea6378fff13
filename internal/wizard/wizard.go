// Package wizard implements the step machine behind the download wizard:
// which step is current, what the user has chosen so far, the highlighted list
// entry and whether text entry is active. Transitions are plain method calls;
// the UI layer maps keys onto them.
package wizard

import (
	"fmt"

	"ytwiz/internal/downloader"
	"ytwiz/internal/model"
	"ytwiz/internal/progress"
)

// Step identifies the current wizard screen.
type Step int

const (
	StepSelectType Step = iota
	StepEnterURL
	StepSelectFormat
	StepConfirm
	StepDownloading
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepSelectType:
		return "select-type"
	case StepEnterURL:
		return "enter-url"
	case StepSelectFormat:
		return "select-format"
	case StepConfirm:
		return "confirm"
	case StepDownloading:
		return "downloading"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Direction moves the selection cursor.
type Direction int

const (
	Up Direction = iota
	Down
)

// Options on the confirm screen.
const (
	ConfirmStart = iota
	ConfirmCancel
)

// Status lines shown in the info panel.
const (
	StatusSelectType   = "Select download type using arrow keys and Enter"
	StatusSelectFormat = "Select output format using arrow keys"
	StatusConfirm      = "Press Enter to start download, or 'q' to cancel"
	StatusDownloading  = "Downloading... Please wait"
)

// Selections accumulate as the wizard advances.
type Selections struct {
	Type    model.DownloadType
	Locator string
	Format  int
	Status  string
}

// Launcher starts a download in the background. It must not block.
type Launcher interface {
	Launch(req downloader.Request, rec *progress.Record)
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(req downloader.Request, rec *progress.Record)

// Launch calls f(req, rec).
func (f LauncherFunc) Launch(req downloader.Request, rec *progress.Record) { f(req, rec) }

// Machine is the wizard state. It is not safe for concurrent use; only the
// interaction loop drives it. The progress record is the sole piece shared
// with the download worker.
type Machine struct {
	step      Step
	sel       Selections
	cursor    int
	inputMode bool
	progress  *progress.Record
	launcher  Launcher
}

// New returns a machine in its initial state.
func New(l Launcher) *Machine {
	return &Machine{
		step: StepSelectType,
		sel: Selections{
			Type:   model.NoType,
			Format: model.NoFormat,
			Status: StatusSelectType,
		},
		progress: progress.NewRecord(),
		launcher: l,
	}
}

func (m *Machine) Step() Step                 { return m.step }
func (m *Machine) Selections() Selections     { return m.sel }
func (m *Machine) Cursor() int                { return m.cursor }
func (m *Machine) InputMode() bool            { return m.inputMode }
func (m *Machine) Progress() *progress.Record { return m.progress }

// OptionCount returns the number of selectable entries on the current step.
// It bounds cursor movement and defines the format domain.
func (m *Machine) OptionCount() int {
	switch m.step {
	case StepSelectType:
		return len(model.DownloadTypes)
	case StepSelectFormat:
		return model.FormatCount(m.sel.Type)
	case StepConfirm:
		return 2
	default:
		return 0
	}
}

// MoveCursor moves the highlight with wraparound.
func (m *Machine) MoveCursor(d Direction) {
	n := m.OptionCount()
	if n == 0 || m.inputMode {
		return
	}
	switch d {
	case Up:
		m.cursor = (m.cursor - 1 + n) % n
	case Down:
		m.cursor = (m.cursor + 1) % n
	}
}

func (m *Machine) editing() bool {
	return m.step == StepEnterURL && m.inputMode
}

// PushChar appends r to the locator while text entry is active.
func (m *Machine) PushChar(r rune) {
	if !m.editing() {
		return
	}
	m.sel.Locator += string(r)
}

// PopChar removes the last character of the locator while text entry is active.
func (m *Machine) PopChar() {
	if !m.editing() || m.sel.Locator == "" {
		return
	}
	rs := []rune(m.sel.Locator)
	m.sel.Locator = string(rs[:len(rs)-1])
}

// Confirm advances from the current step.
func (m *Machine) Confirm() {
	switch m.step {
	case StepSelectType:
		m.sel.Type = model.DownloadTypes[m.cursor]
		m.sel.Status = fmt.Sprintf("%s selected. Enter YouTube URL", m.sel.Type)
		m.step = StepEnterURL
		m.inputMode = true

	case StepEnterURL:
		if m.sel.Locator == "" {
			return
		}
		m.inputMode = false
		m.sel.Status = StatusSelectFormat
		m.step = StepSelectFormat
		m.cursor = 0

	case StepSelectFormat:
		if m.OptionCount() == 0 {
			return
		}
		m.sel.Format = m.cursor
		m.sel.Status = StatusConfirm
		m.step = StepConfirm
		m.cursor = 0

	case StepConfirm:
		if m.cursor == ConfirmStart {
			m.startDownload()
			return
		}
		m.Reset()
	}
}

func (m *Machine) startDownload() {
	m.step = StepDownloading
	m.sel.Status = StatusDownloading
	// Active before the worker exists.
	m.progress.Begin()
	req := downloader.Request{
		Type:    m.sel.Type,
		Format:  m.sel.Format,
		Locator: m.sel.Locator,
	}
	if m.launcher == nil {
		m.progress.Finish(progress.OutcomeFailed)
		return
	}
	m.launcher.Launch(req, m.progress)
}

// Restart returns a completed wizard to its initial state. It reports
// whether anything happened.
func (m *Machine) Restart() bool {
	if m.step != StepComplete {
		return false
	}
	m.Reset()
	return true
}

// Reset discards every selection and installs a fresh progress record.
func (m *Machine) Reset() {
	*m = *New(m.launcher)
}

// CheckCompletion moves Downloading to Complete once the worker has written
// its terminal message. Later calls are no-ops because the step gate no
// longer matches.
func (m *Machine) CheckCompletion() bool {
	if m.step != StepDownloading {
		return false
	}
	msg, ok := m.progress.Completed()
	if !ok {
		return false
	}
	m.step = StepComplete
	m.sel.Status = msg
	return true
}

// AdvanceSpinner steps the download spinner while a download is in flight.
func (m *Machine) AdvanceSpinner() {
	if m.step != StepDownloading {
		return
	}
	m.progress.Advance()
}
