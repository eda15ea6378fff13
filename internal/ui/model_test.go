package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ytwiz/internal/downloader"
	"ytwiz/internal/model"
	"ytwiz/internal/progress"
	"ytwiz/internal/wizard"
)

type captureLauncher struct {
	reqs []downloader.Request
	rec  *progress.Record
}

func (l *captureLauncher) Launch(req downloader.Request, rec *progress.Record) {
	l.reqs = append(l.reqs, req)
	l.rec = rec
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel() (Model, *captureLauncher) {
	l := &captureLauncher{}
	return NewModel(wizard.New(l), 10*time.Millisecond, nil), l
}

// send feeds msgs through Update and reports whether the last one quit.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, bool) {
	t.Helper()
	var quit bool
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		quit = false
		if _, isTick := msg.(tickMsg); !isTick && cmd != nil {
			_, quit = cmd().(tea.QuitMsg)
		}
	}
	return m, quit
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name     string
		setup    []tea.Msg
		key      tea.KeyMsg
		wantQuit bool
	}{
		{name: "esc on type list", key: keyEsc, wantQuit: true},
		{name: "ctrl+c on type list", key: keyCtrlC, wantQuit: true},
		{name: "q on type list", key: runes("q"), wantQuit: true},
		{name: "esc while typing", setup: []tea.Msg{keyEnter}, key: keyEsc, wantQuit: true},
		{name: "q while typing", setup: []tea.Msg{keyEnter}, key: runes("q"), wantQuit: false},
		{name: "q on format list", setup: []tea.Msg{keyEnter, runes("x"), keyEnter}, key: runes("q"), wantQuit: true},
		{name: "enter", key: keyEnter, wantQuit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel()
			m, _ = send(t, m, tt.setup...)
			_, quit := send(t, m, tt.key)
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestTypingURL(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m,
		keyEnter,
		runes("https://youtu.be/q"),
		keySpace,
		runes("jkr"),
		keyBack,
		keyUp,
		keyDown,
	)

	mc := m.Machine()
	if mc.Step() != wizard.StepEnterURL {
		t.Fatalf("Step() = %v, want %v", mc.Step(), wizard.StepEnterURL)
	}
	if got, want := mc.Selections().Locator, "https://youtu.be/q jk"; got != want {
		t.Errorf("Locator = %q, want %q", got, want)
	}
}

func TestRunesIgnoredOutsideInput(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, runes("abc"), keyBack, keySpace)
	if got := m.Machine().Selections().Locator; got != "" {
		t.Errorf("Locator = %q, want empty", got)
	}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, keyUp)
	if got := m.Machine().Cursor(); got != 2 {
		t.Errorf("Cursor() after up = %d, want 2", got)
	}
	m, _ = send(t, m, runes("j"))
	if got := m.Machine().Cursor(); got != 0 {
		t.Errorf("Cursor() after j = %d, want 0", got)
	}
	m, _ = send(t, m, runes("k"), keyDown)
	if got := m.Machine().Cursor(); got != 0 {
		t.Errorf("Cursor() after k, down = %d, want 0", got)
	}
}

func TestRestartOnlyWhenComplete(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, keyDown, runes("r"))
	if m.Machine().Cursor() != 1 || m.Machine().Step() != wizard.StepSelectType {
		t.Errorf("r outside Complete changed state: step=%v cursor=%d", m.Machine().Step(), m.Machine().Cursor())
	}
}

// downloadAudioMP3 walks the wizard to a launched audio/mp3 download.
func downloadAudioMP3(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m,
		keyDown, keyEnter,
		runes("http://x"), keyEnter,
		keyDown, keyEnter,
		keyEnter,
	)
	if m.Machine().Step() != wizard.StepDownloading {
		t.Fatalf("Step() = %v, want %v", m.Machine().Step(), wizard.StepDownloading)
	}
	return m
}

func TestTickCompletesOnce(t *testing.T) {
	m, l := newTestModel()
	m = downloadAudioMP3(t, m)

	want := downloader.Request{Type: model.TypeAudio, Format: 1, Locator: "http://x"}
	if len(l.reqs) != 1 || l.reqs[0] != want {
		t.Fatalf("launches = %+v, want [%+v]", l.reqs, want)
	}

	m, _ = send(t, m, tickMsg(time.Now()), tickMsg(time.Now()))
	if m.Machine().Step() != wizard.StepDownloading {
		t.Fatalf("Step() = %v before the worker finished", m.Machine().Step())
	}
	if got := m.Machine().Progress().Snapshot().SpinnerIndex; got != 2 {
		t.Errorf("SpinnerIndex = %d after two ticks, want 2", got)
	}

	l.rec.SetMessage("Downloading audio in mp3 format...")
	l.rec.Finish(progress.OutcomeComplete)

	m, _ = send(t, m, tickMsg(time.Now()))
	mc := m.Machine()
	if mc.Step() != wizard.StepComplete {
		t.Fatalf("Step() = %v, want %v", mc.Step(), wizard.StepComplete)
	}
	if got := mc.Selections().Status; got != progress.MessageComplete {
		t.Errorf("Status = %q, want %q", got, progress.MessageComplete)
	}

	m, _ = send(t, m, tickMsg(time.Now()), tickMsg(time.Now()))
	if got := m.Machine().Selections().Status; got != progress.MessageComplete {
		t.Errorf("Status changed on later ticks: %q", got)
	}
}

func TestTickReschedules(t *testing.T) {
	m, _ := newTestModel()
	if m.Init() == nil {
		t.Fatal("Init() returned no tick command")
	}
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestRestartAfterFailure(t *testing.T) {
	m, l := newTestModel()
	m = downloadAudioMP3(t, m)
	l.rec.Finish(progress.OutcomeFailed)
	m, _ = send(t, m, tickMsg(time.Now()))

	if got := m.Machine().Selections().Status; got != progress.MessageFailed {
		t.Fatalf("Status = %q, want %q", got, progress.MessageFailed)
	}
	if !strings.Contains(m.View(), "✗") {
		t.Error("View() lacks the failure mark")
	}

	m, _ = send(t, m, runes("r"))
	mc := m.Machine()
	if mc.Step() != wizard.StepSelectType || mc.Cursor() != 0 || mc.InputMode() {
		t.Errorf("after restart step=%v cursor=%d inputMode=%v", mc.Step(), mc.Cursor(), mc.InputMode())
	}
	wantSel := wizard.Selections{Type: model.NoType, Format: model.NoFormat, Status: wizard.StatusSelectType}
	if got := mc.Selections(); got != wantSel {
		t.Errorf("Selections() = %+v, want %+v", got, wantSel)
	}

	m, _ = send(t, m, tickMsg(time.Now()))
	if m.Machine().Step() != wizard.StepSelectType {
		t.Errorf("tick after restart moved to %v", m.Machine().Step())
	}
}

func TestViewByStep(t *testing.T) {
	m, l := newTestModel()

	v := m.View()
	for _, want := range []string{"YouTube Downloader", "Not selected", "Not entered", "Video", "Subtitles", wizard.StatusSelectType} {
		if !strings.Contains(v, want) {
			t.Errorf("initial View() missing %q", want)
		}
	}

	m = downloadAudioMP3(t, m)
	v = m.View()
	for _, want := range []string{"Audio", "MP3", "http://x", progress.InitialMessage} {
		if !strings.Contains(v, want) {
			t.Errorf("downloading View() missing %q", want)
		}
	}

	l.rec.Finish(progress.OutcomeComplete)
	m, _ = send(t, m, tickMsg(time.Now()))
	v = m.View()
	if !strings.Contains(v, "✓") || !strings.Contains(v, progress.MessageComplete) {
		t.Errorf("complete View() = %q", v)
	}
}

func TestDisplayURL(t *testing.T) {
	long := strings.Repeat("a", 60)
	tests := []struct {
		in, want string
	}{
		{in: "", want: "Not entered"},
		{in: "http://x", want: "http://x"},
		{in: long, want: long[:50]},
	}
	for _, tt := range tests {
		if got := displayURL(tt.in); got != tt.want {
			t.Errorf("displayURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
