package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"ytwiz/internal/model"
	"ytwiz/internal/progress"
	"ytwiz/internal/wizard"
)

const (
	appTitle  = "YouTube Downloader"
	maxURLLen = 50
)

var confirmOptions = []string{"Start Download", "Cancel"}

func (m Model) View() string {
	sections := []string{
		m.styles.Title.Render(appTitle),
		m.viewInfo(),
		m.viewStep(),
		m.help.View(stepHelp{keys: m.keys, step: m.machine.Step()}),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) viewInfo() string {
	sel := m.machine.Selections()
	row := func(label, value string, st lipgloss.Style) string {
		return m.styles.Label.Render(label) + st.Render(value)
	}
	lines := []string{
		m.styles.PanelHead.Render("Information"),
		row("Type:   ", sel.Type.String(), m.styles.Value),
		row("Format: ", model.FormatLabel(sel.Type, sel.Format), m.styles.Value),
		row("URL:    ", displayURL(sel.Locator), m.styles.URL),
		"",
		row("Status: ", sel.Status, m.styles.Status),
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewStep() string {
	mc := m.machine
	switch mc.Step() {
	case wizard.StepSelectType:
		labels := make([]string, len(model.DownloadTypes))
		for i, t := range model.DownloadTypes {
			labels[i] = t.String()
		}
		return m.viewList("Select Download Type", labels, mc.Cursor())
	case wizard.StepEnterURL:
		return m.viewInput(mc.Selections().Locator)
	case wizard.StepSelectFormat:
		return m.viewList("Select Format", model.FormatLabels(mc.Selections().Type), mc.Cursor())
	case wizard.StepConfirm:
		return m.viewList("Confirm", confirmOptions, mc.Cursor())
	case wizard.StepDownloading:
		return m.viewDownloading(mc.Progress().Snapshot())
	case wizard.StepComplete:
		return m.viewComplete(mc.Progress().Snapshot(), mc.Selections().Status)
	}
	return ""
}

func (m Model) viewList(title string, items []string, cursor int) string {
	lines := []string{m.styles.PanelHead.Render(title)}
	for i, it := range items {
		if i == cursor {
			lines = append(lines, m.styles.Cursor.Render("> ")+m.styles.Selected.Render(it))
			continue
		}
		lines = append(lines, "  "+m.styles.Item.Render(it))
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewInput(locator string) string {
	body := m.styles.Faint.Render("Type your YouTube URL and press Enter...")
	if locator != "" {
		body = m.styles.URL.Render(locator) + m.styles.Cursor.Render("█")
	}
	return m.styles.Panel.Render(m.styles.PanelHead.Render("Enter URL") + "\n\n" + body)
}

func (m Model) viewDownloading(snap progress.Snapshot) string {
	lines := []string{
		m.styles.PanelHead.Render("Downloading"),
		"",
		m.styles.Spinner.Render(spinnerFrame(snap)) + m.styles.Message.Render(snap.Message),
		"",
		"This may take a while depending on file size...",
		m.styles.Faint.Render("Please wait..."),
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewComplete(snap progress.Snapshot, status string) string {
	mark := m.styles.Error.Render("✗ FAILED")
	if snap.Outcome.Succeeded() {
		mark = m.styles.Success.Render("✓ SUCCESS")
	}
	lines := []string{
		m.styles.PanelHead.Render("Complete"),
		"",
		mark,
		"",
		status,
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}

// spinnerFrame maps the record's index onto the dot spinner. An inactive
// record shows the first frame.
func spinnerFrame(snap progress.Snapshot) string {
	frames := spinner.Dot.Frames
	if !snap.Active {
		return frames[0]
	}
	return frames[snap.SpinnerIndex%len(frames)]
}

func displayURL(s string) string {
	if s == "" {
		return "Not entered"
	}
	rs := []rune(s)
	if len(rs) > maxURLLen {
		return string(rs[:maxURLLen])
	}
	return s
}
