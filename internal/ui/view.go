package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	headerRows     = 2
	tooSmallNotice = "terminal too small"
	windowTitle    = "tomtext-pager"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	active := m.tabs.Active()
	view.WindowTitle = windowTitle + ": " + active.Title()
	if m.tooSmall {
		view.SetContent(m.styles.Notice.Render(truncateText(tooSmallNotice, m.width)))
		return view
	}

	lines := make([]string, 0, m.height)
	lines = append(lines,
		m.styles.Banner.Render(truncateText(m.tabs.Banner(), m.width)),
		m.styles.Separator.Render(strings.Repeat("-", m.width)),
	)
	lines = append(lines, active.View(m.styles))
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, m.styles.Footer.Render(truncateText(m.keys.Hint(), m.width)))
	}
	view.SetContent(strings.Join(lines, "\n"))

	if active.Dialog() == nil {
		sel := active.Selector()
		view.Cursor = tea.NewCursor(sel.Bounds().X, sel.CursorRow())
	}
	return view
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return m.styles.Error.Render(truncateText("Error: "+m.errMsg, m.width))
	}
	if info := m.currentInfo(); info != "" {
		return m.styles.Info.Render(truncateText(info, m.width))
	}
	return ""
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "…")
}
