package ui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tomtext-pager/internal/logging"
	"github.com/atomicstack/tomtext-pager/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		events.App.Quit(m.tabs.Len())
		return tea.Quit
	}
	events.UI.Key(keyMsg.String())

	before := m.tabs.Len()
	handled, err := m.tabs.Update(keyMsg)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	if !handled {
		return nil
	}
	m.errMsg = ""
	m.clearInfo()
	if after := m.tabs.Len(); after != before {
		var status string
		if after > before {
			status = fmt.Sprintf("opened %s", m.tabs.Active().Title())
			logging.Info("tab opened", "path", m.tabs.Active().Path(), "tabs", after)
		} else {
			status = "closed tab"
			logging.Info("tab closed", "tabs", after)
		}
		if m.verbose {
			m.setInfo(status)
		}
	}
	active := m.tabs.Active()
	sel := active.Selector()
	events.UI.Cursor(active.Path(), sel.CursorRow(), sel.SelectedIndex())
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	bounds, err := m.contentBounds()
	if err == nil {
		err = m.tabs.Resize(bounds)
	}
	if err != nil {
		m.tooSmall = true
		events.UI.ResizeRejected(m.width, m.height, err)
		logging.Warn("resize rejected", "width", m.width, "height", m.height, "err", err)
		return nil
	}
	m.tooSmall = false
	events.UI.Resize(m.width, m.height)
	return nil
}
