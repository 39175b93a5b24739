package ui

import tea "charm.land/bubbletea/v2"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
// It reports whether the model asked to quit.
func (h *Harness) Send(msg tea.Msg) bool {
	if h.model == nil {
		return false
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return h.processCmd(cmd)
}

// Keys sends each string as a key press. "enter", "esc", "backspace" and
// "ctrl+c" are sent as their special keys.
func (h *Harness) Keys(keys ...string) bool {
	for _, k := range keys {
		if h.Send(KeyPress(k)) {
			return true
		}
	}
	return false
}

func (h *Harness) processCmd(cmd tea.Cmd) bool {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return false
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
	return false
}

// View returns the current view content.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View().Content
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// KeyPress builds the key message for a key name.
func KeyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(k)
	return tea.KeyPressMsg{Code: r[0], Text: k}
}
