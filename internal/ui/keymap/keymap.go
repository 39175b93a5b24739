// Package keymap defines the pager's key bindings.
package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// KeyMap holds the bindings that apply while no dialog is open.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	Select   key.Binding
	OpenPath key.Binding
	CloseTab key.Binding
	Quit     key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("o", "up"),
			key.WithHelp("o", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("i", "down"),
			key.WithHelp("i", "down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		OpenPath: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "open path"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "close tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTab, k.NextTab, k.Select, k.OpenPath, k.CloseTab, k.Quit}
}

// Hint renders the footer help line.
func (k KeyMap) Hint() string {
	bindings := k.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// Rows returns every binding as a (keys, description) pair.
func (k KeyMap) Rows() [][]string {
	bindings := k.ShortHelp()
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, []string{strings.Join(b.Keys(), "/"), b.Help().Desc})
	}
	return rows
}
