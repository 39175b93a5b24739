package app

import (
	"errors"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/atomicstack/tomtext-pager/internal/loader"
	"github.com/atomicstack/tomtext-pager/internal/theme"
	"github.com/atomicstack/tomtext-pager/internal/ui"
	"github.com/atomicstack/tomtext-pager/internal/ui/keymap"
)

const maxSuggestions = 5

// Config describes user-provided application options.
type Config struct {
	DocumentPath string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Wrap         bool
	Palette      theme.Palette
}

// Run bootstraps and executes the Bubble Tea program. Bubble Tea restores the
// terminal on every exit path, including errors and ctrl+c.
func Run(cfg Config) error {
	model, err := NewModel(cfg, loader.FileLoader{})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel builds the UI model for cfg, sized from the controlling terminal
// when one is attached.
func NewModel(cfg Config, l loader.FileLoader) (*ui.Model, error) {
	width, height := terminalSize()
	return ui.NewModel(l, cfg.DocumentPath, ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  width,
		InitialHeight: height,
		ShowFooter:    cfg.ShowFooter,
		Verbose:       cfg.Verbose,
		Wrap:          cfg.Wrap,
		Styles:        theme.New(cfg.Palette),
		Keys:          keymap.Default(),
		Suggest: func(query string) []string {
			return l.Suggest(query, maxSuggestions)
		},
	})
}

func terminalSize() (int, int) {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			return w, h
		}
	}
	return 0, 0
}
