package ui

import (
	"reflect"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tomtext-pager/internal/theme"
	"github.com/atomicstack/tomtext-pager/internal/ui/dialog"
	"github.com/atomicstack/tomtext-pager/internal/ui/keymap"
	"github.com/atomicstack/tomtext-pager/internal/ui/state"
	"github.com/atomicstack/tomtext-pager/internal/ui/tabs"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	infoTTL       = 5 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Width and Height pin the layout to a fixed size
// when positive; otherwise the terminal size is followed, starting from
// InitialWidth and InitialHeight.
type Options struct {
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	Verbose       bool
	Wrap          bool
	Styles        *theme.Styles
	Keys          keymap.KeyMap
	Suggest       dialog.Suggester
}

// Model implements the Bubble Tea model for the pager.
type Model struct {
	tabs        *tabs.Manager
	keys        keymap.KeyMap
	styles      *theme.Styles
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	tooSmall    bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel opens path as the first tab and lays it out for the initial size.
// It fails when the document cannot be loaded or the size leaves no room for
// the page.
func NewModel(l tabs.Loader, path string, opts Options) (*Model, error) {
	m := &Model{
		keys:       opts.Keys,
		styles:     opts.Styles,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		width:      pick(opts.InitialWidth, defaultWidth),
		height:     pick(opts.InitialHeight, defaultHeight),
	}
	if m.styles == nil {
		m.styles = theme.Default()
	}
	if len(m.keys.Quit.Keys()) == 0 {
		m.keys = keymap.Default()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	bounds, err := m.contentBounds()
	if err != nil {
		return nil, err
	}
	mgr, err := tabs.NewManager(l, path, bounds, tabs.Options{
		Wrap:    opts.Wrap,
		Keys:    m.keys,
		Suggest: opts.Suggest,
	})
	if err != nil {
		return nil, err
	}
	m.tabs = mgr
	m.registerHandlers()
	return m, nil
}

func pick(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

// Tabs exposes the tab manager.
func (m *Model) Tabs() *tabs.Manager {
	return m.tabs
}

// contentBounds returns the page region: below the banner and separator and
// above the status line and optional footer.
func (m *Model) contentBounds() (state.Bounds, error) {
	full, err := state.NewBounds(0, 0, m.width, m.height)
	if err != nil {
		return state.Bounds{}, err
	}
	bottom := 1
	if m.showFooter {
		bottom++
	}
	return full.Shrink(headerRows, bottom)
}
