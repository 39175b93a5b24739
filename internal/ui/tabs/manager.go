package tabs

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tomtext-pager/internal/loader"
	"github.com/atomicstack/tomtext-pager/internal/logging/events"
	"github.com/atomicstack/tomtext-pager/internal/ui/dialog"
	"github.com/atomicstack/tomtext-pager/internal/ui/keymap"
	"github.com/atomicstack/tomtext-pager/internal/ui/state"
)

// Loader supplies documents and resolves link targets against the document
// that contains them.
type Loader interface {
	Load(path string) (loader.Document, error)
	Resolve(target, source string) string
}

// Options configures a Manager.
type Options struct {
	Wrap    bool
	Keys    keymap.KeyMap
	Suggest dialog.Suggester
}

// Manager owns a non-empty list of tabs and the index of the active one.
type Manager struct {
	tabs   []*Tab
	active int
	bounds state.Bounds
	loader Loader
	opts   Options
}

// NewManager opens path as the first tab. The error is returned unchanged so
// the caller can fail startup.
func NewManager(l Loader, path string, bounds state.Bounds, opts Options) (*Manager, error) {
	m := &Manager{bounds: bounds, loader: l, opts: opts}
	if err := m.Open(path, ""); err != nil {
		return nil, err
	}
	return m, nil
}

// Len returns the number of open tabs.
func (m *Manager) Len() int { return len(m.tabs) }

// Index returns the position of the active tab.
func (m *Manager) Index() int { return m.active }

// Active returns the tab that receives input.
func (m *Manager) Active() *Tab { return m.tabs[m.active] }

// Tabs returns the open tabs in order.
func (m *Manager) Tabs() []*Tab { return m.tabs }

// Bounds returns the region shared by all tabs.
func (m *Manager) Bounds() state.Bounds { return m.bounds }

// Banner describes the active tab as "position/total: title".
func (m *Manager) Banner() string {
	return fmt.Sprintf("%d/%d: %s", m.active+1, len(m.tabs), m.Active().Title())
}

// Update feeds a key to the active tab and applies its intent. A failed open
// leaves the tab list untouched and returns the load error.
func (m *Manager) Update(msg tea.KeyPressMsg) (bool, error) {
	intent, handled := m.Active().Update(msg)
	if !handled {
		return false, nil
	}
	switch intent.Kind {
	case Open:
		if err := m.Open(intent.Path, intent.Source); err != nil {
			return true, err
		}
	case Delete:
		m.Remove()
	case CycleLeft:
		m.Rotate(-1)
	case CycleRight:
		m.Rotate(1)
	}
	return true, nil
}

// Open loads target and pushes it as the new active tab. Targets that came
// from a link are resolved relative to source.
func (m *Manager) Open(target, source string) error {
	path := m.loader.Resolve(target, source)
	doc, err := m.loader.Load(path)
	if err != nil {
		events.Tab.OpenFailed(path, err)
		return fmt.Errorf("open %s: %w", target, err)
	}
	m.Push(NewTab(target, doc, m.opts.Wrap, m.bounds, m.opts.Keys, m.opts.Suggest))
	return nil
}

// Push appends t and makes it active.
func (m *Manager) Push(t *Tab) {
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	events.Tab.Open(t.Path(), m.active, len(m.tabs))
}

// Remove closes the active tab and activates the last one. The only remaining
// tab is never removed.
func (m *Manager) Remove() bool {
	current := m.Active()
	if len(m.tabs) <= 1 {
		events.Tab.CloseRefused(current.Path())
		return false
	}
	m.tabs = append(m.tabs[:m.active], m.tabs[m.active+1:]...)
	m.active = len(m.tabs) - 1
	events.Tab.Close(current.Path(), len(m.tabs))
	return true
}

// Rotate moves the active index by delta with wraparound.
func (m *Manager) Rotate(delta int) {
	from := m.active
	n := len(m.tabs)
	m.active = ((m.active+delta)%n + n) % n
	events.Tab.Cycle(from, m.active)
}

// Resize assigns bounds to every tab, not only the active one. Unchanged
// bounds are ignored so cursors are not recentered needlessly.
func (m *Manager) Resize(bounds state.Bounds) error {
	if !bounds.Valid() {
		return fmt.Errorf("resize: %w", state.ErrDegenerateBounds)
	}
	if bounds == m.bounds {
		return nil
	}
	m.bounds = bounds
	for _, t := range m.tabs {
		t.Resize(bounds)
	}
	return nil
}
