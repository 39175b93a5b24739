// Package tabs holds the open documents and turns a tab's dialog results into
// tab-list changes.
package tabs

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tomtext-pager/internal/loader"
	"github.com/atomicstack/tomtext-pager/internal/logging/events"
	"github.com/atomicstack/tomtext-pager/internal/markup"
	"github.com/atomicstack/tomtext-pager/internal/theme"
	"github.com/atomicstack/tomtext-pager/internal/ui/dialog"
	"github.com/atomicstack/tomtext-pager/internal/ui/keymap"
	"github.com/atomicstack/tomtext-pager/internal/ui/selector"
	"github.com/atomicstack/tomtext-pager/internal/ui/state"
)

const (
	textPrompt    = "You've selected some text."
	headingPrompt = "You've selected a heading."
	deletePrompt  = "Delete current tab?"
	pathPrompt    = "enter path: "
)

// IntentKind is what a tab asks its manager to do after a key press.
type IntentKind int

const (
	None IntentKind = iota
	Redraw
	Open
	Delete
	CycleLeft
	CycleRight
)

func (k IntentKind) String() string {
	switch k {
	case Redraw:
		return "redraw"
	case Open:
		return "open"
	case Delete:
		return "delete"
	case CycleLeft:
		return "cycle-left"
	case CycleRight:
		return "cycle-right"
	default:
		return "none"
	}
}

// Intent is a tab's response to input. Path is the requested target for Open;
// Source is the document that contained it, empty for typed paths.
type Intent struct {
	Kind   IntentKind
	Path   string
	Source string
}

// Tab is one open document with its selector and dialog stack.
type Tab struct {
	title    string
	path     string
	selector *selector.Selector
	dialogs  []*dialog.Dialog
	keys     keymap.KeyMap
	suggest  dialog.Suggester
}

// NewTab builds a tab over a loaded document.
func NewTab(title string, doc loader.Document, wrapEnabled bool, bounds state.Bounds, keys keymap.KeyMap, suggest dialog.Suggester) *Tab {
	if title == "" {
		title = doc.Path
	}
	return &Tab{
		title:    title,
		path:     doc.Path,
		selector: selector.New(doc.Segments, wrapEnabled, bounds),
		keys:     keys,
		suggest:  suggest,
	}
}

// Title returns the name shown in the banner.
func (t *Tab) Title() string { return t.title }

// Path returns the absolute path of the document.
func (t *Tab) Path() string { return t.path }

// Selector exposes the document view.
func (t *Tab) Selector() *selector.Selector { return t.selector }

// Dialog returns the live dialog, or nil.
func (t *Tab) Dialog() *dialog.Dialog {
	if len(t.dialogs) == 0 {
		return nil
	}
	return t.dialogs[len(t.dialogs)-1]
}

// PushDialog layers d over the tab.
func (t *Tab) PushDialog(d *dialog.Dialog) {
	t.dialogs = append(t.dialogs, d)
	events.Dialog.Open(d.Action().Kind.String(), d.Prompt())
}

func (t *Tab) popDialog() *dialog.Dialog {
	d := t.Dialog()
	if d != nil {
		t.dialogs = t.dialogs[:len(t.dialogs)-1]
	}
	return d
}

// Resize assigns a new region to the selector and every stacked dialog.
func (t *Tab) Resize(bounds state.Bounds) {
	t.selector.Resize(bounds)
	for _, d := range t.dialogs {
		d.Resize(bounds)
	}
}

// Update routes a key to the live dialog or, without one, to navigation. The
// boolean is false when the key was ignored and nothing changed.
func (t *Tab) Update(msg tea.KeyPressMsg) (Intent, bool) {
	if d := t.Dialog(); d != nil {
		return t.updateDialog(d, msg)
	}
	switch {
	case key.Matches(msg, t.keys.Up):
		return Intent{Kind: Redraw}, t.selector.MoveCursorUp()
	case key.Matches(msg, t.keys.Down):
		return Intent{Kind: Redraw}, t.selector.MoveCursorDown()
	case key.Matches(msg, t.keys.PrevTab):
		return Intent{Kind: CycleLeft}, true
	case key.Matches(msg, t.keys.NextTab):
		return Intent{Kind: CycleRight}, true
	case key.Matches(msg, t.keys.Select):
		t.PushDialog(t.selectionDialog())
		return Intent{Kind: Redraw}, true
	case key.Matches(msg, t.keys.OpenPath):
		d := dialog.NewFreeText(dialog.Action{Kind: dialog.OpenPath}, pathPrompt, t.selector.Bounds())
		if t.suggest != nil {
			d.WithSuggestions(t.suggest)
		}
		t.PushDialog(d)
		return Intent{Kind: Redraw}, true
	case key.Matches(msg, t.keys.CloseTab):
		t.PushDialog(dialog.NewConfirm(dialog.Action{Kind: dialog.DeleteTab}, deletePrompt, t.selector.Bounds()))
		return Intent{Kind: Redraw}, true
	}
	return Intent{}, false
}

func (t *Tab) selectionDialog() *dialog.Dialog {
	seg := t.selector.SelectedSegment()
	bounds := t.selector.Bounds()
	switch seg.Tag.Kind {
	case markup.Link:
		action := dialog.Action{Kind: dialog.FollowLink, Target: seg.Tag.Target}
		return dialog.NewConfirm(action, "go to "+seg.Tag.Target+"?", bounds)
	case markup.Heading:
		return dialog.NewAcknowledge(headingPrompt, bounds)
	default:
		return dialog.NewAcknowledge(textPrompt, bounds)
	}
}

func (t *Tab) updateDialog(d *dialog.Dialog, msg tea.KeyPressMsg) (Intent, bool) {
	res, ok := d.Update(msg)
	if !ok {
		return Intent{}, false
	}
	switch res {
	case dialog.Cancel:
		t.popDialog()
		events.Dialog.Cancel(d.Action().Kind.String())
		return Intent{Kind: Redraw}, true
	case dialog.Submit:
		t.popDialog()
		return t.submit(d), true
	default:
		return Intent{Kind: Redraw}, true
	}
}

// submit maps the dialog's purpose and final state to an intent. Combinations
// without a meaning only redraw.
func (t *Tab) submit(d *dialog.Dialog) Intent {
	action := d.Action()
	switch {
	case action.Kind == dialog.FollowLink && d.Kind() == dialog.Choose:
		events.Dialog.Submit(action.Kind.String(), string(d.Selected()))
		if d.Selected() == 'y' {
			return Intent{Kind: Open, Path: action.Target, Source: t.path}
		}
	case action.Kind == dialog.OpenPath && d.Kind() == dialog.FreeText:
		events.Dialog.Submit(action.Kind.String(), d.Buffer())
		if path := strings.TrimSpace(d.Buffer()); path != "" {
			return Intent{Kind: Open, Path: path}
		}
	case action.Kind == dialog.DeleteTab && d.Kind() == dialog.Choose:
		events.Dialog.Submit(action.Kind.String(), string(d.Selected()))
		if d.Selected() == 'y' {
			return Intent{Kind: Delete}
		}
	default:
		events.Dialog.Submit(action.Kind.String(), "")
	}
	return Intent{Kind: Redraw}
}

// View renders the live dialog, or the document rows padded to the region
// height.
func (t *Tab) View(styles *theme.Styles) string {
	if d := t.Dialog(); d != nil {
		return d.View(styles)
	}
	rows := t.selector.View(styles)
	for len(rows) < t.selector.Bounds().H {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}
