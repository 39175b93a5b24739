// Package dialog implements the modal prompts layered over a tab: plain
// acknowledgements, option choices and free-text input.
package dialog

import (
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tomtext-pager/internal/theme"
	"github.com/atomicstack/tomtext-pager/internal/ui/state"
)

const (
	maxContentWidth = 60
	maxSuggestions  = 5
	// border rows plus the prompt and input rows
	frameRows = 4
)

// Kind is the input state of a dialog.
type Kind int

const (
	None Kind = iota
	Choose
	FreeText
)

// Result is the outcome of feeding a key to a dialog.
type Result int

const (
	Stay Result = iota
	Cancel
	Submit
)

func (r Result) String() string {
	switch r {
	case Cancel:
		return "cancel"
	case Submit:
		return "submit"
	default:
		return "stay"
	}
}

// ActionKind says what a submitted dialog is for.
type ActionKind int

const (
	Acknowledge ActionKind = iota
	FollowLink
	OpenPath
	DeleteTab
)

func (k ActionKind) String() string {
	switch k {
	case FollowLink:
		return "follow-link"
	case OpenPath:
		return "open-path"
	case DeleteTab:
		return "delete-tab"
	default:
		return "acknowledge"
	}
}

// Action is the purpose of a dialog. Target is set for FollowLink.
type Action struct {
	Kind   ActionKind
	Target string
}

// Option is one selectable answer of a Choose dialog.
type Option struct {
	Key   rune
	Label string
}

// YesNo are the options of a confirmation.
var YesNo = []Option{{Key: 'y', Label: "yes"}, {Key: 'n', Label: "no"}}

// Suggester returns completions for the current free-text buffer.
type Suggester func(query string) []string

// Dialog is a modal state machine. Only one of the Choose or FreeText fields is
// meaningful, according to kind.
type Dialog struct {
	action      Action
	prompt      string
	kind        Kind
	options     []Option
	selected    rune
	buffer      []rune
	suggest     Suggester
	suggestions []string
	bounds      state.Bounds
}

// NewAcknowledge returns a dialog that only needs to be dismissed.
func NewAcknowledge(prompt string, bounds state.Bounds) *Dialog {
	return &Dialog{action: Action{Kind: Acknowledge}, prompt: prompt, kind: None, bounds: bounds}
}

// NewChoose returns a dialog answered by pressing one of the option keys.
func NewChoose(action Action, prompt string, options []Option, selected rune, bounds state.Bounds) *Dialog {
	return &Dialog{
		action:   action,
		prompt:   prompt,
		kind:     Choose,
		options:  append([]Option(nil), options...),
		selected: selected,
		bounds:   bounds,
	}
}

// NewConfirm returns a yes/no dialog defaulting to no.
func NewConfirm(action Action, prompt string, bounds state.Bounds) *Dialog {
	return NewChoose(action, prompt, YesNo, 'n', bounds)
}

// NewFreeText returns a dialog collecting a line of text.
func NewFreeText(action Action, prompt string, bounds state.Bounds) *Dialog {
	return &Dialog{action: action, prompt: prompt, kind: FreeText, bounds: bounds}
}

// WithSuggestions enables completion for a free-text dialog.
func (d *Dialog) WithSuggestions(fn Suggester) *Dialog {
	d.suggest = fn
	d.refreshSuggestions()
	return d
}

// Action returns the purpose the dialog was opened with.
func (d *Dialog) Action() Action { return d.action }

// Kind returns the input state of the dialog.
func (d *Dialog) Kind() Kind { return d.kind }

// Prompt returns the question shown to the user.
func (d *Dialog) Prompt() string { return d.prompt }

// Selected returns the chosen option key of a Choose dialog.
func (d *Dialog) Selected() rune { return d.selected }

// Buffer returns the text typed into a FreeText dialog.
func (d *Dialog) Buffer() string { return string(d.buffer) }

// Suggestions returns the current completions.
func (d *Dialog) Suggestions() []string { return d.suggestions }

// SetBuffer replaces the free-text input.
func (d *Dialog) SetBuffer(text string) {
	d.buffer = []rune(text)
	d.refreshSuggestions()
}

// Resize assigns a new region to the dialog.
func (d *Dialog) Resize(bounds state.Bounds) {
	d.bounds = bounds
}

// Update applies one key press. The boolean is false when the key means
// nothing to the dialog, in which case no state was changed.
func (d *Dialog) Update(msg tea.KeyPressMsg) (Result, bool) {
	switch msg.String() {
	case "esc":
		return Cancel, true
	case "enter":
		if d.kind == Choose {
			return Stay, true
		}
		return Submit, true
	}
	switch d.kind {
	case FreeText:
		return d.updateFreeText(msg)
	case Choose:
		return d.updateChoose(msg)
	}
	return Stay, false
}

func (d *Dialog) updateFreeText(msg tea.KeyPressMsg) (Result, bool) {
	switch msg.String() {
	case "backspace":
		if len(d.buffer) > 0 {
			d.buffer = d.buffer[:len(d.buffer)-1]
			d.refreshSuggestions()
		}
		return Stay, true
	case "ctrl+w":
		d.deleteWordBackward()
		return Stay, true
	case "tab":
		if len(d.suggestions) == 0 {
			return Stay, false
		}
		d.SetBuffer(d.suggestions[0])
		return Stay, true
	}
	if msg.Text == "" || msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return Stay, false
	}
	for _, r := range msg.Text {
		if !unicode.IsPrint(r) {
			return Stay, false
		}
	}
	d.buffer = append(d.buffer, []rune(msg.Text)...)
	d.refreshSuggestions()
	return Stay, true
}

func (d *Dialog) deleteWordBackward() {
	i := len(d.buffer)
	for i > 0 && unicode.IsSpace(d.buffer[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(d.buffer[i-1]) && d.buffer[i-1] != '/' {
		i--
	}
	if i == len(d.buffer) && i > 0 {
		i--
	}
	d.buffer = d.buffer[:i]
	d.refreshSuggestions()
}

func (d *Dialog) updateChoose(msg tea.KeyPressMsg) (Result, bool) {
	runes := []rune(msg.Text)
	if len(runes) != 1 {
		return Stay, false
	}
	for _, opt := range d.options {
		if opt.Key == runes[0] {
			d.selected = opt.Key
			return Submit, true
		}
	}
	return Stay, false
}

func (d *Dialog) refreshSuggestions() {
	if d.suggest == nil {
		d.suggestions = nil
		return
	}
	d.suggestions = d.suggest(string(d.buffer))
	if len(d.suggestions) > maxSuggestions {
		d.suggestions = d.suggestions[:maxSuggestions]
	}
}

// visibleSuggestions returns the completions that fit below the input row.
func (d *Dialog) visibleSuggestions() []string {
	room := max(0, d.bounds.H-frameRows)
	if len(d.suggestions) > room {
		return d.suggestions[:room]
	}
	return d.suggestions
}

// View renders the dialog box centred in its region, never taller than it.
func (d *Dialog) View(styles *theme.Styles) string {
	width := d.bounds.W - 4
	if width > maxContentWidth {
		width = maxContentWidth
	}
	if width < 1 {
		width = 1
	}
	fit := func(s string) string { return ansi.Truncate(s, width, "…") }

	lines := []string{styles.DialogPrompt.Render(fit(d.prompt))}
	switch d.kind {
	case None:
		lines = append(lines, styles.Info.Render(fit("enter or esc to close")))
	case Choose:
		parts := make([]string, len(d.options))
		for i, opt := range d.options {
			label := "[" + string(opt.Key) + "]" + strings.TrimPrefix(opt.Label, string(opt.Key))
			if opt.Key == d.selected {
				parts[i] = styles.SelectedOption.Render(label)
			} else {
				parts[i] = styles.Option.Render(label)
			}
		}
		lines = append(lines, fit(strings.Join(parts, "  ")))
	case FreeText:
		input := string(d.buffer) + "_"
		if over := ansi.StringWidth(input) - width; over > 0 {
			input = ansi.TruncateLeft(input, over, "")
		}
		lines = append(lines, styles.Input.Render(input))
		for _, s := range d.visibleSuggestions() {
			lines = append(lines, styles.Suggestion.Render(fit(s)))
		}
	}
	box := styles.Dialog.MaxHeight(d.bounds.H).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(d.bounds.W, d.bounds.H, lipgloss.Center, lipgloss.Center, box)
}
