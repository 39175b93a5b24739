// Package selector renders a scrollable, selectable view over a parsed
// document.
package selector

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tomtext-pager/internal/markup"
	"github.com/atomicstack/tomtext-pager/internal/theme"
	"github.com/atomicstack/tomtext-pager/internal/ui/state"
	"github.com/atomicstack/tomtext-pager/internal/wrap"
)

// Selector owns the reflowed rows of one document and the viewport over them.
type Selector struct {
	segments []markup.Segment
	lines    []wrap.DisplayLine
	wrap     bool
	bounds   state.Bounds
	viewport state.Viewport
}

// New builds a selector for segments inside bounds. With wrapEnabled false
// every segment occupies exactly one row and long text is cut.
func New(segments []markup.Segment, wrapEnabled bool, bounds state.Bounds) *Selector {
	if len(segments) == 0 {
		segments = []markup.Segment{{Tag: markup.Tag{Kind: markup.Text}}}
	}
	s := &Selector{
		segments: segments,
		wrap:     wrapEnabled,
		bounds:   bounds,
	}
	s.lines = s.reflow()
	s.viewport = state.NewViewport(len(s.lines), bounds)
	return s
}

func (s *Selector) reflow() []wrap.DisplayLine {
	if s.wrap {
		return wrap.Wrap(s.segments, s.bounds.W)
	}
	return wrap.CutAll(s.segments, s.bounds.W)
}

// Resize reflows for the new region and recenters the cursor. Callers must
// pass validated bounds.
func (s *Selector) Resize(bounds state.Bounds) {
	s.bounds = bounds
	s.lines = s.reflow()
	s.viewport.Resize(len(s.lines), bounds)
}

// Bounds returns the region last assigned to the selector.
func (s *Selector) Bounds() state.Bounds {
	return s.bounds
}

// MoveCursorUp moves the selection up one row.
func (s *Selector) MoveCursorUp() bool {
	return s.viewport.MoveUp()
}

// MoveCursorDown moves the selection down one row.
func (s *Selector) MoveCursorDown() bool {
	return s.viewport.MoveDown()
}

// CursorRow returns the absolute screen row of the selection.
func (s *Selector) CursorRow() int {
	return s.viewport.Cursor.Current
}

// Viewport exposes the cursor and scroll state.
func (s *Selector) Viewport() state.Viewport {
	return s.viewport
}

// SelectedIndex returns the index of the segment under the cursor.
func (s *Selector) SelectedIndex() int {
	return s.lines[s.viewport.Index()].Source
}

// SelectedSegment returns the segment under the cursor.
func (s *Selector) SelectedSegment() *markup.Segment {
	return &s.segments[s.SelectedIndex()]
}

// Lines returns the reflowed rows.
func (s *Selector) Lines() []wrap.DisplayLine {
	return s.lines
}

// View renders the visible rows top to bottom. The selected row is drawn in
// reverse video across the full width.
func (s *Selector) View(styles *theme.Styles) []string {
	start, end := s.viewport.Window()
	selected := s.viewport.Index()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := s.lines[i]
		style := styles.ForKind(s.segments[line.Source].Tag.Kind)
		text := ansi.Truncate(line.Text, s.bounds.W, "")
		if i == selected {
			rows = append(rows, selectedStyle(style, s.bounds.W).Render(text))
			continue
		}
		rows = append(rows, style.Render(text))
	}
	return rows
}

func selectedStyle(base *lipgloss.Style, width int) lipgloss.Style {
	return base.Reverse(true).Width(width).MaxWidth(width)
}
