package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tomtext-pager/internal/loader"
	"github.com/atomicstack/tomtext-pager/internal/logging"
	"github.com/atomicstack/tomtext-pager/internal/testutil"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func captureLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pager.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

func newTestHarness(t *testing.T, opts Options) (*Harness, string) {
	t.Helper()
	captureLog(t)
	dir := t.TempDir()
	writeDoc(t, dir, "index.txt", ".h Title\n.l next.txt go here\nplain line\n")
	writeDoc(t, dir, "next.txt", ".h Next\nbody\n")
	l := loader.FileLoader{Dir: dir}
	if opts.Width == 0 {
		opts.Width = 40
	}
	if opts.Height == 0 {
		opts.Height = 12
	}
	opts.Wrap = true
	opts.Suggest = func(q string) []string { return l.Suggest(q, 5) }
	m, err := NewModel(l, "index.txt", opts)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return NewHarness(m), dir
}

func plainLines(h *Harness) []string {
	return strings.Split(ansi.Strip(h.View()), "\n")
}

func TestViewLayout(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	lines := plainLines(h)
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "1/1: index.txt" {
		t.Fatalf("unexpected banner %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", 40) {
		t.Fatalf("unexpected separator %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Title") {
		t.Fatalf("expected heading on first page row, got %q", lines[2])
	}
	view := h.Model().View()
	if !view.AltScreen {
		t.Fatalf("expected alt screen")
	}
	if view.Cursor == nil || view.Cursor.Y != 2 {
		t.Fatalf("expected cursor on row 2, got %+v", view.Cursor)
	}
}

func TestFooterReservesRow(t *testing.T) {
	h, _ := newTestHarness(t, Options{ShowFooter: true})
	lines := plainLines(h)
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[11], "o up") {
		t.Fatalf("expected footer hint, got %q", lines[11])
	}
	if got := h.Model().Tabs().Bounds().H; got != 8 {
		t.Fatalf("expected 8 page rows, got %d", got)
	}
}

func TestFollowLinkEndToEnd(t *testing.T) {
	h, _ := newTestHarness(t, Options{Verbose: true})
	logPath := captureLog(t)
	h.Keys("i", "enter")
	if !strings.Contains(ansi.Strip(h.View()), "go to next.txt?") {
		t.Fatalf("expected confirm dialog:\n%s", ansi.Strip(h.View()))
	}
	if h.Model().View().Cursor != nil {
		t.Fatalf("expected no page cursor while a dialog is open")
	}
	h.Keys("y")
	tabs := h.Model().Tabs()
	if tabs.Len() != 2 || tabs.Index() != 1 {
		t.Fatalf("expected second tab active, got %d/%d", tabs.Index(), tabs.Len())
	}
	lines := plainLines(h)
	if lines[0] != "2/2: next.txt" {
		t.Fatalf("unexpected banner %q", lines[0])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "opened next.txt") {
		t.Fatalf("expected verbose status line")
	}
	if data, err := os.ReadFile(logPath); err != nil || !strings.Contains(string(data), "tab opened") {
		t.Fatalf("expected tab opened log record, got %q (%v)", data, err)
	}
	h.Keys("n")
	if tabs.Index() != 0 {
		t.Fatalf("expected wrap to first tab, got %d", tabs.Index())
	}
}

func TestOpenPathFailureShowsError(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("p", "n", "o", "p", "e", "enter")
	tabs := h.Model().Tabs()
	if tabs.Len() != 1 || tabs.Index() != 0 {
		t.Fatalf("expected tab list unchanged, got %d/%d", tabs.Index(), tabs.Len())
	}
	lines := plainLines(h)
	if !strings.HasPrefix(lines[len(lines)-1], "Error: open nope") {
		t.Fatalf("expected error status, got %q", lines[len(lines)-1])
	}
	h.Keys("i")
	lines = plainLines(h)
	if lines[len(lines)-1] != "" {
		t.Fatalf("expected error cleared after next key, got %q", lines[len(lines)-1])
	}
}

func TestOpenPathCompletion(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("p", "n", "e", "x", "tab")
	if !strings.Contains(ansi.Strip(h.View()), "next.txt_") {
		t.Fatalf("expected completed input:\n%s", ansi.Strip(h.View()))
	}
	h.Keys("enter")
	if h.Model().Tabs().Len() != 2 {
		t.Fatalf("expected completed path to open")
	}
}

func TestOpenPathDialogFitsShortTerminal(t *testing.T) {
	h, dir := newTestHarness(t, Options{Height: 8})
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt"} {
		writeDoc(t, dir, name, "x\n")
	}
	h.Keys("p")
	if got := len(h.Model().Tabs().Active().Dialog().Suggestions()); got != 5 {
		t.Fatalf("expected 5 suggestions, got %d", got)
	}
	lines := plainLines(h)
	if len(lines) != 8 {
		t.Fatalf("expected 8 rows, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "1/1: index.txt" {
		t.Fatalf("expected banner kept on the first row, got %q", lines[0])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "enter path") {
		t.Fatalf("expected prompt visible:\n%s", strings.Join(lines, "\n"))
	}
}

func TestCloseTabThenEscapeIsNoop(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("v")
	if !strings.Contains(ansi.Strip(h.View()), "Delete current tab?") {
		t.Fatalf("expected delete dialog")
	}
	h.Keys("esc")
	if h.Model().Tabs().Len() != 1 || h.Model().Tabs().Active().Dialog() != nil {
		t.Fatalf("expected cancel to leave state unchanged")
	}
	h.Keys("v", "y")
	if h.Model().Tabs().Len() != 1 {
		t.Fatalf("expected last tab to survive")
	}
}

func TestQuitKey(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	if !h.Keys("ctrl+c") {
		t.Fatalf("expected ctrl+c to quit")
	}
	h2, _ := newTestHarness(t, Options{})
	h2.Keys("v")
	if !h2.Keys("ctrl+c") {
		t.Fatalf("expected ctrl+c to quit with a dialog open")
	}
}

func TestResizeRejectsDegenerateSizes(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.txt", strings.Repeat("line\n", 30))
	m, err := NewModel(loader.FileLoader{Dir: dir}, "index.txt", Options{InitialWidth: 40, InitialHeight: 12, Wrap: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 3})
	if !strings.Contains(h.View(), tooSmallNotice) {
		t.Fatalf("expected too-small notice, got %q", h.View())
	}
	if got := m.Tabs().Bounds().H; got != 9 {
		t.Fatalf("expected previous layout kept, got height %d", got)
	}
	h.Send(tea.WindowSizeMsg{Width: 0, Height: 20})
	if !strings.Contains(h.View(), tooSmallNotice) && h.View() != "" {
		t.Fatalf("expected zero width to be rejected, got %q", h.View())
	}
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 8})
	if strings.Contains(h.View(), tooSmallNotice) {
		t.Fatalf("expected notice cleared")
	}
	b := m.Tabs().Bounds()
	if b.W != 30 || b.H != 5 || b.Y != 2 {
		t.Fatalf("unexpected page bounds %+v", b)
	}
	vp := m.Tabs().Active().Selector().Viewport()
	if vp.Cursor.Current != vp.Cursor.Min+2 {
		t.Fatalf("expected recentered cursor after resize, got %+v", vp.Cursor)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	h, _ := newTestHarness(t, Options{Width: 40, Height: 12})
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 50})
	if b := h.Model().Tabs().Bounds(); b.W != 40 || b.H != 9 {
		t.Fatalf("expected fixed layout, got %+v", b)
	}
}

func TestViewGolden(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	testutil.AssertGolden(t, "view_index.golden", ansi.Strip(h.View()))
}
