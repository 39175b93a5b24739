package wrap

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tomtext-pager/internal/markup"
)

func TestWrapOneLongParagraph(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("abcdefghi ", 17), " ")
	text += "j"
	if n := len([]rune(text)); n != 170 {
		t.Fatalf("fixture should be 170 runes, got %d", n)
	}
	lines := WrapOne(text, 80)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	total := 0
	for _, line := range lines {
		if len([]rune(line)) > 80 {
			t.Fatalf("line exceeds width: %q", line)
		}
		total += len([]rune(line))
	}
	if total+len(lines)-1 != 170 {
		t.Fatalf("expected 170 runes including consumed spaces, got %d", total+len(lines)-1)
	}
}

func TestWrapOneHardBreaksUnbrokenRuns(t *testing.T) {
	lines := WrapOne("abcdefghij", 4)
	want := []string{"abcd", "efgh", "ij"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, lines)
	}
}

func TestWrapOneLeadingSpaceIsNotEmitted(t *testing.T) {
	lines := WrapOne("abc def", 3)
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, " ") {
			t.Fatalf("unexpected line in %q", lines)
		}
	}
	if strings.Join(lines, "|") != "abc|de|f" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestWrapOneMeasuresCells(t *testing.T) {
	lines := WrapOne("日本語テキスト", 6)
	if strings.Join(lines, "|") != "日本語|テキス|ト" {
		t.Fatalf("unexpected lines %q", lines)
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 6 {
			t.Fatalf("row %q is %d cells wide", line, w)
		}
	}
	if got := strings.Join(WrapOne("日本", 1), "|"); got != "日|本" {
		t.Fatalf("expected one oversized glyph per row, got %q", got)
	}
	if got := strings.Join(WrapOne("ab 日本語", 5), "|"); got != "ab|日本|語" {
		t.Fatalf("expected break at space then cell-sized rows, got %q", got)
	}
}

func TestWrapOneShortTextUntouched(t *testing.T) {
	lines := WrapOne("short", 80)
	if len(lines) != 1 || lines[0] != "short" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if got := WrapOne("", 10); len(got) != 0 {
		t.Fatalf("expected no lines for empty text, got %q", got)
	}
}

func TestBreaksReconstructText(t *testing.T) {
	corpus := []string{
		"the quick brown fox jumps over the lazy dog",
		"a bb ccc dddd eeeee ffffff ggggggg hhhhhhhh",
		"supercalifragilisticexpialidocious is long",
		" leading space then words",
		"x",
	}
	for _, text := range corpus {
		runes := []rune(text)
		for width := 2; width <= 12; width++ {
			spans := breaks(runes, width)
			var rebuilt strings.Builder
			prev := 0
			for i, sp := range spans {
				if sp.end-sp.start > width {
					t.Fatalf("%q@%d: span %d too wide", text, width, i)
				}
				gap := string(runes[prev:sp.start])
				if gap != "" && gap != " " {
					t.Fatalf("%q@%d: gap %q before span %d", text, width, gap, i)
				}
				rebuilt.WriteString(gap)
				rebuilt.WriteString(string(runes[sp.start:sp.end]))
				prev = sp.end
			}
			if rebuilt.String() != text {
				t.Fatalf("%q@%d: rebuilt %q", text, width, rebuilt.String())
			}
		}
	}
}

func TestWrapTagsRowsWithSource(t *testing.T) {
	segments := markup.Parse([]string{".h Title", "one two three four", "", "end"})
	lines := Wrap(segments, 8)
	sources := make([]int, len(lines))
	for i, line := range lines {
		sources[i] = line.Source
	}
	want := []int{0, 1, 1, 1, 2, 3}
	if len(sources) != len(want) {
		t.Fatalf("expected sources %v, got %v", want, sources)
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Fatalf("expected sources %v, got %v", want, sources)
		}
	}
	if lines[4].Text != "" {
		t.Fatalf("expected blank row for empty segment, got %q", lines[4].Text)
	}
}

func TestWrapEndToEndOneRowPerShortSegment(t *testing.T) {
	segments := markup.Parse([]string{".h Title", ".l http://x go here", "plain line"})
	lines := Wrap(segments, 80)
	if len(lines) != 3 {
		t.Fatalf("expected 3 display lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line.Source != i {
			t.Fatalf("line %d refers to segment %d", i, line.Source)
		}
	}
}

func TestCut(t *testing.T) {
	if got := Cut("fits", 10); got != "fits" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := Cut("hello brave new world", 12); got != "hello.." {
		t.Fatalf("expected cut at last space, got %q", got)
	}
	if got := Cut("abcdefghijkl", 6); got != "abcd.." {
		t.Fatalf("expected hard cut, got %q", got)
	}
	if got := Cut("日本語テキスト", 6); got != "日本.." {
		t.Fatalf("expected cut measured in cells, got %q", got)
	}
	if got := Cut("abcdef", 2); got != "ab" {
		t.Fatalf("expected truncation for tiny widths, got %q", got)
	}
}

func TestCutAllOneRowPerSegment(t *testing.T) {
	segments := markup.Parse([]string{"a very long line of text here", "short"})
	lines := CutAll(segments, 10)
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line.Text)) > 10 {
			t.Fatalf("row too wide: %q", line.Text)
		}
	}
}
