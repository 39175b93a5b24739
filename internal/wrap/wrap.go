// Package wrap reflows parsed segments into rows no wider than the viewport.
package wrap

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tomtext-pager/internal/markup"
)

// cutMarker is appended to segments shortened in cut mode.
const cutMarker = ".."

// DisplayLine is one terminal row. Source indexes the segment it came from.
type DisplayLine struct {
	Source int
	Text   string
}

type span struct {
	start int
	end   int
}

// WrapOne word-wraps text to width terminal cells. Breaks happen at the last
// space that fits, which is consumed; runs without a space are hard-broken.
// A glyph wider than width still gets a row of its own. Widths below one
// return the text unchanged and must be rejected by callers.
func WrapOne(text string, width int) []string {
	runes := []rune(text)
	if width < 1 {
		if len(runes) == 0 {
			return nil
		}
		return []string{text}
	}
	spans := breaks(runes, width)
	lines := make([]string, len(spans))
	for i, sp := range spans {
		lines[i] = string(runes[sp.start:sp.end])
	}
	return lines
}

func breaks(runes []rune, width int) []span {
	var spans []span
	start := 0
	for {
		end := fitEnd(runes, start, width)
		if end >= len(runes) {
			break
		}
		if end == start {
			end++
		}
		idx := lastSpace(runes[start:end])
		switch {
		case idx > 0:
			spans = append(spans, span{start, start + idx})
			start += idx + 1
		case idx == 0:
			if end-start > 1 {
				spans = append(spans, span{start + 1, end})
				start = end
			} else {
				start++
			}
		default:
			spans = append(spans, span{start, end})
			start = end
		}
	}
	if start < len(runes) {
		spans = append(spans, span{start, len(runes)})
	}
	return spans
}

// fitEnd returns the end of the longest run starting at start that occupies
// at most width cells.
func fitEnd(runes []rune, start, width int) int {
	cells := 0
	for i := start; i < len(runes); i++ {
		cells += ansi.StringWidth(string(runes[i]))
		if cells > width {
			return i
		}
	}
	return len(runes)
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// Wrap reflows every segment and tags each row with its segment index. An
// empty segment still yields one empty row so blank lines keep their place.
func Wrap(segments []markup.Segment, width int) []DisplayLine {
	lines := make([]DisplayLine, 0, len(segments))
	for i, seg := range segments {
		rows := WrapOne(seg.Text, width)
		if len(rows) == 0 {
			lines = append(lines, DisplayLine{Source: i})
			continue
		}
		for _, row := range rows {
			lines = append(lines, DisplayLine{Source: i, Text: row})
		}
	}
	return lines
}

// Cut shortens text that does not fit in width cells, preferring the last
// space before width-2 cells, and marks the cut with "..".
func Cut(text string, width int) string {
	if ansi.StringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	if width <= len(cutMarker) {
		return string(runes[:fitEnd(runes, 0, max(width, 0))])
	}
	head := runes[:fitEnd(runes, 0, width-len(cutMarker))]
	if idx := lastSpace(head); idx > 0 {
		head = head[:idx]
	}
	return string(head) + cutMarker
}

// CutAll produces exactly one row per segment.
func CutAll(segments []markup.Segment, width int) []DisplayLine {
	lines := make([]DisplayLine, len(segments))
	for i, seg := range segments {
		lines[i] = DisplayLine{Source: i, Text: Cut(seg.Text, width)}
	}
	return lines
}
