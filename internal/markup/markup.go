// Package markup classifies document lines into headings, links and text.
package markup

import "strings"

const (
	linkPrefix    = ".l"
	headingPrefix = ".h"
)

// Kind identifies the class of a parsed line.
type Kind int

const (
	Text Kind = iota
	Heading
	Link
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Link:
		return "link"
	default:
		return "text"
	}
}

// Tag classifies one source line. Target is only set for links.
type Tag struct {
	Kind   Kind
	Target string
}

// Segment is one source line after parsing.
type Segment struct {
	Tag  Tag
	Text string
}

// IsLink reports whether the segment points at another document.
func (s Segment) IsLink() bool {
	return s.Tag.Kind == Link
}

// Parse classifies each raw line. The output has the same length and order as
// the input; malformed markup degrades to plain text.
func Parse(lines []string) []Segment {
	segments := make([]Segment, len(lines))
	for i, line := range lines {
		segments[i] = ParseLine(line)
	}
	return segments
}

// Split breaks raw document text into lines and parses them. A trailing
// newline does not produce an extra empty segment.
func Split(text string) []Segment {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return Parse(strings.Split(text, "\n"))
}

// ParseLine classifies a single line by its first two bytes.
func ParseLine(line string) Segment {
	if len(line) < 2 {
		return Segment{Tag: Tag{Kind: Text}, Text: line}
	}
	prefix, rest := line[:2], line[2:]
	switch prefix {
	case linkPrefix:
		rest = strings.TrimSpace(rest)
		target, label, found := strings.Cut(rest, " ")
		if !found {
			label = target
		}
		return Segment{Tag: Tag{Kind: Link, Target: target}, Text: label}
	case headingPrefix:
		return Segment{Tag: Tag{Kind: Heading}, Text: strings.TrimSpace(rest)}
	default:
		return Segment{Tag: Tag{Kind: Text}, Text: line}
	}
}
