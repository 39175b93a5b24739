package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/atomicstack/tomtext-pager/internal/markup"
)

// ColorPair is a foreground/background pair in any form lipgloss.Color accepts.
type ColorPair struct {
	FG string `toml:"fg"`
	BG string `toml:"bg"`
}

// Palette holds the user-configurable colours.
type Palette struct {
	Heading ColorPair `toml:"heading"`
	Text    ColorPair `toml:"text"`
	Link    ColorPair `toml:"link"`
	Banner  ColorPair `toml:"banner"`
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Heading: ColorPair{FG: "#E169B4", BG: "#000000"},
		Text:    ColorPair{FG: "#E1B469", BG: "#000000"},
		Link:    ColorPair{FG: "#B469E1", BG: "#000000"},
		Banner:  ColorPair{FG: "#B4B4B4"},
	}
}

// Merge fills empty colours in p from fallback.
func (p Palette) Merge(fallback Palette) Palette {
	p.Heading = p.Heading.merge(fallback.Heading)
	p.Text = p.Text.merge(fallback.Text)
	p.Link = p.Link.merge(fallback.Link)
	p.Banner = p.Banner.merge(fallback.Banner)
	return p
}

func (c ColorPair) merge(fallback ColorPair) ColorPair {
	if c.FG == "" {
		c.FG = fallback.FG
	}
	if c.BG == "" {
		c.BG = fallback.BG
	}
	return c
}

func (c ColorPair) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.FG != "" {
		s = s.Foreground(lipgloss.Color(c.FG))
	}
	if c.BG != "" {
		s = s.Background(lipgloss.Color(c.BG))
	}
	return s
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Heading        *lipgloss.Style
	Text           *lipgloss.Style
	Link           *lipgloss.Style
	Banner         *lipgloss.Style
	Separator      *lipgloss.Style
	Dialog         *lipgloss.Style
	DialogPrompt   *lipgloss.Style
	Option         *lipgloss.Style
	SelectedOption *lipgloss.Style
	Input          *lipgloss.Style
	Suggestion     *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
	Notice         *lipgloss.Style
}

// New builds the style set for a palette.
func New(p Palette) *Styles {
	p = p.Merge(DefaultPalette())
	banner := p.Banner.style()
	return &Styles{
		Heading:   ptr(p.Heading.style().Bold(true)),
		Text:      ptr(p.Text.style()),
		Link:      ptr(p.Link.style().Underline(true)),
		Banner:    ptr(banner.Bold(true)),
		Separator: ptr(banner.Faint(true)),
		Dialog: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Link.FG)).Padding(0, 1),
		),
		DialogPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Heading.FG)).Bold(true),
		),
		Option: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		SelectedOption: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
		),
		Input: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.FG)),
		),
		Suggestion: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Notice: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
		),
	}
}

var defaultStyles = New(DefaultPalette())

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return defaultStyles
}

// ForKind returns the style for a segment class.
func (s *Styles) ForKind(kind markup.Kind) *lipgloss.Style {
	switch kind {
	case markup.Heading:
		return s.Heading
	case markup.Link:
		return s.Link
	default:
		return s.Text
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
