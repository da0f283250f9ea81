package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle wraps a background color and provides helpers for rendering
// text segments with background continuity. Joining pre-rendered
// segments with plain strings leaves gaps where the terminal default
// shows through, so spacing and fills go through the same background.
type BgStyle struct {
	bg lipgloss.Color
}

// NewBgStyle creates a BgStyle for the given background color.
func NewBgStyle(background string) BgStyle {
	return BgStyle{bg: lipgloss.Color(background)}
}

// Render applies a foreground style on top of the shared background.
func (b BgStyle) Render(style lipgloss.Style, text string) string {
	return style.Background(b.bg).Render(text)
}

// Space returns a single background-colored space.
func (b BgStyle) Space() string {
	return b.Spaces(1)
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Sep renders a separator with surrounding spaces on the background.
func (b BgStyle) Sep(style lipgloss.Style, sep string) string {
	return b.Space() + b.Render(style, sep) + b.Space()
}

// Join concatenates pre-rendered segments with background-colored
// single spaces between them.
func (b BgStyle) Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, b.Space())
}

// FillLine pads a rendered line with background-colored spaces up to
// the given width.
func (b BgStyle) FillLine(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return line + b.Spaces(gap)
}
