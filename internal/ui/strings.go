package ui

import "strings"

// truncate shortens a string to max characters, appending an ellipsis
// when anything was cut. A max below one returns the empty string.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// padRight pads a string with spaces to the given display width,
// truncating first when it is too long.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if gap := width - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
