package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateText truncates s to maxLen cells, appending "…" if truncated.
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return ansi.Truncate(s, maxLen, "…")
}

// WrapText wraps text to the given width, one entry per output line.
// Blank paragraphs are dropped; a single word wider than width is kept whole.
func WrapText(s string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		if paragraph == "" {
			continue
		}
		if width <= 0 {
			lines = append(lines, paragraph)
			continue
		}
		for _, line := range strings.Split(ansi.Wordwrap(paragraph, width, ""), "\n") {
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}
	return lines
}

// Rule is the horizontal separator printed under command headings.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
