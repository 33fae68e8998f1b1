// Package common provides shared rendering helpers used across the
// osa-vocab UI components.
package common

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vocab/style"
)

// Truncate shortens s to maxLen display columns, appending "…" if
// truncated. Escape sequences are kept intact.
func Truncate(s string, maxLen int) string {
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return ansi.Truncate(s, maxLen, "…")
}

// PadRight pads s on the right with spaces until the rendered display width
// equals width. Returns s unchanged if it already meets or exceeds width.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Divider returns a horizontal rule of the given width rendered in the border color.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(style.Border).Render(strings.Repeat("─", width))
}

// WrapText hard-wraps text so that no rendered line exceeds width columns.
// Existing newlines are preserved; long words are not split.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		lineLen := 0
		for j, word := range strings.Fields(para) {
			wLen := lipgloss.Width(word)
			switch {
			case j == 0:
				lineLen = wLen
			case lineLen+1+wLen > width:
				out.WriteByte('\n')
				lineLen = wLen
			default:
				out.WriteByte(' ')
				lineLen += 1 + wLen
			}
			out.WriteString(word)
		}
	}
	return out.String()
}

// Plural formats a count with a noun, adding "s" unless n == 1.
//
//	Plural(1, "word") → "1 word"
//	Plural(3, "word") → "3 words"
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
