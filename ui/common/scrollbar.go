package common

import (
	"strings"

	"github.com/miosa/osa-vocab/style"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Scrollbar renders a vertical scrollbar as a single column of characters.
//
// The track occupies viewportHeight rows. The thumb is positioned and sized
// proportionally to the visible region within the total content. When the
// content fits within the viewport the returned string is empty.
func Scrollbar(viewportHeight, contentHeight, offset int) string {
	rows := ScrollbarRows(viewportHeight, contentHeight, offset)
	if rows == nil {
		return ""
	}
	return strings.Join(rows, "\n")
}

// ScrollbarRows is Scrollbar split into one styled cell per row, for
// callers that join it line by line. Returns nil when no scrollbar is
// needed.
func ScrollbarRows(viewportHeight, contentHeight, offset int) []string {
	vh := viewportHeight
	ch := contentHeight
	if vh <= 0 || ch <= vh {
		return nil
	}

	top, size := thumb(vh, ch, offset)
	rows := make([]string, vh)
	for i := range rows {
		if i >= top && i < top+size {
			rows[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			rows[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return rows
}

// thumb returns the thumb's top row and height within a vh-row track.
func thumb(vh, ch, offset int) (top, size int) {
	size = min(max(vh*vh/ch, 1), vh)
	if scrollable := ch - vh; scrollable > 0 {
		top = offset * (vh - size) / scrollable
	}
	top = min(max(top, 0), vh-size)
	return top, size
}
