// Package header renders the one-line title bar above the word list.
package header

import (
	"fmt"

	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/ui/common"
)

// Model holds the state for the compact header.
type Model struct {
	words    int
	groups   int
	grouping string
	source   string
	version  string
	width    int
}

// NewHeader returns a Model for version.
func NewHeader(version string) Model {
	return Model{version: version}
}

// SetCounts updates the loaded word and group totals.
func (m *Model) SetCounts(words, groups int) {
	m.words = words
	m.groups = groups
}

// SetGrouping updates the grouping label, e.g. "topic".
func (m *Model) SetGrouping(g string) { m.grouping = g }

// SetSource updates the source label, e.g. "sqlite".
func (m *Model) SetSource(s string) { m.source = s }

// SetWidth updates the terminal width the line is cut to.
func (m *Model) SetWidth(w int) { m.width = w }

// Version returns the version string.
func (m Model) Version() string { return m.version }

// View renders: "osa-vocab  5 words in 2 groups · by topic · yaml".
func (m Model) View() string {
	title := style.GradientTitle("osa-vocab")
	if m.version != "" && m.version != "dev" {
		title += style.Faint.Render(" " + m.version)
	}
	detail := fmt.Sprintf("  %s in %s", common.Plural(m.words, "word"), common.Plural(m.groups, "group"))
	if m.grouping != "" {
		detail += " · by " + m.grouping
	}
	if m.source != "" {
		detail += " · " + m.source
	}
	line := title + style.AppDetail.Render(detail)
	if m.width > 0 {
		return common.Truncate(line, m.width)
	}
	return line
}
