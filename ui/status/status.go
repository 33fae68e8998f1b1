// Package status provides the bottom status bar model for osa-vocab.
// It renders the reading position, the active filter and load errors.
package status

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/ui/common"
)

// Position locates the row on the first viewport line. Indices are 1-based;
// a zero Groups means the list is empty.
type Position struct {
	Group  int
	Groups int
	Word   int
	Words  int
}

// Model is the status bar state. Drive it via setter methods; it has no Update loop.
type Model struct {
	width    int
	pos      Position
	query    string
	err      error
	help     string
	showHelp bool
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetWidth updates the width the bar is fitted to.
func (m *Model) SetWidth(w int) { m.width = w }

// SetPosition updates the reading position.
func (m *Model) SetPosition(p Position) { m.pos = p }

// SetQuery updates the active filter shown as a pill.
func (m *Model) SetQuery(q string) { m.query = q }

// SetError shows err in place of the position; nil clears it.
func (m *Model) SetError(err error) { m.err = err }

// SetHelp stores the rendered key help line.
func (m *Model) SetHelp(help string) { m.help = help }

// ToggleHelp switches between the position and the key help.
func (m *Model) ToggleHelp() { m.showHelp = !m.showHelp }

// HideHelp returns to the position display.
func (m *Model) HideHelp() { m.showHelp = false }

// ShowingHelp reports whether the key help is displayed.
func (m Model) ShowingHelp() bool { return m.showHelp }

// View renders the single status line.
//
// Error: the error message only.
// Help: the key help line.
// Otherwise: "group i/n · word j/m" on the left, pills and "? help" on the right.
func (m Model) View() string {
	if m.err != nil {
		return style.StatusError.Render(common.Truncate(m.err.Error(), m.width))
	}
	if m.showHelp {
		return common.Truncate(m.help, m.width)
	}

	left := style.StatusDetail.Render(m.pos.String())
	var right []string
	if pill := FilterPill(m.query); pill != "" {
		right = append(right, pill)
	}
	right = append(right, style.StatusBar.Render("? help"))
	r := strings.Join(right, style.HelpSeparator.Render(" · "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(r)
	if gap < 1 {
		return common.Truncate(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + r
}

func (p Position) String() string {
	if p.Groups == 0 {
		return "no words"
	}
	return fmt.Sprintf("group %d/%d · word %d/%d", p.Group, p.Groups, p.Word, p.Words)
}
