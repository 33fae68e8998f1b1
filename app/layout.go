package app

// minListHeight keeps the list usable in very short terminals.
const minListHeight = 3

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	HeaderHeight int
	FilterHeight int // 0 unless the filter prompt is shown
	StatusHeight int
	ListWidth    int
	ListHeight   int
}

// ComputeLayout splits the terminal into header, list, filter prompt and
// status line. The list takes whatever the other rows leave.
func ComputeLayout(termW, termH int, filterVisible bool) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: 1,
		StatusHeight: 1,
		ListWidth:    max(termW, 1),
	}
	if filterVisible {
		l.FilterHeight = 1
	}

	l.ListHeight = termH - l.HeaderHeight - l.FilterHeight - l.StatusHeight
	if l.ListHeight < minListHeight {
		l.ListHeight = minListHeight
	}
	return l
}
