package virtual

// Backtrack widens a window start so the group header owning the entry
// at start is rendered too. A header at start is returned unchanged; an
// item walks back to the nearest preceding header of its group.
//
// The result is never greater than start. Out of range starts are
// clamped into the list.
func Backtrack(flat []Entry, start int) int {
	if len(flat) == 0 {
		return 0
	}
	start = min(max(start, 0), len(flat)-1)
	e := flat[start]
	if e.IsGroup() {
		return start
	}
	// Flatten places the header exactly Item+1 rows above its item.
	if h := start - e.Item - 1; h >= 0 && flat[h].IsGroup() && flat[h].Group == e.Group {
		return h
	}
	for i := start - 1; i >= 0; i-- {
		if flat[i].IsGroup() && flat[i].Group == e.Group {
			return i
		}
	}
	// Unreachable for sequences built by Flatten.
	return start
}
