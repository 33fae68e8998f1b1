package virtual

// Range is a half-open span [Start, End) of flat positions.
type Range struct {
	Start int
	End   int
}

// Len is the number of positions in r.
func (r Range) Len() int { return r.End - r.Start }

// Scan selects how the visible range is located.
type Scan int

const (
	// ScanIndexed binary-searches the OffsetIndex prefix sums.
	ScanIndexed Scan = iota
	// ScanLinear walks heights from position 0 on every query. O(N) per
	// scroll event; fine for a few hundred rows.
	ScanLinear
)

func (s Scan) String() string {
	if s == ScanLinear {
		return "linear"
	}
	return "indexed"
}

// ParseScan maps "linear" and "indexed" to a Scan. Anything else is
// ScanIndexed.
func ParseScan(s string) Scan {
	if s == "linear" {
		return ScanLinear
	}
	return ScanIndexed
}

// ComputeVisible walks flat from position 0 accumulating heights. Start
// is the first position whose bottom edge lies below scrollTop; End is
// the exclusive position at which the visible height accumulated from
// Start reaches viewport+overscan. Only the part of Start below
// scrollTop counts as visible, so a tall partially scrolled row never
// lets End cut into the viewport.
//
// An empty list yields {0, 0}. A scrollTop at or beyond the total height
// clamps Start to the last position and End to len(flat).
func ComputeVisible(flat []Entry, heights *HeightCache, scrollTop, viewport, overscan int) Range {
	n := len(flat)
	if n == 0 {
		return Range{}
	}
	scrollTop = max(scrollTop, 0)

	start, acc := 0, 0
	for ; start < n-1; start++ {
		h := heights.Height(start)
		if acc+h > scrollTop {
			break
		}
		acc += h
	}

	budget := viewport + overscan
	end := n
	seen := acc - scrollTop
	for i := start; i < n; i++ {
		seen += heights.Height(i)
		if seen >= budget {
			end = i + 1
			break
		}
	}
	return Range{Start: start, End: end}
}

// OffsetOf sums heights strictly before pos by walking from 0.
func OffsetOf(heights *HeightCache, pos int) int {
	off := 0
	for i := 0; i < pos; i++ {
		off += heights.Height(i)
	}
	return off
}

// TotalHeight sums the heights of n entries.
func TotalHeight(heights *HeightCache, n int) int {
	return OffsetOf(heights, n)
}
