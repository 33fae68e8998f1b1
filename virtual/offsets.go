package virtual

import "sort"

// OffsetIndex holds prefix sums of entry heights so that offset lookups
// and the visible-range search cost O(log N) instead of a walk from 0.
// It is rebuilt lazily, only when the HeightCache version or the entry
// count differs from the last build.
type OffsetIndex struct {
	heights *HeightCache
	prefix  []int // prefix[i] is the offset of position i; prefix[n] is the total
	n       int
	version uint64
	valid   bool
	builds  int
}

// NewOffsetIndex returns an index over heights.
func NewOffsetIndex(heights *HeightCache) *OffsetIndex {
	return &OffsetIndex{heights: heights}
}

// Sync makes the index current for n entries.
func (x *OffsetIndex) Sync(n int) {
	if x.valid && x.n == n && x.version == x.heights.Version() {
		return
	}
	if cap(x.prefix) < n+1 {
		x.prefix = make([]int, n+1)
	} else {
		x.prefix = x.prefix[:n+1]
	}
	x.prefix[0] = 0
	for i := 0; i < n; i++ {
		x.prefix[i+1] = x.prefix[i] + x.heights.Height(i)
	}
	x.n = n
	x.version = x.heights.Version()
	x.valid = true
	x.builds++
}

// Offset is the cumulative height of all positions strictly before pos.
// pos is clamped to [0, n].
func (x *OffsetIndex) Offset(pos int) int {
	pos = min(max(pos, 0), x.n)
	return x.prefix[pos]
}

// Total is the summed height of all n entries.
func (x *OffsetIndex) Total() int { return x.prefix[x.n] }

// Find returns the first position whose bottom edge lies below top. A top
// at or past the total clamps to the last position.
func (x *OffsetIndex) Find(top int) int {
	if x.n == 0 {
		return 0
	}
	top = max(top, 0)
	i := sort.Search(x.n, func(i int) bool { return x.prefix[i+1] > top })
	return min(i, x.n-1)
}

// Visible is the indexed counterpart of ComputeVisible and returns the
// same Range for the same inputs.
func (x *OffsetIndex) Visible(n, scrollTop, viewport, overscan int) Range {
	x.Sync(n)
	if n == 0 {
		return Range{}
	}
	top := max(scrollTop, 0)
	start := x.Find(top)
	budget := viewport + overscan
	// smallest end in (start, n] whose bottom edge reaches top+budget
	k := sort.Search(n-start, func(k int) bool {
		return x.prefix[start+k+1]-top >= budget
	})
	return Range{Start: start, End: min(start+k+1, n)}
}

// Builds counts prefix rebuilds.
func (x *OffsetIndex) Builds() int { return x.builds }
