package virtual

// Kind tags an Entry as a group header or a group item.
type Kind uint8

const (
	KindGroup Kind = iota
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// Entry is one row of the flattened list.
type Entry struct {
	Kind     Kind
	Group    int // owning group index
	Item     int // zero-based index within the group; 0 for headers
	Position int // index in the flat sequence
}

// IsGroup reports whether e is a group header.
func (e Entry) IsGroup() bool { return e.Kind == KindGroup }

// Flatten emits, for each group in order, one header entry followed by
// counts[g] item entries. Negative counts are treated as empty groups.
//
// len(Flatten(c)) == sum(c) + len(c).
func Flatten(counts []int) []Entry {
	if len(counts) == 0 {
		return nil
	}
	n := len(counts)
	for _, c := range counts {
		if c > 0 {
			n += c
		}
	}
	flat := make([]Entry, 0, n)
	for g, c := range counts {
		flat = append(flat, Entry{Kind: KindGroup, Group: g, Position: len(flat)})
		for i := 0; i < c; i++ {
			flat = append(flat, Entry{Kind: KindItem, Group: g, Item: i, Position: len(flat)})
		}
	}
	return flat
}

// Index memoizes Flatten on the identity of the counts slice. Supplying
// the same slice (same backing array and length) again is free.
type Index struct {
	counts []int
	flat   []Entry
	built  bool
}

// Set installs counts and rebuilds the flat sequence when needed. It
// reports whether the list shape changed, i.e. whether any measured
// heights keyed by position have become stale.
func (x *Index) Set(counts []int) bool {
	if x.built && sameSlice(x.counts, counts) {
		return false
	}
	changed := !x.built || !equalCounts(x.counts, counts)
	x.counts = counts
	x.flat = Flatten(counts)
	x.built = true
	return changed
}

// Entries returns the flat sequence. Callers must not modify it.
func (x *Index) Entries() []Entry { return x.flat }

// Len is the number of flat entries.
func (x *Index) Len() int { return len(x.flat) }

// Counts returns the group counts last passed to Set.
func (x *Index) Counts() []int { return x.counts }

// GroupStart returns the position of group g's header, or -1.
func (x *Index) GroupStart(g int) int {
	if g < 0 || g >= len(x.counts) {
		return -1
	}
	pos := 0
	for i := 0; i < g; i++ {
		pos++
		if x.counts[i] > 0 {
			pos += x.counts[i]
		}
	}
	return pos
}

func sameSlice(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}

func equalCounts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if max(a[i], 0) != max(b[i], 0) {
			return false
		}
	}
	return true
}
