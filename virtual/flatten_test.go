package virtual

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten_TwoGroups(t *testing.T) {
	got := Flatten([]int{3, 2})
	want := []Entry{
		{Kind: KindGroup, Group: 0, Position: 0},
		{Kind: KindItem, Group: 0, Item: 0, Position: 1},
		{Kind: KindItem, Group: 0, Item: 1, Position: 2},
		{Kind: KindItem, Group: 0, Item: 2, Position: 3},
		{Kind: KindGroup, Group: 1, Position: 4},
		{Kind: KindItem, Group: 1, Item: 0, Position: 5},
		{Kind: KindItem, Group: 1, Item: 1, Position: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten([3 2]) mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_Length(t *testing.T) {
	cases := [][]int{
		nil,
		{},
		{0},
		{0, 0, 0},
		{1},
		{5, 0, 7},
		{100, 1, 1, 250},
	}
	for _, counts := range cases {
		sum := 0
		for _, c := range counts {
			sum += c
		}
		if got, want := len(Flatten(counts)), sum+len(counts); got != want {
			t.Errorf("len(Flatten(%v)) = %d, want %d", counts, got, want)
		}
	}
}

func TestFlatten_NegativeCountIsEmptyGroup(t *testing.T) {
	got := Flatten([]int{-3, 1})
	want := []Entry{
		{Kind: KindGroup, Group: 0, Position: 0},
		{Kind: KindGroup, Group: 1, Position: 1},
		{Kind: KindItem, Group: 1, Item: 0, Position: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	a := Flatten([]int{4, 0, 9, 2})
	b := Flatten([]int{4, 0, 9, 2})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two flattens of equal counts differ:\n%s", diff)
	}
}

func TestFlatten_PositionsAndOwnership(t *testing.T) {
	flat := Flatten([]int{2, 0, 3, 1})
	header := -1
	for i, e := range flat {
		if e.Position != i {
			t.Fatalf("entry %d has position %d", i, e.Position)
		}
		if e.IsGroup() {
			header = e.Group
			continue
		}
		if header != e.Group {
			t.Errorf("item at %d belongs to group %d but follows header %d", i, e.Group, header)
		}
	}
}

func TestIndex_MemoizesOnIdentity(t *testing.T) {
	var x Index
	counts := []int{2, 3}
	if !x.Set(counts) {
		t.Fatal("first Set must report a change")
	}
	first := x.Entries()
	if x.Set(counts) {
		t.Error("Set with the same slice must not report a change")
	}
	if &x.Entries()[0] != &first[0] {
		t.Error("Set with the same slice must not rebuild")
	}
}

func TestIndex_EqualCopyIsNotStructural(t *testing.T) {
	var x Index
	x.Set([]int{2, 3})
	if x.Set([]int{2, 3}) {
		t.Error("an equal copy is not a structural change")
	}
	if !x.Set([]int{2, 4}) {
		t.Error("a different count is a structural change")
	}
	if x.Len() != 8 {
		t.Errorf("want 8 entries, got %d", x.Len())
	}
}

func TestIndex_GroupStart(t *testing.T) {
	var x Index
	x.Set([]int{3, 0, 2})
	for g, want := range []int{0, 4, 5} {
		if got := x.GroupStart(g); got != want {
			t.Errorf("GroupStart(%d) = %d, want %d", g, got, want)
		}
		if !x.Entries()[x.GroupStart(g)].IsGroup() {
			t.Errorf("GroupStart(%d) is not a header", g)
		}
	}
	if x.GroupStart(3) != -1 || x.GroupStart(-1) != -1 {
		t.Error("out of range groups must return -1")
	}
}
