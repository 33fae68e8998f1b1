package vocab

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(d, h int) time.Time {
	return time.Date(2026, time.March, d, h, 0, 0, 0, time.Local)
}

func sample() []Word {
	return []Word{
		{ID: "1", Term: "serendipity", Topic: "Nouns", CreatedAt: day(2, 9)},
		{ID: "2", Term: "ephemeral", Topic: "adjectives", CreatedAt: day(3, 8)},
		{ID: "3", Term: "Apple", Topic: "Nouns", CreatedAt: day(3, 10)},
		{ID: "4", Term: "ubiquitous", CreatedAt: day(1, 12)},
		{ID: "5", Term: "laconic", Topic: "adjectives", CreatedAt: day(3, 7)},
	}
}

func labels(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Label
	}
	return out
}

func terms(g Group) []string {
	out := make([]string, len(g.Words))
	for i, w := range g.Words {
		out[i] = w.Term
	}
	return out
}

func TestArrange_ByTopic(t *testing.T) {
	groups := Arrange(sample(), ByTopic)

	if diff := cmp.Diff([]string{"adjectives", "Nouns", Uncategorized}, labels(groups)); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ephemeral", "laconic"}, terms(groups[0])); diff != "" {
		t.Errorf("adjectives (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Apple", "serendipity"}, terms(groups[1])); diff != "" {
		t.Errorf("nouns (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 2, 1}, Counts(groups)); diff != "" {
		t.Errorf("counts (-want +got):\n%s", diff)
	}
}

func TestArrange_ByDate(t *testing.T) {
	groups := Arrange(sample(), ByDate)

	want := []string{
		day(3, 0).Format(dayLayout),
		day(2, 0).Format(dayLayout),
		day(1, 0).Format(dayLayout),
	}
	if diff := cmp.Diff(want, labels(groups)); diff != "" {
		t.Fatalf("labels (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Apple", "ephemeral", "laconic"}, terms(groups[0])); diff != "" {
		t.Errorf("newest day (-want +got):\n%s", diff)
	}
}

func TestArrange_DoesNotMutateInput(t *testing.T) {
	words := sample()
	before := make([]Word, len(words))
	copy(before, words)

	Arrange(words, ByDate)
	Arrange(words, ByTopic)

	if diff := cmp.Diff(before, words); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestArrange_Empty(t *testing.T) {
	if got := Arrange(nil, ByTopic); got != nil {
		t.Errorf("Arrange(nil) = %v, want nil", got)
	}
	if got := Counts(nil); got != nil {
		t.Errorf("Counts(nil) = %v, want nil", got)
	}
}

func TestArrange_UndatedBucket(t *testing.T) {
	groups := Arrange([]Word{{Term: "x"}}, ByDate)
	if len(groups) != 1 || groups[0].Label != "Undated" {
		t.Errorf("got %v, want one Undated group", labels(groups))
	}
}

func TestFilter(t *testing.T) {
	words := sample()
	words[3].Meaning = "found EVERYWHERE"

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4", "5"}},
		{"  ", []string{"1", "2", "3", "4", "5"}},
		{"NOUN", []string{"1", "3"}},
		{"everywhere", []string{"4"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, w := range Filter(words, tt.query) {
			got = append(got, w.ID)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Filter(%q) (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestParseGroupBy(t *testing.T) {
	if g, ok := ParseGroupBy(" Date "); !ok || g != ByDate {
		t.Errorf("ParseGroupBy(date) = %v, %v", g, ok)
	}
	if g, ok := ParseGroupBy("bogus"); ok || g != ByTopic {
		t.Errorf("ParseGroupBy(bogus) = %v, %v", g, ok)
	}
	if ByDate.String() != "date" || ByTopic.String() != "topic" {
		t.Error("String mismatch")
	}
}

func TestTotal(t *testing.T) {
	if got := Total(Arrange(sample(), ByTopic)); got != 5 {
		t.Errorf("Total = %d, want 5", got)
	}
}
