// Package vocab holds the word model and the grouping that turns a flat
// word collection into the ordered groups the list renders.
package vocab

import (
	"sort"
	"strings"
	"time"
)

// Uncategorized labels words without a topic.
const Uncategorized = "Uncategorized"

// Word is one vocabulary entry.
type Word struct {
	ID        string    `json:"id" yaml:"id"`
	Term      string    `json:"term" yaml:"term"`
	Phonetic  string    `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Meaning   string    `json:"meaning" yaml:"meaning"`
	Example   string    `json:"example,omitempty" yaml:"example,omitempty"`
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"` // markdown
	Topic     string    `json:"topic,omitempty" yaml:"topic,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// TopicLabel returns the word's topic or Uncategorized.
func (w Word) TopicLabel() string {
	if t := strings.TrimSpace(w.Topic); t != "" {
		return t
	}
	return Uncategorized
}

// Group is one labelled run of words.
type Group struct {
	Label string
	Words []Word
}

// GroupBy selects how words are bucketed.
type GroupBy int

const (
	ByTopic GroupBy = iota
	ByDate
)

func (g GroupBy) String() string {
	switch g {
	case ByTopic:
		return "topic"
	case ByDate:
		return "date"
	default:
		return "unknown"
	}
}

// ParseGroupBy accepts "topic" or "date"; anything else reports false.
func ParseGroupBy(s string) (GroupBy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "topic":
		return ByTopic, true
	case "date":
		return ByDate, true
	}
	return ByTopic, false
}

// Arrange buckets words into groups. By topic, groups are sorted by label
// with Uncategorized last and words sorted by term. By date, groups are
// calendar days newest first and words newest first within a day.
// The input slice is not modified.
func Arrange(words []Word, by GroupBy) []Group {
	if len(words) == 0 {
		return nil
	}
	if by == ByDate {
		return byDate(words)
	}
	return byTopic(words)
}

func byTopic(words []Word) []Group {
	buckets := map[string][]Word{}
	for _, w := range words {
		label := w.TopicLabel()
		buckets[label] = append(buckets[label], w)
	}

	labels := make([]string, 0, len(buckets))
	for l := range buckets {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i], labels[j]
		if (a == Uncategorized) != (b == Uncategorized) {
			return b == Uncategorized
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})

	groups := make([]Group, 0, len(labels))
	for _, l := range labels {
		ws := buckets[l]
		sort.SliceStable(ws, func(i, j int) bool {
			return strings.ToLower(ws[i].Term) < strings.ToLower(ws[j].Term)
		})
		groups = append(groups, Group{Label: l, Words: ws})
	}
	return groups
}

const dayLayout = "Mon, 02 Jan 2006"

func byDate(words []Word) []Group {
	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var groups []Group
	var day string
	for _, w := range sorted {
		d := dayLabel(w.CreatedAt)
		if len(groups) == 0 || d != day {
			groups = append(groups, Group{Label: d})
			day = d
		}
		last := &groups[len(groups)-1]
		last.Words = append(last.Words, w)
	}
	return groups
}

func dayLabel(t time.Time) string {
	if t.IsZero() {
		return "Undated"
	}
	return t.Local().Format(dayLayout)
}

// Counts returns the per-group word counts in group order.
func Counts(groups []Group) []int {
	if len(groups) == 0 {
		return nil
	}
	counts := make([]int, len(groups))
	for i, g := range groups {
		counts[i] = len(g.Words)
	}
	return counts
}

// Total returns the number of words across groups.
func Total(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Words)
	}
	return n
}

// Filter keeps words whose term, meaning, topic or example contains query,
// case-insensitively. An empty query returns words unchanged.
func Filter(words []Word, query string) []Word {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return words
	}
	var out []Word
	for _, w := range words {
		if matches(w, q) {
			out = append(out, w)
		}
	}
	return out
}

func matches(w Word, q string) bool {
	for _, field := range []string{w.Term, w.Meaning, w.Topic, w.Example} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
