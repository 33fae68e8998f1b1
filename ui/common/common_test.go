package common

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"laconic", 10, "laconic"},
		{"laconic", 7, "laconic"},
		{"laconic", 5, "laco…"},
		{"laconic", 1, "…"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.max); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestTruncate_KeepsEscapes(t *testing.T) {
	in := "\x1b[1mserendipity\x1b[0m"
	got := Truncate(in, 6)
	if w := ansi.StringWidth(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
	if plain := ansi.Strip(got); plain != "seren…" {
		t.Errorf("plain = %q, want %q", plain, "seren…")
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Errorf("PadRight must not cut, got %q", got)
	}
}

func TestPlural(t *testing.T) {
	if Plural(1, "word") != "1 word" || Plural(0, "word") != "0 words" {
		t.Error("Plural mismatch")
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("WrapText = %q, want %q", got, want)
	}
}
