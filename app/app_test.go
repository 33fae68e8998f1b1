package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vocab/config"
	"github.com/miosa/osa-vocab/msg"
	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/vocab"
)

type fakeSource struct {
	words []vocab.Word
	err   error
	calls int
}

func (f *fakeSource) Words(ctx context.Context) ([]vocab.Word, error) {
	f.calls++
	return f.words, f.err
}

func testWords() []vocab.Word {
	d := func(day int) time.Time { return time.Date(2026, 3, day, 9, 0, 0, 0, time.Local) }
	return []vocab.Word{
		{ID: "1", Term: "laconic", Meaning: "using few words", Topic: "adjectives", CreatedAt: d(1)},
		{ID: "2", Term: "ephemeral", Meaning: "short-lived", Topic: "adjectives", CreatedAt: d(2)},
		{ID: "3", Term: "ubiquitous", Meaning: "found everywhere", Topic: "adjectives", CreatedAt: d(2)},
		{ID: "4", Term: "serendipity", Meaning: "a happy accident", Topic: "nouns", CreatedAt: d(3)},
		{ID: "5", Term: "quandary", Meaning: "a state of perplexity", Topic: "nouns", CreatedAt: d(4)},
	}
}

func press(s string) tea.KeyPressMsg {
	switch s {
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func update(t *testing.T, m Model, in tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	out, cmd := m.Update(in)
	next, ok := out.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want app.Model", out)
	}
	return next, cmd
}

// loaded returns a sized model that has finished loading src.
func loaded(t *testing.T, src *fakeSource) Model {
	t.Helper()
	cfg := config.Config{
		Source:         "yaml",
		StickyHeaders:  true,
		Scrollbar:      true,
		ResizeThrottle: 50 * time.Millisecond,
	}
	m := New(cfg, src)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, m.loadWords()())
	return m
}

func TestNew_StartsLoading(t *testing.T) {
	m := New(config.Config{}, &fakeSource{})
	if m.state != StateLoading {
		t.Errorf("state = %s, want loading", m.state)
	}
	if m.Init() == nil {
		t.Error("Init must return the load and size commands")
	}
	if got := m.renderView(); got != "" {
		t.Errorf("unsized view = %q, want empty", got)
	}
}

func TestLoad_PopulatesList(t *testing.T) {
	src := &fakeSource{words: testWords()}
	m := loaded(t, src)

	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
	if m.state != StateBrowse {
		t.Errorf("state = %s, want browse", m.state)
	}
	if got := m.list.Len(); got != 7 {
		t.Errorf("list len = %d, want 5 words + 2 headers", got)
	}
	if got := m.position().String(); got != "group 1/2 · word 1/5" {
		t.Errorf("position = %q", got)
	}
}

func TestLoad_ErrorShownInStatus(t *testing.T) {
	m := loaded(t, &fakeSource{err: errors.New("disk on fire")})

	if m.err == nil {
		t.Fatal("want load error recorded")
	}
	if status := ansi.Strip(m.renderStatus()); !strings.Contains(status, "disk on fire") {
		t.Errorf("status = %q, want the load error", status)
	}
}

func TestLoad_NilSource(t *testing.T) {
	m := New(config.Config{}, nil)
	got, ok := m.loadWords()().(msg.WordsLoaded)
	if !ok || got.Err == nil {
		t.Errorf("want an error result for a nil source, got %+v", got)
	}
}

func TestView_FillsTerminal(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	lines := strings.Split(m.renderView(), "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24", len(lines))
	}
	if !m.View().AltScreen {
		t.Error("view must use the alt screen")
	}
}

func TestResize_Throttled(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cmd == nil {
		t.Fatal("resize must schedule a tick")
	}
	if m.layout.TermWidth != 80 {
		t.Errorf("layout applied before the tick: width %d", m.layout.TermWidth)
	}
	gen := m.resizeGen

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, msg.ResizeTick{Gen: gen, Width: 100, Height: 30})
	if m.layout.TermWidth != 80 {
		t.Errorf("stale tick applied: width %d", m.layout.TermWidth)
	}

	m, _ = update(t, m, msg.ResizeTick{Gen: m.resizeGen, Width: 120, Height: 40})
	if m.layout.TermWidth != 120 || m.layout.ListHeight != 38 {
		t.Errorf("layout = %+v, want 120 wide with a 38 line list", m.layout)
	}
	if m.content.width != 119 {
		t.Errorf("card width = %d, want 119 beside the scrollbar", m.content.width)
	}
}

func TestResize_Unthrottled(t *testing.T) {
	m := New(config.Config{}, &fakeSource{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 70, Height: 20})
	if cmd != nil || m.layout.TermWidth != 70 {
		t.Errorf("a zero throttle applies immediately, got width %d", m.layout.TermWidth)
	}
}

func TestFilter_NarrowsAndClears(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})

	m, _ = update(t, m, press("/"))
	if m.state != StateFilter || m.layout.FilterHeight != 1 {
		t.Fatalf("state = %s, filter height %d", m.state, m.layout.FilterHeight)
	}
	for _, r := range "lac" {
		m, _ = update(t, m, press(string(r)))
	}
	if m.query != "lac" {
		t.Fatalf("query = %q, want lac", m.query)
	}
	if got := m.list.Len(); got != 2 {
		t.Errorf("filtered list len = %d, want 1 header + 1 word", got)
	}

	m, _ = update(t, m, press("enter"))
	if m.state != StateBrowse || m.query != "lac" || m.layout.FilterHeight != 1 {
		t.Errorf("enter keeps the query visible: state %s query %q", m.state, m.query)
	}

	m, _ = update(t, m, press("esc"))
	if m.query != "" || m.list.Len() != 7 || m.layout.FilterHeight != 0 {
		t.Errorf("esc must clear the filter: query %q len %d", m.query, m.list.Len())
	}
}

func TestFilter_NoMatches(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	m, _ = update(t, m, press("/"))
	m, _ = update(t, m, press("z"))
	if out := ansi.Strip(m.renderList()); !strings.Contains(out, `No words match "z"`) {
		t.Errorf("list = %q", out)
	}
	if got := m.position().String(); got != "no words" {
		t.Errorf("position = %q", got)
	}
}

func TestToggleGrouping(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	m, _ = update(t, m, press("tab"))
	if m.groupBy != vocab.ByDate {
		t.Fatalf("groupBy = %s, want date", m.groupBy)
	}
	if got := len(m.content.groups); got != 4 {
		t.Errorf("date groups = %d, want 4 days", got)
	}
	if got := m.list.Len(); got != 9 {
		t.Errorf("list len = %d, want 5 words + 4 headers", got)
	}
}

func TestNavigation_Groups(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 8})
	m, _ = update(t, m, msg.ResizeTick{Gen: m.resizeGen, Width: 80, Height: 8})

	m, _ = update(t, m, press("]"))
	if g := m.list.TopGroup(); g != 1 {
		t.Errorf("after ] top group = %d, want 1", g)
	}
	m, _ = update(t, m, press("["))
	if g := m.list.TopGroup(); g != 0 {
		t.Errorf("after [ top group = %d, want 0", g)
	}
	m, _ = update(t, m, press("G"))
	if !m.list.AtBottom() {
		t.Error("G must reach the bottom")
	}
	m, _ = update(t, m, press("g"))
	if m.list.ScrollTop() != 0 {
		t.Errorf("g scroll top = %d", m.list.ScrollTop())
	}
}

func TestReload(t *testing.T) {
	src := &fakeSource{words: testWords()}
	m := loaded(t, src)
	m, cmd := update(t, m, press("r"))
	if m.state != StateLoading || cmd == nil {
		t.Fatalf("reload: state %s cmd %v", m.state, cmd)
	}
	m, _ = update(t, m, cmd())
	if src.calls != 2 || m.state != StateBrowse {
		t.Errorf("calls %d state %s", src.calls, m.state)
	}
}

func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { style.SetTheme("dark") })
	m := loaded(t, &fakeSource{words: testWords()})
	before := style.CurrentThemeName
	update(t, m, press("t"))
	if style.CurrentThemeName == before {
		t.Errorf("theme still %q", before)
	}
}

func TestQuit(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	_, cmd := update(t, m, press("q"))
	if cmd == nil {
		t.Fatal("q must return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q must quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m := loaded(t, &fakeSource{words: testWords()})
	m, _ = update(t, m, press("?"))
	if status := ansi.Strip(m.renderStatus()); !strings.Contains(status, "next group") {
		t.Errorf("help status = %q", status)
	}
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(80, 24, false)
	if l.ListHeight != 22 || l.ListWidth != 80 {
		t.Errorf("layout = %+v", l)
	}
	if l := ComputeLayout(80, 24, true); l.ListHeight != 21 {
		t.Errorf("filter row not reserved: %+v", l)
	}
	if l := ComputeLayout(10, 2, false); l.ListHeight != minListHeight {
		t.Errorf("tiny terminal list height = %d", l.ListHeight)
	}
}
