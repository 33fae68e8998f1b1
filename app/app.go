package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/miosa/osa-vocab/config"
	"github.com/miosa/osa-vocab/msg"
	"github.com/miosa/osa-vocab/store"
	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/ui/common"
	"github.com/miosa/osa-vocab/ui/grouplist"
	"github.com/miosa/osa-vocab/ui/header"
	"github.com/miosa/osa-vocab/ui/status"
	"github.com/miosa/osa-vocab/ui/wordcard"
	"github.com/miosa/osa-vocab/virtual"
	"github.com/miosa/osa-vocab/vocab"
)

// Version is set by main and shown in the header.
var Version = "dev"

// -- Content ------------------------------------------------------------------

// content is shared by the list callbacks and the Model copies bubbletea
// passes around, so the callbacks always see the current groups.
type content struct {
	groups []vocab.Group
	cards  *wordcard.Renderer
	width  int
}

func (c *content) header(g int) string {
	if g < 0 || g >= len(c.groups) {
		return ""
	}
	return c.cards.Header(c.groups[g], c.width)
}

func (c *content) sticky(g int) string {
	if g < 0 || g >= len(c.groups) {
		return ""
	}
	return c.cards.Sticky(c.groups[g], c.width)
}

func (c *content) card(_, g, i int) string {
	if g < 0 || g >= len(c.groups) || i < 0 || i >= len(c.groups[g].Words) {
		return ""
	}
	return c.cards.Card(c.groups[g].Words[i], c.width)
}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model. It owns the word list and the wiring
// between the word source and the UI.
type Model struct {
	header  header.Model
	list    grouplist.Model
	filter  textinput.Model
	status  status.Model
	content *content

	state  State
	layout Layout
	keys   KeyMap

	cfg     config.Config
	source  store.Source
	srcName string

	words   []vocab.Word
	groupBy vocab.GroupBy
	query   string
	err     error

	width     int
	height    int
	sized     bool
	resizeGen int
}

// New constructs the root Model reading words from src.
func New(cfg config.Config, src store.Source) Model {
	cfg = cfg.Normalize()
	scan := virtual.ParseScan(cfg.Scan)
	groupBy, _ := vocab.ParseGroupBy(cfg.GroupBy)

	c := &content{cards: wordcard.New()}
	list := grouplist.New(
		grouplist.WithEstimate(cfg.EstimateRowHeight),
		grouplist.WithOverscan(cfg.Overscan),
		grouplist.WithFallbackViewport(cfg.FallbackViewport),
		grouplist.WithScan(scan),
		grouplist.WithStickyHeaders(cfg.StickyHeaders),
		grouplist.WithScrollbar(cfg.Scrollbar),
	)
	list.SetContent(c.header, c.card)
	list.SetStickyContent(c.sticky)

	ti := textinput.New()
	ti.Placeholder = "type to filter words..."
	ti.Prompt = "/ "
	s := ti.Styles()
	s.Focused.Prompt = style.FilterPrompt
	ti.SetStyles(s)

	keys := DefaultKeyMap()
	hdr := header.NewHeader(Version)
	hdr.SetSource(cfg.Source)
	hdr.SetGrouping(groupBy.String())
	st := status.New()
	st.SetHelp(common.KeyHelp(keys.ShortHelp()...))

	return Model{
		header:  hdr,
		list:    list,
		filter:  ti,
		status:  st,
		content: c,
		state:   StateLoading,
		keys:    keys,
		cfg:     cfg,
		source:  src,
		srcName: cfg.Source,
		groupBy: groupBy,
	}
}

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadWords(), func() tea.Msg { return tea.RequestWindowSize() })
}

// loadWords reads the source off the update loop, bounded by the load
// timeout.
func (m Model) loadWords() tea.Cmd {
	src, name, timeout := m.source, m.srcName, m.cfg.LoadTimeout
	return func() tea.Msg {
		if src == nil {
			return msg.WordsLoaded{Source: name, Err: fmt.Errorf("no word source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()
		words, err := src.Words(ctx)
		log.Printf("loaded %d words from %s in %s (err=%v)", len(words), name, time.Since(start), err)
		return msg.WordsLoaded{Words: words, Source: name, Err: err}
	}
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		// The first size applies at once so the opening frame is laid out.
		if !m.sized || m.cfg.ResizeThrottle <= 0 {
			m.sized = true
			m.relayout()
			return m, nil
		}
		m.resizeGen++
		gen, w, h := m.resizeGen, v.Width, v.Height
		return m, tea.Tick(m.cfg.ResizeThrottle, func(time.Time) tea.Msg {
			return msg.ResizeTick{Gen: gen, Width: w, Height: h}
		})

	case msg.ResizeTick:
		if v.Gen != m.resizeGen {
			return m, nil
		}
		m.width = v.Width
		m.height = v.Height
		m.relayout()
		return m, nil

	case msg.WordsLoaded:
		m.state = StateBrowse
		if v.Err != nil {
			m.err = fmt.Errorf("load %s: %w", v.Source, v.Err)
			m.status.SetError(m.err)
			return m, nil
		}
		m.err = nil
		m.status.SetError(nil)
		m.words = v.Words
		m.rebuild()
		m.list.ScrollToTop()
		return m, nil

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(v)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(v)
	}

	if m.state == StateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(rawMsg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFilter:
		return m.handleFilterKey(k)
	case StateLoading:
		if key.Matches[tea.KeyPressMsg](k, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m.handleBrowseKey(k)
}

func (m Model) handleBrowseKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		if m.query != "" {
			m.setQuery("")
			m.relayout()
		}
		m.status.HideHelp()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Help):
		m.status.ToggleHelp()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Reload):
		m.state = StateLoading
		return m, m.loadWords()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollDown):
		m.list.ScrollDown(1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollUp):
		m.list.ScrollUp(1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		m.list.PageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		m.list.PageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		m.list.HalfPageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		m.list.HalfPageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollTop):
		m.list.ScrollToTop()
	case key.Matches[tea.KeyPressMsg](k, m.keys.ScrollBottom):
		m.list.ScrollToBottom()
	case key.Matches[tea.KeyPressMsg](k, m.keys.NextGroup):
		m.list.NextGroup()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PrevGroup):
		m.list.PrevGroup()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Filter):
		m.state = StateFilter
		m.filter.SetValue(m.query)
		m.filter.CursorEnd()
		m.relayout()
		return m, m.filter.Focus()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleGrouping):
		if m.groupBy == vocab.ByTopic {
			m.groupBy = vocab.ByDate
		} else {
			m.groupBy = vocab.ByTopic
		}
		m.rebuild()
		m.list.ScrollToTop()

	case key.Matches[tea.KeyPressMsg](k, m.keys.ToggleNotes):
		m.content.cards.ShowNotes = !m.content.cards.ShowNotes
		m.list.Refresh()

	case key.Matches[tea.KeyPressMsg](k, m.keys.CycleTheme):
		m.cycleTheme()
	}
	return m, nil
}

func (m Model) handleFilterKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Accept):
		m.state = StateBrowse
		m.filter.Blur()
		m.relayout()
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape):
		m.state = StateBrowse
		m.filter.Blur()
		m.filter.SetValue("")
		m.setQuery("")
		m.relayout()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(k)
	if v := m.filter.Value(); v != m.query {
		m.setQuery(v)
	}
	return m, cmd
}

// -- State changes ------------------------------------------------------------

// setQuery narrows the list to words matching q and returns to the top.
func (m *Model) setQuery(q string) {
	m.query = q
	m.rebuild()
	m.list.ScrollToTop()
}

// rebuild regroups the loaded words. A new shape resets the list's height
// cache; the same shape keeps it and re-measures what is rendered.
func (m *Model) rebuild() {
	groups := vocab.Arrange(vocab.Filter(m.words, m.query), m.groupBy)
	m.content.groups = groups
	m.list.SetGroupCounts(vocab.Counts(groups))
	m.list.Refresh()

	m.header.SetCounts(vocab.Total(groups), len(groups))
	m.header.SetGrouping(m.groupBy.String())
	m.status.SetQuery(m.query)
}

// relayout recomputes the frame and resizes the list. The card width is
// set before the list re-renders at the new size.
func (m *Model) relayout() {
	filterVisible := m.state == StateFilter || m.query != ""
	m.layout = ComputeLayout(m.width, m.height, filterVisible)
	m.filter.SetWidth(max(m.layout.ListWidth-4, 1))
	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)

	w := m.layout.ListWidth
	if m.cfg.Scrollbar && w > 1 {
		w--
	}
	m.content.width = w
	m.list.SetSize(m.layout.ListWidth, m.layout.ListHeight)
}

func (m *Model) cycleTheme() {
	next := style.ThemeNames[0]
	for i, name := range style.ThemeNames {
		if name == style.CurrentThemeName {
			next = style.ThemeNames[(i+1)%len(style.ThemeNames)]
			break
		}
	}
	style.SetTheme(next)
	m.status.SetHelp(common.KeyHelp(m.keys.ShortHelp()...))
	m.content.cards.Reset()
	m.list.Refresh()
}

// -- View ---------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	if !m.sized {
		return ""
	}
	sections := []string{m.header.View(), m.renderList()}
	if m.layout.FilterHeight > 0 {
		sections = append(sections, m.renderFilter())
	}
	sections = append(sections, m.renderStatus())
	return strings.Join(sections, "\n")
}

func (m Model) renderList() string {
	switch {
	case m.state == StateLoading:
		return m.placeholder(style.Faint.Render("Loading words from " + m.srcName + "..."))
	case m.list.Len() == 0 && m.query != "":
		return m.placeholder(style.Faint.Render(fmt.Sprintf("No words match %q", m.query)))
	case m.list.Len() == 0 && m.err == nil:
		return m.placeholder(style.Faint.Render("No words yet"))
	case m.list.Len() == 0:
		return m.placeholder("")
	}
	return m.list.View()
}

// placeholder fills the list area with msg on its first line.
func (m Model) placeholder(text string) string {
	lines := make([]string, m.layout.ListHeight)
	lines[0] = text
	return strings.Join(lines, "\n")
}

func (m Model) renderFilter() string {
	if m.state == StateFilter {
		return m.filter.View()
	}
	return style.FilterPrompt.Render("/ ") + m.query + style.Faint.Render("  (esc clears)")
}

func (m Model) renderStatus() string {
	st := m.status
	st.SetPosition(m.position())
	return st.View()
}

// position locates the row on the first viewport line.
func (m Model) position() status.Position {
	e, ok := m.list.TopEntry()
	if !ok {
		return status.Position{}
	}
	groups := m.content.groups
	before := 0
	for g := 0; g < e.Group && g < len(groups); g++ {
		before += len(groups[g].Words)
	}
	word := before + 1
	if !e.IsGroup() {
		word = before + e.Item + 1
	}
	total := vocab.Total(groups)
	return status.Position{
		Group:  e.Group + 1,
		Groups: len(groups),
		Word:   min(word, total),
		Words:  total,
	}
}
