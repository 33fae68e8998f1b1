// Package grouplist renders a grouped, virtualized list inside a fixed
// height terminal viewport.
//
// Only the entries the virtual.Planner selects are rendered on each
// layout pass. Every rendered entry is measured with lipgloss.Height and
// reported back through the virtual.Measurer port, so estimated heights
// converge to real ones as the user scrolls. A measurement that changes
// nothing never triggers another pass.
//
// Terminals have no native sticky positioning, so the header of the group
// owning the top visible line is drawn as an overlay pinned to the first
// viewport line.
package grouplist

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vocab/ui/common"
	"github.com/miosa/osa-vocab/virtual"
)

// maxSettlePasses bounds layout passes that re-measure only rows already
// in the cache.
const maxSettlePasses = 4

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// GroupFunc renders the header of group g.
type GroupFunc func(group int) string

// ItemFunc renders item i of group g sitting at flat position pos.
type ItemFunc func(pos, group, item int) string

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*Model)

// WithWidth sets the initial viewport width.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithHeight sets the initial viewport height (number of terminal lines
// visible at once).
func WithHeight(h int) Option {
	return func(m *Model) { m.height = h }
}

// WithEstimate sets the height assumed for rows not yet measured.
func WithEstimate(lines int) Option {
	return func(m *Model) { m.estimate = lines }
}

// WithOverscan sets how many lines past the viewport are rendered.
func WithOverscan(lines int) Option {
	return func(m *Model) { m.opts.Overscan = lines }
}

// WithScan selects the visible-range strategy.
func WithScan(s virtual.Scan) Option {
	return func(m *Model) { m.opts.Scan = s }
}

// WithFallbackViewport sets the viewport height used until SetSize
// provides a real one.
func WithFallbackViewport(lines int) Option {
	return func(m *Model) { m.opts.FallbackViewport = lines }
}

// WithStickyHeaders toggles the pinned group header overlay.
func WithStickyHeaders(on bool) Option {
	return func(m *Model) { m.sticky = on }
}

// WithScrollbar toggles the scrollbar column.
func WithScrollbar(on bool) Option {
	return func(m *Model) { m.scrollbar = on }
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is a virtualized grouped list.
// The zero value is not usable; construct with New.
type Model struct {
	width  int
	height int

	estimate  int
	opts      virtual.Options
	sticky    bool
	scrollbar bool

	index   *virtual.Index
	heights *virtual.HeightCache
	planner *virtual.Planner

	groupContent  GroupFunc
	itemContent   ItemFunc
	stickyContent GroupFunc

	// top is the scroll offset in lines from the top of the list.
	top    int
	window virtual.Window

	// rendered holds entry output for the current width, keyed by position.
	rendered map[int]string

	layouts int
}

// New constructs a Model with the supplied options.
func New(opts ...Option) Model {
	m := Model{
		estimate:  virtual.DefaultEstimate,
		sticky:    true,
		scrollbar: true,
		index:     &virtual.Index{},
		rendered:  make(map[int]string),
	}
	for _, o := range opts {
		o(&m)
	}
	m.heights = virtual.NewHeightCache(m.estimate)
	m.planner = virtual.NewPlanner(m.heights, m.opts)
	m.window = virtual.Window{Sticky: -1}
	return m
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// SetSize updates the viewport dimensions. A width change discards every
// measurement because rows re-wrap at the new width.
func (m *Model) SetSize(w, h int) {
	if w != m.width {
		m.heights.Reset()
		m.clearRendered()
	}
	m.width = w
	m.height = h
	m.layout()
}

// SetGroupCounts installs the list shape. Passing the same slice again is
// free. A structural change resets the height cache; positions no longer
// name the same rows.
func (m *Model) SetGroupCounts(counts []int) {
	if m.index.Set(counts) {
		m.heights.Reset()
		m.clearRendered()
	}
	m.layout()
}

// SetContent installs the render callbacks and drops rendered output.
// Cached heights are kept; they are corrected by the next measurement.
func (m *Model) SetContent(group GroupFunc, item ItemFunc) {
	m.groupContent = group
	m.itemContent = item
	m.clearRendered()
	m.layout()
}

// SetStickyContent installs a renderer for the pinned header. When nil the
// group's regular header output is pinned.
func (m *Model) SetStickyContent(f GroupFunc) {
	m.stickyContent = f
}

// Refresh re-renders the visible window, e.g. after a theme change.
func (m *Model) Refresh() {
	m.clearRendered()
	m.layout()
}

// Measure reports a size finalized outside the list. It re-lays out only
// when the measurement changed the cache.
func (m *Model) Measure(pos, size int) bool {
	if !m.heights.Measure(pos, size) {
		return false
	}
	m.layout()
	return true
}

// ---------------------------------------------------------------------------
// Scroll
// ---------------------------------------------------------------------------

// ScrollDown moves the viewport down by lines.
func (m *Model) ScrollDown(lines int) {
	if lines <= 0 {
		return
	}
	m.scrollTo(m.top + lines)
}

// ScrollUp moves the viewport up by lines.
func (m *Model) ScrollUp(lines int) {
	if lines <= 0 {
		return
	}
	m.scrollTo(m.top - lines)
}

// PageDown scrolls down by one full viewport height.
func (m *Model) PageDown() { m.ScrollDown(m.viewport()) }

// PageUp scrolls up by one full viewport height.
func (m *Model) PageUp() { m.ScrollUp(m.viewport()) }

// HalfPageDown scrolls down by half the viewport height.
func (m *Model) HalfPageDown() { m.ScrollDown(max(m.viewport()/2, 1)) }

// HalfPageUp scrolls up by half the viewport height.
func (m *Model) HalfPageUp() { m.ScrollUp(max(m.viewport()/2, 1)) }

// ScrollToTop positions the viewport at the very first entry.
func (m *Model) ScrollToTop() { m.scrollTo(0) }

// ScrollToBottom positions the viewport so the last entry is fully
// visible. Entries measured on the way may grow the total, so the bottom
// is re-targeted until it holds.
func (m *Model) ScrollToBottom() {
	for pass := 0; pass < maxSettlePasses; pass++ {
		m.scrollTo(m.window.Total)
		if m.AtBottom() {
			return
		}
	}
}

// ScrollToGroup puts group g's header on the first viewport line, or as
// close as the end of the list allows.
func (m *Model) ScrollToGroup(g int) {
	start := m.index.GroupStart(g)
	if start < 0 {
		return
	}
	n := m.index.Len()
	for pass := 0; pass < maxSettlePasses; pass++ {
		target := m.planner.Offset(n, start)
		m.scrollTo(target)
		if m.planner.Offset(n, start) == target {
			return
		}
	}
}

// NextGroup scrolls to the group after the one at the top of the viewport.
func (m *Model) NextGroup() {
	if g := m.TopGroup(); g >= 0 {
		m.ScrollToGroup(g + 1)
	}
}

// PrevGroup scrolls to the top of the current group, or to the previous
// group when the current header is already on the first line.
func (m *Model) PrevGroup() {
	g := m.TopGroup()
	if g < 0 {
		return
	}
	if m.window.Spacer < m.window.Top {
		m.ScrollToGroup(g)
		return
	}
	if g > 0 {
		m.ScrollToGroup(g - 1)
	}
}

// AtBottom reports whether the last line of the list is on screen.
func (m Model) AtBottom() bool {
	return m.window.Top >= max(m.window.Total-m.window.Viewport, 0)
}

// ScrollTop is the current scroll offset in lines.
func (m Model) ScrollTop() int { return m.window.Top }

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Window returns the plan of the last layout pass.
func (m Model) Window() virtual.Window { return m.window }

// TopEntry returns the entry owning the first viewport line.
func (m Model) TopEntry() (virtual.Entry, bool) {
	flat := m.index.Entries()
	if len(flat) == 0 || m.window.Start >= len(flat) {
		return virtual.Entry{}, false
	}
	return flat[m.window.Start], true
}

// TopGroup returns the group owning the first viewport line, or -1.
func (m Model) TopGroup() int {
	e, ok := m.TopEntry()
	if !ok {
		return -1
	}
	return e.Group
}

// Len is the number of flat entries.
func (m Model) Len() int { return m.index.Len() }

// Heights exposes the height cache owned by this list.
func (m Model) Heights() *virtual.HeightCache { return m.heights }

// Layouts counts completed layout passes.
func (m Model) Layouts() int { return m.layouts }

// ---------------------------------------------------------------------------
// Update (bubbletea)
// ---------------------------------------------------------------------------

// Update handles mouse wheel events for scrolling. Callers forward whichever
// tea.Msg events they want the list to respond to.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseWheelMsg); ok {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.ScrollUp(wheelLines)
		case tea.MouseWheelDown:
			m.ScrollDown(wheelLines)
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (m *Model) scrollTo(top int) {
	m.top = top
	m.layout()
}

// layout plans the window, renders the entries in it and measures them.
// Passes that measure a position for the first time always continue, so
// the loop ends within one pass per row. Passes that only correct already
// measured rows are bounded by maxSettlePasses. m.window is
// always planned against the final cache.
func (m *Model) layout() {
	flat := m.index.Entries()
	settle := 0
	for {
		m.plan(flat)
		changed, fresh := m.measureWindow(flat)
		if !changed {
			break
		}
		if fresh {
			continue
		}
		settle++
		if settle >= maxSettlePasses {
			m.plan(flat)
			break
		}
	}
	m.prune()
}

func (m *Model) plan(flat []virtual.Entry) {
	m.window = m.planner.Plan(flat, virtual.Scroll{Top: m.top, Viewport: m.height})
	m.top = m.window.Top
	m.layouts++
}

// measureWindow renders and measures every entry in the window. changed
// reports whether the cache moved; fresh whether any position was measured
// for the first time.
func (m *Model) measureWindow(flat []virtual.Entry) (changed, fresh bool) {
	for pos := m.window.RenderStart; pos < m.window.End; pos++ {
		if !m.heights.Measured(pos) {
			fresh = true
		}
		if m.heights.Measure(pos, lipgloss.Height(m.render(flat[pos]))) {
			changed = true
		}
	}
	return changed, fresh
}

// prune drops rendered output outside the current window so memory stays
// proportional to the viewport, not the list.
func (m *Model) prune() {
	for pos := range m.rendered {
		if pos < m.window.RenderStart || pos >= m.window.End {
			delete(m.rendered, pos)
		}
	}
}

// render returns the cached or freshly rendered content for an entry.
func (m *Model) render(e virtual.Entry) string {
	if s, ok := m.rendered[e.Position]; ok {
		return s
	}
	var s string
	switch {
	case e.IsGroup() && m.groupContent != nil:
		s = m.groupContent(e.Group)
	case !e.IsGroup() && m.itemContent != nil:
		s = m.itemContent(e.Position, e.Group, e.Item)
	}
	m.rendered[e.Position] = s
	return s
}

func (m *Model) clearRendered() {
	if len(m.rendered) > 0 {
		m.rendered = make(map[int]string)
	}
}

func (m Model) viewport() int {
	if m.height > 0 {
		return m.height
	}
	return m.planner.Options().FallbackViewport
}

// ContentWidth is the width callbacks should render at: the viewport
// width less the scrollbar column.
func (m Model) ContentWidth() int {
	if m.scrollbar && m.width > 1 {
		return m.width - 1
	}
	return m.width
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the viewport: the rendered slice offset by the lines
// scrolled past the spacer, the pinned header on top, and the scrollbar.
func (m Model) View() string {
	if m.height <= 0 || m.width <= 0 || m.window.Empty() {
		return ""
	}
	flat := m.index.Entries()
	lines := make([]string, 0, m.height)

	skip := m.window.Top - m.window.Spacer
	for pos := m.window.RenderStart; pos < m.window.End && len(lines) < m.height; pos++ {
		entryLines := splitLines(m.rendered[pos])
		if skip >= len(entryLines) {
			skip -= len(entryLines)
			continue
		}
		entryLines = entryLines[skip:]
		skip = 0
		room := m.height - len(lines)
		if len(entryLines) > room {
			entryLines = entryLines[:room]
		}
		lines = append(lines, entryLines...)
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	if m.sticky && m.window.Sticky >= 0 {
		m.overlaySticky(lines, flat)
	}

	// Wider lines would wrap in the terminal and push the view past height.
	width := m.ContentWidth()
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}

	if m.scrollbar {
		if bar := common.ScrollbarRows(m.height, m.window.Total, m.window.Top); bar != nil {
			for i := range lines {
				lines[i] = common.PadRight(lines[i], width) + bar[i]
			}
		}
	}
	return strings.Join(lines, "\n")
}

// overlaySticky pins the owning header over the first viewport lines. When
// the next group's header scrolls into that area the pinned header is
// pushed up by the overlap, the way sticky positioning behaves inside its
// section.
func (m Model) overlaySticky(lines []string, flat []virtual.Entry) {
	var header []string
	if m.stickyContent != nil {
		header = splitLines(m.stickyContent(m.window.Sticky))
	} else {
		header = splitLines(m.rendered[m.window.RenderStart])
	}
	if len(header) == 0 || len(header) >= len(lines) {
		return
	}
	hh := len(header)
	cut := 0
	if next := m.index.GroupStart(m.window.Sticky + 1); next >= 0 {
		if gap := m.planner.Offset(len(flat), next) - m.window.Top; gap < hh {
			cut = hh - max(gap, 0)
		}
	}
	copy(lines, header[min(cut, hh):])
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

// splitLines splits a rendered string into individual lines.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
