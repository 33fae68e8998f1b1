// Package wordcard renders vocabulary words and group headers for the
// grouped list. Output height varies with content and width, which is what
// the list measures after each render.
package wordcard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/ui/common"
	"github.com/miosa/osa-vocab/vocab"
)

// cardChrome is the horizontal space taken by the card border and padding.
const cardChrome = 4

const dateLayout = "02 Jan 2006"

// Renderer renders cards and headers. Markdown notes are rendered once per
// word and width and reused until Reset.
type Renderer struct {
	ShowNotes bool

	md    map[int]*glamour.TermRenderer
	notes map[notesKey]string
}

type notesKey struct {
	text  string
	width int
}

// New returns a Renderer with notes shown.
func New() *Renderer {
	return &Renderer{
		ShowNotes: true,
		md:        make(map[int]*glamour.TermRenderer),
		notes:     make(map[notesKey]string),
	}
}

// Reset drops cached markdown output, e.g. after a theme change.
func (r *Renderer) Reset() {
	r.md = make(map[int]*glamour.TermRenderer)
	r.notes = make(map[notesKey]string)
}

// ---------------------------------------------------------------------------
// Headers
// ---------------------------------------------------------------------------

// Header renders the in-flow header of a group.
func (r *Renderer) Header(g vocab.Group, width int) string {
	return style.GroupHeader.Render(r.headerLine(g, width))
}

// Sticky renders the pinned variant of a group header. It has the same
// height as Header.
func (r *Renderer) Sticky(g vocab.Group, width int) string {
	return style.StickyHeader.Render(r.headerLine(g, width))
}

// headerLine is the label and word count padded to width. The count is
// dropped when it leaves no room for the label.
func (r *Renderer) headerLine(g vocab.Group, width int) string {
	width = max(width, 1)
	count := style.GroupCount.Render(" " + common.Plural(len(g.Words), "word"))
	cw := lipgloss.Width(count)
	if cw >= width {
		return common.PadRight(common.Truncate(g.Label, width), width)
	}
	label := common.Truncate(g.Label, width-cw)
	return common.PadRight(label+count, width)
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

// Card renders one word as a bordered card width columns wide.
func (r *Renderer) Card(w vocab.Word, width int) string {
	inner := max(width-cardChrome, 8)

	var lines []string
	head := style.CardWord.Render(w.Term)
	if w.Phonetic != "" {
		head += "  " + style.CardPhonetic.Render(w.Phonetic)
	}
	lines = append(lines, common.Truncate(head, inner))

	if w.Meaning != "" {
		for _, l := range strings.Split(common.WrapText(w.Meaning, inner), "\n") {
			lines = append(lines, style.CardMeaning.Render(common.Truncate(l, inner)))
		}
	}
	if w.Example != "" {
		quoted := fmt.Sprintf("“%s”", w.Example)
		for _, l := range strings.Split(common.WrapText(quoted, inner), "\n") {
			lines = append(lines, style.CardExample.Render(common.Truncate(l, inner)))
		}
	}
	if r.ShowNotes && strings.TrimSpace(w.Notes) != "" {
		for _, l := range strings.Split(r.renderNotes(w.Notes, inner), "\n") {
			lines = append(lines, common.Truncate(l, inner))
		}
	}
	if meta := metaLine(w); meta != "" {
		lines = append(lines, style.CardMeta.Render(common.Truncate(meta, inner)))
	}

	for i, l := range lines {
		lines[i] = common.PadRight(l, inner)
	}
	return style.CardBorder.Render(strings.Join(lines, "\n"))
}

func metaLine(w vocab.Word) string {
	var parts []string
	if w.Topic != "" {
		parts = append(parts, w.Topic)
	}
	if !w.CreatedAt.IsZero() {
		parts = append(parts, "added "+w.CreatedAt.Local().Format(dateLayout))
	}
	return strings.Join(parts, " · ")
}

// ---------------------------------------------------------------------------
// Markdown notes
// ---------------------------------------------------------------------------

// renderNotes renders markdown with glamour, falling back to wrapped plain
// text on error.
func (r *Renderer) renderNotes(md string, width int) string {
	key := notesKey{text: md, width: width}
	if s, ok := r.notes[key]; ok {
		return s
	}
	out := common.WrapText(md, width)
	if tr := r.termRenderer(width); tr != nil {
		if s, err := tr.Render(md); err == nil {
			out = trimBlankLines(s)
		}
	}
	r.notes[key] = out
	return out
}

func (r *Renderer) termRenderer(width int) *glamour.TermRenderer {
	if tr, ok := r.md[width]; ok {
		return tr
	}
	theme := "dark"
	if !style.IsDark() {
		theme = "light"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		tr = nil
	}
	r.md[width] = tr
	return tr
}

// trimBlankLines removes the leading and trailing blank lines glamour
// emits around a document.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	isBlank := func(l string) bool { return strings.TrimSpace(ansi.Strip(l)) == "" }
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
