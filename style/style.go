package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	HeaderBgColor   color.Color = lipgloss.Color("#1F2937")
	CardBorderColor color.Color = lipgloss.Color("#4B5563")

	// Gradient endpoints default to dark theme violet→cyan
	GradColorA color.Color = lipgloss.Color("#7C3AED")
	GradColorB color.Color = lipgloss.Color("#06B6D4")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Header
	AppTitle  lipgloss.Style
	AppDetail lipgloss.Style

	// Group headers
	GroupHeader lipgloss.Style
	GroupCount  lipgloss.Style
	// StickyHeader is GroupHeader pinned over scrolled content.
	StickyHeader lipgloss.Style

	// Word cards
	CardBorder   lipgloss.Style
	CardWord     lipgloss.Style
	CardPhonetic lipgloss.Style
	CardMeaning  lipgloss.Style
	CardExample  lipgloss.Style
	CardMeta     lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusDetail lipgloss.Style
	StatusError  lipgloss.Style

	// Filter prompt
	FilterPrompt lipgloss.Style

	HelpKey       lipgloss.Style // key binding display
	HelpDesc      lipgloss.Style // key description
	HelpSeparator lipgloss.Style

	// Scrollbar
	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	HeaderBgColor = t.HeaderBg
	CardBorderColor = t.CardBorder
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	AppTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	AppDetail = lipgloss.NewStyle().Foreground(Muted)

	GroupHeader = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(Dim)
	GroupCount = lipgloss.NewStyle().Foreground(Muted)
	StickyHeader = GroupHeader.Background(HeaderBgColor)

	CardBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CardBorderColor).
		Padding(0, 1)
	CardWord = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	CardPhonetic = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	CardMeaning = lipgloss.NewStyle()
	CardExample = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	CardMeta = lipgloss.NewStyle().Foreground(Dim)

	StatusBar = lipgloss.NewStyle().Foreground(Muted)
	StatusDetail = lipgloss.NewStyle().Foreground(Secondary)
	StatusError = lipgloss.NewStyle().Foreground(Error).Bold(true)

	FilterPrompt = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	HelpKey = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Dim)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)
}
