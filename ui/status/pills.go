package status

import (
	"github.com/miosa/osa-vocab/style"
	"github.com/miosa/osa-vocab/ui/common"
)

// FilterPill renders the active filter, e.g. "/ lac".
// Returns an empty string when there is no filter.
func FilterPill(query string) string {
	if query == "" {
		return ""
	}
	return style.FilterPrompt.Render("/ ") + style.StatusBar.Render(common.Truncate(query, 24))
}
