package common

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/miosa/osa-vocab/style"
)

// KeyHelp renders a formatted key-binding help line for the status bar.
// Each binding is rendered as:
//
//	[key]  description
//
// Bindings whose Enabled() is false are omitted.
func KeyHelp(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		keys := b.Help().Key
		if keys == "" {
			keys = strings.Join(b.Keys(), "/")
		}
		keyStr := style.HelpKey.Render("[" + keys + "]")
		helpStr := style.HelpDesc.Render(" " + b.Help().Desc)
		parts = append(parts, keyStr+helpStr)
	}
	return strings.Join(parts, style.HelpSeparator.Render("  ·  "))
}
