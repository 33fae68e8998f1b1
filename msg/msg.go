// Package msg defines the tea.Msg types dispatched within osa-vocab.
// It imports only vocab so every UI package can depend on it.
package msg

import "github.com/miosa/osa-vocab/vocab"

// -- Loading --

// WordsLoaded is the result of reading the configured word source.
type WordsLoaded struct {
	Words  []vocab.Word
	Source string
	Err    error
}

// -- Layout --

// ResizeTick fires after the resize throttle elapses. Gen matches the
// generation of the most recent WindowSizeMsg; older ticks are stale.
type ResizeTick struct {
	Gen    int
	Width  int
	Height int
}
