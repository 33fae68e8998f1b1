package app

// State represents the current application state.
type State int

const (
	StateLoading State = iota // Waiting for the word source
	StateBrowse               // Scrolling the list
	StateFilter               // Typing into the filter prompt
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateBrowse:
		return "browse"
	case StateFilter:
		return "filter"
	default:
		return "unknown"
	}
}
