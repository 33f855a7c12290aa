package ui

import (
	"time"

	"querydeck/internal/backend"
)

// suggestTickMsg is the debounce timer firing for a specific edit
// sequence. Stale sequences are ignored, which is what cancels a
// superseded timer.
type suggestTickMsg struct {
	seq int
}

// suggestResultMsg carries a suggest response (or failure) tagged with
// the sequence of the edit that scheduled it.
type suggestResultMsg struct {
	seq    int
	result *backend.SuggestResult
	err    error
}

// searchResultMsg carries a search response (or failure) tagged with
// the sequence of the search that issued it.
type searchResultMsg struct {
	seq    int
	result *backend.SearchResult
	err    error
}

// pagerDoneMsg signals that the full-content pager has exited.
type pagerDoneMsg struct {
	err error
}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// statusTimeout is how long transient status messages stay visible.
const statusTimeout = 3 * time.Second
