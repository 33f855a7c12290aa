// Package suggest holds the typing-side state of the search box: the
// debounced suggestion fetch and the keyboard-driven selection over the
// suggestion dropdown. Timer scheduling itself lives in the UI layer;
// this package decides, via sequence numbers, whether a fired timer or
// an arrived response is still current.
package suggest

import (
	"strings"
	"time"

	"querydeck/internal/backend"
)

// DefaultQuietPeriod is the debounce delay between the last keystroke
// and the suggestion fetch.
const DefaultQuietPeriod = 150 * time.Millisecond

// Controller owns the raw query string, the debounce sequence, the
// search-performed flag, and the current suggestion list. At most one
// debounce sequence is live at a time: every edit bumps it, which
// logically cancels any timer scheduled for an older sequence.
type Controller struct {
	query           string
	seq             int
	searchPerformed bool
	list            []backend.Suggestion
	selection       Selection
}

// NewController returns a controller with no query and a hidden dropdown.
func NewController() *Controller {
	return &Controller{selection: NewSelection()}
}

// Edit records a query change. It clears the search-performed flag,
// resets the selection index, and bumps the debounce sequence. When the
// trimmed query is non-empty it returns the sequence a timer should be
// scheduled for; an empty query clears and hides the suggestion list
// and schedules nothing.
func (c *Controller) Edit(query string) (seq int, schedule bool) {
	c.query = query
	c.seq++
	c.searchPerformed = false

	if strings.TrimSpace(query) == "" {
		c.list = nil
		c.selection.Hide()
		return 0, false
	}

	c.selection.ResetIndex()
	return c.seq, true
}

// FireReady reports whether the debounce timer carrying seq should
// still trigger a suggest fetch. A stale sequence, an emptied query, or
// an explicit search during the quiet period all suppress the fetch.
func (c *Controller) FireReady(seq int) bool {
	if seq != c.seq || c.searchPerformed {
		return false
	}
	return strings.TrimSpace(c.query) != ""
}

// Apply installs a suggest response fetched under seq, replacing the
// list wholesale and resetting the selection. The flag and sequence are
// re-checked here, at response time: a response from a call that was in
// flight when a search started, or that a later edit superseded, is
// dropped. Reports whether the response was applied.
func (c *Controller) Apply(seq int, suggestions []backend.Suggestion) bool {
	if seq != c.seq || c.searchPerformed {
		return false
	}
	c.list = suggestions
	c.selection.Show(len(suggestions))
	return true
}

// MarkSearchPerformed suppresses suggestion fetching until the next
// edit, and clears the dropdown so suggestions never reappear over
// search results.
func (c *Controller) MarkSearchPerformed() {
	c.searchPerformed = true
	c.list = nil
	c.selection.Hide()
}

// Query returns the current raw query text.
func (c *Controller) Query() string { return c.query }

// SearchPerformed reports whether an explicit search has started since
// the last edit.
func (c *Controller) SearchPerformed() bool { return c.searchPerformed }

// Suggestions returns the current suggestion list.
func (c *Controller) Suggestions() []backend.Suggestion { return c.list }

// Selection returns the current dropdown selection state.
func (c *Controller) Selection() Selection { return c.selection }

// SetSelection replaces the dropdown selection state, typically with
// the result of Resolve.
func (c *Controller) SetSelection(s Selection) { c.selection = s }
