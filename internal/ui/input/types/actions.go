package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// UpdateQueryAction carries the search box text after a keystroke.
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// SuggestNavigateAction moves the suggestion highlight.
type SuggestNavigateAction struct {
	Direction string // "up" or "down"
}

func (a SuggestNavigateAction) Type() string { return "suggest_navigate" }

// SubmitAction is Enter in the search box: commit the highlighted
// suggestion, or run an explicit search with the current text.
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// DismissAction is Escape in the search box: hide the dropdown.
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

// ResultsNavigateAction moves the highlight in the result list.
type ResultsNavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a ResultsNavigateAction) Type() string { return "results_navigate" }

// OpenContentAction opens the highlighted hit's full content in the pager.
type OpenContentAction struct{}

func (a OpenContentAction) Type() string { return "open_content" }

// QuitAction exits the application.
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
