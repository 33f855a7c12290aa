package views

import (
	"fmt"
	"strings"

	"querydeck/internal/backend"
	"querydeck/internal/session"
)

// SuggestionRowOffset is the zero-based terminal row of the first
// suggestion entry: the title occupies row 0 and the query line row 1.
// Mouse clicks on the dropdown are mapped back through this constant.
const SuggestionRowOffset = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	QueryView          string // rendered text input
	Suggestions        []backend.Suggestion
	SuggestionsVisible bool
	SelectionIndex     int

	SessionState    session.State
	SearchPerformed bool
	Hits            []backend.Hit
	Stats           session.Stats
	ErrorMessage    string
	ResultIndex     int
	ResultsFocused  bool

	SpinnerView   string
	StatusMessage string
	ShowTimings   bool
	ContentWidth  int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("querydeck"))
	content.WriteString("\n")

	content.WriteString(r.styles.Prompt.Render("> "))
	content.WriteString(state.QueryView)
	content.WriteString("\n")

	if state.SuggestionsVisible && len(state.Suggestions) > 0 {
		r.renderSuggestions(content, state)
	}

	content.WriteString("\n")

	switch state.SessionState {
	case session.Loading:
		content.WriteString(r.styles.Loading.Render(state.SpinnerView + " Searching..."))
		content.WriteString("\n")

	case session.Failed:
		content.WriteString(r.styles.Error.Render(state.ErrorMessage))
		content.WriteString("\n")

	case session.Success:
		if len(state.Hits) == 0 {
			content.WriteString(r.styles.Dim.Render("No results found."))
			content.WriteString("\n")
		} else {
			r.renderHits(content, state)
		}
	}

	if state.SessionState == session.Success && state.ShowTimings {
		content.WriteString("\n")
		content.WriteString(r.styles.Stats.Render(FormatStats(state.Stats)))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(r.helpLine(state)))

	return content.String()
}

func (r *Renderer) renderSuggestions(content *strings.Builder, state ViewState) {
	for i, s := range state.Suggestions {
		line := fmt.Sprintf("  %s", s.Text)
		if i == state.SelectionIndex {
			line = r.styles.SuggestionSelected.Render(line)
		} else {
			line = r.styles.Suggestion.Render(line)
		}
		score := r.styles.SuggestionScore.Render(fmt.Sprintf(" %.2f", s.Score))
		content.WriteString(line)
		content.WriteString(score)
		content.WriteString("\n")
	}
}

func (r *Renderer) renderHits(content *strings.Builder, state ViewState) {
	contentStyle := r.styles.HitContent
	if state.Width > 4 {
		contentStyle = contentStyle.Width(state.Width - 4)
	}

	for i, hit := range state.Hits {
		title := fmt.Sprintf("%d. %s", i+1, hit.Title)
		if state.ResultsFocused && i == state.ResultIndex {
			content.WriteString(r.styles.HitTitleSelected.Render(title))
		} else {
			content.WriteString(r.styles.HitTitle.Render(title))
		}
		content.WriteString("  ")
		content.WriteString(r.styles.HitScore.Render(fmt.Sprintf("%.3f", hit.Score)))
		content.WriteString("\n")

		blurb := Truncate(hit.Content, state.ContentWidth)
		if blurb != "" {
			content.WriteString(contentStyle.Render("  " + blurb))
			content.WriteString("\n")
		}
	}
}

func (r *Renderer) helpLine(state ViewState) string {
	if state.ResultsFocused {
		return "j/k navigate · enter/v view content · / edit query · q quit"
	}
	if state.SuggestionsVisible && len(state.Suggestions) > 0 {
		return "↑/↓ pick suggestion · enter search · esc dismiss · ctrl+c quit"
	}
	if state.SessionState == session.Success && len(state.Hits) > 0 {
		return "tab browse results · enter search · ctrl+c quit"
	}
	return "type to search · enter search · ctrl+c quit"
}

// FormatStats renders the latency footer: the server-side phase
// breakdown in canonical order, the client-side wall-clock time, and
// the hit count. Absent phases are skipped, never shown as zero.
func FormatStats(stats session.Stats) string {
	var parts []string
	for _, phase := range backend.Phases {
		secs, ok := stats.ServerTiming[phase]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1fms", phase, secs*1000))
	}

	server := "server n/a"
	if len(parts) > 0 {
		server = strings.Join(parts, " · ")
	}

	return fmt.Sprintf("%s | client %dms | %d hits",
		server,
		stats.ClientElapsed.Milliseconds(),
		stats.ResultCount)
}
