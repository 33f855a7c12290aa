package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"querydeck/internal/ui/input/types"
)

// QueryMode is the default mode: the search box is focused. Navigation
// keys are consumed here; everything else falls through to the text
// input managed by the handler.
type QueryMode struct{}

func NewQueryMode() *QueryMode {
	return &QueryMode{}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.SuggestNavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.SuggestNavigateAction{Direction: "down"}}, true

	case tea.KeyEnter:
		return []types.Action{types.SubmitAction{}}, true

	case tea.KeyEsc:
		if ctx.SuggestionsVisible() {
			return []types.Action{types.DismissAction{}}, true
		}
		return nil, true // consume the key even if no action

	case tea.KeyTab:
		if ctx.HasResults() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		return nil, true
	}

	// Everything else edits the query via the shared text input.
	return nil, false
}
