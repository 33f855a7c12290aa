package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"querydeck/internal/ui/input/types"
)

// ResultsMode navigates the ranked hit list after a search.
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.ResultsNavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.ResultsNavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.ResultsNavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ResultsNavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		return []types.Action{types.OpenContentAction{}}, true

	case tea.KeyEsc, tea.KeyTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.ResultsNavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.ResultsNavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.ResultsNavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.ResultsNavigateAction{Direction: "end"}}, true

	case "v":
		return []types.Action{types.OpenContentAction{}}, true

	case "/":
		// Back to the search box
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
