package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"querydeck/internal/ui/input/modes"
	"querydeck/internal/ui/input/types"
)

// Handler dispatches key events to the current mode and owns the
// shared text input backing the search box. Keys a mode does not
// consume while the query mode is active flow into the text input, and
// each resulting text change is surfaced as an UpdateQueryAction.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode()
	h.modes[types.ModeResults] = modes.NewResultsMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && h.currentMode != types.ModeQuery {
		return nil, nil
	}

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			oldMode := h.currentMode
			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}

			// Focus follows the query mode. The text is kept: returning
			// from the results continues the same query.
			if h.currentMode == types.ModeQuery {
				h.textInput.Focus()
				cmd = textinput.Blink
			} else if oldMode == types.ModeQuery {
				h.textInput.Blur()
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in query mode edit the query text.
	if h.currentMode == types.ModeQuery && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateQueryAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink).
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode == types.ModeQuery {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the shared text input model.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetQuery replaces the search box text, placing the cursor at the end.
// Used when a suggestion is committed.
func (h *Handler) SetQuery(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// ChangeMode switches the current input mode directly.
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if mode == types.ModeQuery {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}
