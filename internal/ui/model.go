// Package ui wires the query box, suggestion dropdown, and result list
// into a Bubble Tea program. All state mutation happens synchronously
// inside Update; the only schedulable unit is the debounce tick, and
// network calls come back as messages tagged with the sequence that
// issued them.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"querydeck/internal/backend"
	"querydeck/internal/config"
	"querydeck/internal/session"
	"querydeck/internal/suggest"
	"querydeck/internal/ui/input"
	"querydeck/internal/ui/input/types"
	"querydeck/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	cfg    *config.Config
	client *backend.Client
	logger *zap.Logger

	suggestCtl *suggest.Controller
	session    *session.Session

	inputHandler *input.Handler
	spinner      spinner.Model
	renderer     *views.Renderer
	contentOps   *ContentOps

	width       int
	height      int
	resultIndex int
	status      string
	quiet       time.Duration
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, client *backend.Client, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	quiet := time.Duration(cfg.UI.DebounceMs) * time.Millisecond
	if quiet <= 0 {
		quiet = suggest.DefaultQuietPeriod
	}

	return &Model{
		cfg:          cfg,
		client:       client,
		logger:       logger,
		suggestCtl:   suggest.NewController(),
		session:      session.New(logger),
		inputHandler: input.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		contentOps:   NewContentOps(),
		quiet:        quiet,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.contentOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := &modelContext{m: m}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case suggestTickMsg:
		// The debounce timer fired. Only the latest edit's sequence may
		// fetch, and not when a search started during the quiet period.
		if m.suggestCtl.FireReady(msg.seq) {
			return m, m.fetchSuggestions(msg.seq, m.suggestCtl.Query())
		}
		return m, nil

	case suggestResultMsg:
		if msg.err != nil {
			// Degrade to "no suggestions shown"; diagnostics only.
			m.logger.Warn("suggest request failed", zap.Error(msg.err))
			return m, nil
		}
		m.suggestCtl.Apply(msg.seq, msg.result.Suggestions)
		return m, nil

	case searchResultMsg:
		if m.session.Resolve(msg.seq, msg.result, msg.err) && m.session.State() == session.Success {
			m.resultIndex = 0
		}
		return m, nil

	case spinner.TickMsg:
		if m.session.State() == session.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			m.logger.Warn("content pager failed", zap.Error(msg.err))
			m.status = "Could not open content view"
			return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			})
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	sel := m.suggestCtl.Selection()

	state := views.ViewState{
		Width:              m.width,
		Height:             m.height,
		QueryView:          m.inputHandler.TextInput().View(),
		Suggestions:        m.suggestCtl.Suggestions(),
		SuggestionsVisible: sel.Visible(),
		SelectionIndex:     sel.Index(),
		SessionState:       m.session.State(),
		SearchPerformed:    m.suggestCtl.SearchPerformed(),
		Hits:               m.session.Hits(),
		Stats:              m.session.Stats(),
		ErrorMessage:       m.session.Message(),
		ResultIndex:        m.resultIndex,
		ResultsFocused:     m.inputHandler.CurrentMode() == types.ModeResults,
		SpinnerView:        m.spinner.View(),
		StatusMessage:      m.status,
		ShowTimings:        m.cfg.UI.ShowTimings,
		ContentWidth:       m.cfg.UI.ContentWidth,
	}
	return m.renderer.Render(state)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		return tea.Quit

	case types.UpdateQueryAction:
		return m.editQuery(a.Text)

	case types.SuggestNavigateAction:
		key := suggest.KeyDown
		if a.Direction == "up" {
			key = suggest.KeyUp
		}
		sel, _ := suggest.Resolve(m.suggestCtl.Selection(), key)
		m.suggestCtl.SetSelection(sel)
		return nil

	case types.SubmitAction:
		sel, eff := suggest.Resolve(m.suggestCtl.Selection(), suggest.KeyEnter)
		m.suggestCtl.SetSelection(sel)
		switch eff.Kind {
		case suggest.OpCommit:
			return m.commitSuggestion(eff.Index)
		case suggest.OpSearch:
			return m.startSearch(m.suggestCtl.Query())
		}
		return nil

	case types.DismissAction:
		sel, _ := suggest.Resolve(m.suggestCtl.Selection(), suggest.KeyEscape)
		m.suggestCtl.SetSelection(sel)
		return nil

	case types.ResultsNavigateAction:
		m.navigateResults(a.Direction)
		return nil

	case types.OpenContentAction:
		return m.openContent()
	}

	return nil
}

// editQuery records a keystroke and, for a non-empty query, schedules
// the debounce timer for the new sequence. An older timer that fires
// later finds its sequence stale and does nothing.
func (m *Model) editQuery(text string) tea.Cmd {
	seq, schedule := m.suggestCtl.Edit(text)
	if !schedule {
		return nil
	}
	return tea.Tick(m.quiet, func(time.Time) tea.Msg {
		return suggestTickMsg{seq: seq}
	})
}

// commitSuggestion makes the suggestion at index the query and starts
// an explicit search with it. Clicking an entry and pressing Enter on a
// highlighted one both land here.
func (m *Model) commitSuggestion(index int) tea.Cmd {
	items := m.suggestCtl.Suggestions()
	if index < 0 || index >= len(items) {
		return nil
	}
	text := items[index].Text
	m.inputHandler.SetQuery(text)
	// Sync the controller's query; the debounce timer is deliberately
	// not scheduled since the search below suppresses it anyway.
	m.suggestCtl.Edit(text)
	return m.startSearch(text)
}

// startSearch begins an explicit search. Empty or whitespace-only
// queries are rejected with no request and no state change.
func (m *Model) startSearch(query string) tea.Cmd {
	seq, ok := m.session.Begin(query)
	if !ok {
		return nil
	}
	m.suggestCtl.MarkSearchPerformed()
	m.resultIndex = 0
	return tea.Batch(m.spinner.Tick, m.fetchSearch(seq, query))
}

func (m *Model) fetchSuggestions(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Suggest(context.Background(), query)
		return suggestResultMsg{seq: seq, result: result, err: err}
	}
}

func (m *Model) fetchSearch(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Search(context.Background(), query)
		return searchResultMsg{seq: seq, result: result, err: err}
	}
}

func (m *Model) navigateResults(direction string) {
	hits := m.session.Hits()
	if len(hits) == 0 {
		return
	}
	switch direction {
	case "up":
		if m.resultIndex > 0 {
			m.resultIndex--
		}
	case "down":
		if m.resultIndex < len(hits)-1 {
			m.resultIndex++
		}
	case "home":
		m.resultIndex = 0
	case "end":
		m.resultIndex = len(hits) - 1
	}
}

// openContent shows the highlighted hit's full content in the pager.
func (m *Model) openContent() tea.Cmd {
	hits := m.session.Hits()
	if m.resultIndex < 0 || m.resultIndex >= len(hits) {
		return nil
	}
	hit := hits[m.resultIndex]
	return func() tea.Msg {
		return pagerDoneMsg{err: m.contentOps.ShowHit(hit)}
	}
}

// handleMouse commits the clicked suggestion, identical in effect to
// highlighting it and pressing Enter.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if !m.suggestCtl.Selection().Visible() {
		return nil
	}
	index := msg.Y - views.SuggestionRowOffset
	if index < 0 || index >= len(m.suggestCtl.Suggestions()) {
		return nil
	}
	return m.commitSuggestion(index)
}

// modelContext implements the Context interface for the input handler
type modelContext struct {
	m *Model
}

func (c *modelContext) SuggestionsVisible() bool {
	return c.m.suggestCtl.Selection().Visible() && len(c.m.suggestCtl.Suggestions()) > 0
}

func (c *modelContext) HasResults() bool {
	return c.m.session.State() == session.Success && len(c.m.session.Hits()) > 0
}

func (c *modelContext) QueryText() string {
	return c.m.suggestCtl.Query()
}
