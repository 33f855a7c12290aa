package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"querydeck/internal/backend"
	"querydeck/internal/config"
	"querydeck/internal/session"
	"querydeck/internal/ui/input/types"
	"querydeck/internal/ui/views"
)

// fakeBackend records every request so tests can assert which calls
// actually went out over the wire.
type fakeBackend struct {
	mu             sync.Mutex
	suggestQueries []string
	searchBodies   []string
	suggestJSON    string
	searchJSON     string
	searchStatus   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		suggestJSON: `{"suggestions":[{"text":"golang tutorial","score":3.0},{"text":"golang testing","score":2.0}],"took":0.002}`,
		searchJSON:  `{"hits":[{"_id":"1","title":"Doc one","content":"first","_score":0.9},{"_id":"2","title":"Doc two","content":"second","_score":0.8}],"took":{"total":0.02}}`,
	}
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.URL.Path {
		case "/api/suggest":
			var req struct {
				Query string `json:"query"`
			}
			json.Unmarshal(body, &req)
			f.suggestQueries = append(f.suggestQueries, req.Query)
			w.Write([]byte(f.suggestJSON))

		case "/api/search":
			f.searchBodies = append(f.searchBodies, string(body))
			if f.searchStatus != 0 {
				http.Error(w, "backend error", f.searchStatus)
				return
			}
			w.Write([]byte(f.searchJSON))

		default:
			http.NotFound(w, r)
		}
	})
}

func (f *fakeBackend) suggestCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.suggestQueries...)
}

func (f *fakeBackend) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchBodies...)
}

func newTestModel(t *testing.T) (*Model, *fakeBackend) {
	t.Helper()
	fake := newFakeBackend()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.Backend.BaseURL = server.URL
	// Short quiet period keeps the debounce real but the tests quick.
	cfg.UI.DebounceMs = 10

	client := backend.NewClient(backend.Options{BaseURL: server.URL}, nil)
	return NewModel(cfg, client, zap.NewNop()), fake
}

// deliver runs cmd synchronously and feeds the resulting messages back
// into the model, the way the runtime would. Spinner ticks are dropped
// to keep the loop finite.
func deliver(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			deliver(t, m, c)
		}
	case spinner.TickMsg:
		return
	case cursor.BlinkMsg:
		return
	default:
		_, next := m.Update(msg)
		deliver(t, m, next)
	}
}

// typeRunes sends each rune as a key press and returns the command from
// the final press, which carries the only debounce timer still live.
func typeRunes(m *Model, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestTypingFetchesSuggestionsAfterQuietPeriod(t *testing.T) {
	m, fake := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))

	calls := fake.suggestCalls()
	require.Equal(t, []string{"gola"}, calls, "one fetch with the final query")
	require.Len(t, m.suggestCtl.Suggestions(), 2)
	require.True(t, m.suggestCtl.Selection().Visible())
	require.Equal(t, -1, m.suggestCtl.Selection().Index(), "fresh list starts unhighlighted")
}

func TestStaleTimerNeverFetches(t *testing.T) {
	m, fake := newTestModel(t)

	earlier := typeRunes(m, "gol")
	latest := typeRunes(m, "a")

	deliver(t, m, earlier)
	require.Empty(t, fake.suggestCalls(), "a timer from a superseded edit must not fetch")

	deliver(t, m, latest)
	require.Equal(t, []string{"gola"}, fake.suggestCalls())
}

func TestSearchSuppressesPendingSuggestTimer(t *testing.T) {
	m, fake := newTestModel(t)

	pending := typeRunes(m, "golang")
	deliver(t, m, press(m, tea.KeyEnter))

	require.Equal(t, session.Success, m.session.State())
	require.Len(t, fake.searchCalls(), 1)
	require.True(t, m.suggestCtl.SearchPerformed())
	require.False(t, m.suggestCtl.Selection().Visible())

	// The debounce timer fires after the search has already started.
	deliver(t, m, pending)
	require.Empty(t, fake.suggestCalls(), "suggestions never pop over search results")
}

func TestArrowEnterCommitsSuggestion(t *testing.T) {
	m, fake := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))
	require.True(t, m.suggestCtl.Selection().Visible())

	press(m, tea.KeyDown)
	require.Equal(t, 0, m.suggestCtl.Selection().Index())

	deliver(t, m, press(m, tea.KeyEnter))

	require.Equal(t, "golang tutorial", m.inputHandler.TextInput().Value(), "committed text becomes the query")
	require.Equal(t, "golang tutorial", m.suggestCtl.Query())
	require.False(t, m.suggestCtl.Selection().Visible())

	searches := fake.searchCalls()
	require.Len(t, searches, 1)
	require.Contains(t, searches[0], `"golang tutorial"`, "search runs with the committed text")
	require.Equal(t, session.Success, m.session.State())
	require.Len(t, m.session.Hits(), 2)
}

func TestArrowKeysWrapAcrossDropdown(t *testing.T) {
	m, _ := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	require.Equal(t, 1, m.suggestCtl.Selection().Index())
	press(m, tea.KeyDown)
	require.Equal(t, 0, m.suggestCtl.Selection().Index(), "down wraps to the top")

	press(m, tea.KeyUp)
	require.Equal(t, 1, m.suggestCtl.Selection().Index(), "up wraps to the bottom")
}

func TestEscapeDismissesDropdownKeepsQuery(t *testing.T) {
	m, _ := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))
	require.True(t, m.suggestCtl.Selection().Visible())

	press(m, tea.KeyEsc)
	require.False(t, m.suggestCtl.Selection().Visible())
	require.Equal(t, "gola", m.inputHandler.TextInput().Value(), "escape leaves the text alone")
}

func TestEmptySubmitIsInert(t *testing.T) {
	m, fake := newTestModel(t)

	deliver(t, m, press(m, tea.KeyEnter))

	require.Equal(t, session.Idle, m.session.State())
	require.Empty(t, fake.searchCalls(), "no request for an empty query")
}

func TestMouseClickCommitsSuggestion(t *testing.T) {
	m, fake := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))
	require.True(t, m.suggestCtl.Selection().Visible())

	// Click the second dropdown row.
	_, cmd := m.Update(tea.MouseMsg{
		X:      4,
		Y:      views.SuggestionRowOffset + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	deliver(t, m, cmd)

	require.Equal(t, "golang testing", m.inputHandler.TextInput().Value())
	require.Len(t, fake.searchCalls(), 1)
	require.Equal(t, session.Success, m.session.State())
}

func TestMouseClickOutsideDropdownIgnored(t *testing.T) {
	m, fake := newTestModel(t)

	deliver(t, m, typeRunes(m, "gola"))

	_, cmd := m.Update(tea.MouseMsg{
		X:      0,
		Y:      views.SuggestionRowOffset + 10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	deliver(t, m, cmd)

	require.Empty(t, fake.searchCalls())
	require.True(t, m.suggestCtl.Selection().Visible())
}

func TestSearchFailureShowsFixedMessage(t *testing.T) {
	m, fake := newTestModel(t)
	fake.searchStatus = http.StatusInternalServerError

	typeRunes(m, "golang")
	deliver(t, m, press(m, tea.KeyEnter))

	require.Equal(t, session.Failed, m.session.State())
	require.Equal(t, session.FailureMessage, m.session.Message())

	view := m.View()
	require.Contains(t, view, session.FailureMessage)
	require.NotContains(t, view, "500", "raw failure details stay in the log")
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	m, _ := newTestModel(t)

	typeRunes(m, "first")
	press(m, tea.KeyEnter) // seq 1, response never delivered

	deliver(t, m, typeRunes(m, " second"))
	deliver(t, m, press(m, tea.KeyEnter)) // seq 2 resolves

	require.Equal(t, session.Success, m.session.State())

	// The slow first response arrives after the second already resolved.
	m.Update(searchResultMsg{seq: 1, result: &backend.SearchResult{
		Hits: []backend.Hit{{ID: "stale", Title: "stale"}},
	}})
	require.Equal(t, "1", m.session.Hits()[0].ID, "stale response must not overwrite newer results")
}

func TestResultsModeNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	typeRunes(m, "golang")
	deliver(t, m, press(m, tea.KeyEnter))
	require.Equal(t, session.Success, m.session.State())

	press(m, tea.KeyTab)
	require.Equal(t, types.ModeResults, m.inputHandler.CurrentMode())

	pressRune(m, 'j')
	require.Equal(t, 1, m.resultIndex)
	pressRune(m, 'j')
	require.Equal(t, 1, m.resultIndex, "navigation clamps at the last hit")
	pressRune(m, 'k')
	require.Equal(t, 0, m.resultIndex)

	press(m, tea.KeyEsc)
	require.Equal(t, types.ModeQuery, m.inputHandler.CurrentMode())
	require.Equal(t, "golang", m.inputHandler.TextInput().Value(), "query text survives the round trip")
}

func TestTabWithoutResultsStaysInQueryMode(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyTab)
	require.Equal(t, types.ModeQuery, m.inputHandler.CurrentMode())
}

func TestTypingAfterSearchReenablesSuggestions(t *testing.T) {
	m, fake := newTestModel(t)

	typeRunes(m, "golang")
	deliver(t, m, press(m, tea.KeyEnter))
	require.True(t, m.suggestCtl.SearchPerformed())

	deliver(t, m, typeRunes(m, " c"))
	require.False(t, m.suggestCtl.SearchPerformed())
	require.Equal(t, []string{"golang c"}, fake.suggestCalls())
	require.True(t, m.suggestCtl.Selection().Visible())
}

func TestViewRendersHitsAfterSearch(t *testing.T) {
	m, _ := newTestModel(t)

	typeRunes(m, "golang")
	deliver(t, m, press(m, tea.KeyEnter))

	view := m.View()
	require.Contains(t, view, "1. Doc one")
	require.Contains(t, view, "2. Doc two")
	require.Contains(t, view, "2 hits")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd(), "ctrl+c quits from query mode")
}
