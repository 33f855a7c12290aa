// Package session tracks the lifecycle of the most recent explicit
// search: idle, loading, success with hits and latency stats, or failed
// with the one fixed user-facing message.
package session

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"querydeck/internal/backend"
)

// FailureMessage is the only search failure text ever shown to the
// user; the underlying cause is logged, never displayed.
const FailureMessage = "Search failed. Please try again."

// State identifies the lifecycle phase of the last explicit search.
type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Stats summarizes one completed search for the latency footer.
type Stats struct {
	ServerTiming  backend.Timing
	ClientElapsed time.Duration
	ResultCount   int
}

// Session is the explicit state object for search results. Responses
// carry the sequence of the request that produced them; only the
// latest-issued request may update the session, so a slow earlier
// response can never overwrite a newer one.
type Session struct {
	state   State
	seq     int
	query   string
	hits    []backend.Hit
	stats   Stats
	message string
	logger  *zap.Logger
}

// New returns an idle session. A nil logger falls back to a no-op.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

// Begin starts an explicit search for query and returns the request
// sequence to tag the response with. An empty or whitespace-only query
// is rejected with no state change and ok=false; no request may be
// sent in that case.
func (s *Session) Begin(query string) (seq int, ok bool) {
	if strings.TrimSpace(query) == "" {
		return 0, false
	}
	s.seq++
	s.state = Loading
	s.query = query
	s.message = ""
	return s.seq, true
}

// Resolve settles the search issued under seq. Stale sequences are
// discarded. Failure replaces any prior results with the fixed message;
// success installs the hits and computed stats. Either branch leaves
// Loading. Reports whether the response was applied.
func (s *Session) Resolve(seq int, result *backend.SearchResult, err error) bool {
	if seq != s.seq {
		s.logger.Debug("discarding stale search response",
			zap.Int("seq", seq),
			zap.Int("current", s.seq))
		return false
	}

	if err != nil {
		s.state = Failed
		s.hits = nil
		s.stats = Stats{}
		s.message = FailureMessage
		s.logger.Warn("search failed",
			zap.String("query", s.query),
			zap.Error(err))
		return true
	}

	s.state = Success
	s.hits = result.Hits
	s.stats = Stats{
		ServerTiming:  result.Took,
		ClientElapsed: result.ClientElapsed,
		ResultCount:   len(result.Hits),
	}
	s.logger.Info("search completed",
		zap.String("query", s.query),
		zap.Int("hits", len(result.Hits)),
		zap.Duration("client_elapsed", result.ClientElapsed))
	return true
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Query returns the query of the last search begun.
func (s *Session) Query() string { return s.query }

// Hits returns the results of the last successful search.
func (s *Session) Hits() []backend.Hit { return s.hits }

// Stats returns the latency stats of the last successful search.
func (s *Session) Stats() Stats { return s.stats }

// Message returns the user-facing error text, empty unless Failed.
func (s *Session) Message() string { return s.message }
