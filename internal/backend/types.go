package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Suggestion is one completion candidate from the suggest endpoint.
// Order in the returned list is significant: it defines both display
// order and keyboard navigation order.
type Suggestion struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Hit is one ranked result from the search endpoint, ordered by relevance.
type Hit struct {
	ID      string  `json:"_id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"_score"`
}

// Timing phase names reported by the backend.
const (
	PhaseOpen    = "open"
	PhaseRequest = "request"
	PhaseSearch  = "search"
	PhaseRerank  = "rerank"
	PhaseAgg     = "agg"
	PhaseFetch   = "fetch"
	PhaseTotal   = "total"
)

// Phases lists the timing phases in display order.
var Phases = []string{PhaseOpen, PhaseRequest, PhaseSearch, PhaseRerank, PhaseAgg, PhaseFetch, PhaseTotal}

// Timing is the server-side latency breakdown, phase name to seconds.
// A missing phase means "not measured", never zero.
type Timing map[string]float64

// UnmarshalJSON accepts both forms the backend uses for "took": a bare
// number of seconds, or an object of optional phase durations. A bare
// number is recorded under the "total" phase.
func (t *Timing) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*t = nil
		return nil
	}
	if trimmed[0] == '{' {
		var phases map[string]float64
		if err := json.Unmarshal(trimmed, &phases); err != nil {
			return err
		}
		*t = phases
		return nil
	}
	var secs float64
	if err := json.Unmarshal(trimmed, &secs); err != nil {
		return err
	}
	*t = Timing{PhaseTotal: secs}
	return nil
}

// SuggestResult is a parsed suggest response.
type SuggestResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Took        float64      `json:"took"`
}

// SearchResult is a parsed search response plus the client-side
// wall-clock time measured around the call.
type SearchResult struct {
	Hits          []Hit
	Took          Timing
	ClientElapsed time.Duration
}

// RequestError reports a failed backend call: either the transport
// threw, or the server answered with a non-2xx status. It never carries
// partial response data.
type RequestError struct {
	URL    string
	Status int // 0 when the transport failed before any response
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend request %s failed with status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("backend request %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
