// Package backend is the HTTP client for the remote hybrid-search
// service. It shapes the two request bodies (suggest, search), parses
// the JSON responses, and measures client-side latency. It knows
// nothing about the UI.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Defaults applied by NewClient when the corresponding option is zero.
const (
	DefaultSuggestPath  = "/api/suggest"
	DefaultSearchPath   = "/api/search"
	DefaultPageSize     = 10
	DefaultSuggestCount = 10
	DefaultTimeout      = 30 * time.Second
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	SuggestPath  string
	SearchPath   string
	PageSize     int
	SuggestCount int
	Timeout      time.Duration
}

// Client issues suggest and search requests against the backend.
type Client struct {
	baseURL      string
	suggestPath  string
	searchPath   string
	pageSize     int
	suggestCount int
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewClient creates a backend client. Zero-valued options fall back to
// the package defaults; a nil logger falls back to a no-op logger.
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.SuggestPath == "" {
		opts.SuggestPath = DefaultSuggestPath
	}
	if opts.SearchPath == "" {
		opts.SearchPath = DefaultSearchPath
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.SuggestCount <= 0 {
		opts.SuggestCount = DefaultSuggestCount
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		suggestPath:  opts.SuggestPath,
		searchPath:   opts.SearchPath,
		pageSize:     opts.PageSize,
		suggestCount: opts.SuggestCount,
		httpClient:   &http.Client{Timeout: opts.Timeout},
		logger:       logger,
	}
}

// Suggest fetches completion candidates for query. The caller must
// guarantee a non-empty query; an empty one must never reach this call.
func (c *Client) Suggest(ctx context.Context, query string) (*SuggestResult, error) {
	body := map[string]any{
		"query":  query,
		"fields": []string{"title"},
		"count":  c.suggestCount,
	}

	data, err := c.post(ctx, c.suggestPath, body)
	if err != nil {
		return nil, err
	}

	var result SuggestResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &RequestError{URL: c.baseURL + c.suggestPath, Err: fmt.Errorf("decoding suggest response: %w", err)}
	}
	return &result, nil
}

// Search runs a hybrid search for query. The body asks the backend for
// RRF fusion of a lexical multi-field match over title+content and a
// semantic similarity query over content; the fusion itself is entirely
// server-side. Client-side wall-clock time is measured around the call,
// independent of any server-reported timing.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	body := map[string]any{
		"query": map[string]any{
			"rrf": map[string]any{
				"retrieve": []any{
					map[string]any{
						"multi_match": map[string]any{
							"query":  query,
							"fields": []string{"title", "content"},
						},
					},
					map[string]any{
						"semantic": map[string]any{
							"field": "content",
							"query": query,
						},
					},
				},
			},
		},
		"fields": []string{"_id", "title", "content"},
		"size":   c.pageSize,
	}

	start := time.Now()
	data, err := c.post(ctx, c.searchPath, body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	var response struct {
		Hits []Hit  `json:"hits"`
		Took Timing `json:"took"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, &RequestError{URL: c.baseURL + c.searchPath, Err: fmt.Errorf("decoding search response: %w", err)}
	}

	return &SearchResult{
		Hits:          response.Hits,
		Took:          response.Took,
		ClientElapsed: elapsed,
	}, nil
}

// post sends body as JSON to path and returns the raw response body.
// Non-2xx statuses and transport failures both come back as *RequestError.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &RequestError{URL: url, Err: fmt.Errorf("encoding request: %w", err)}
	}

	c.logger.Debug("backend request",
		zap.String("url", url),
		zap.ByteString("body", payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	c.logger.Info("backend response",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("backend returned %s", resp.Status),
		}
	}
	return data, nil
}
