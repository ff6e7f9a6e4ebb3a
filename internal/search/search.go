// Package search is the client for the external JobTech job-search index.
package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "https://jobsearch.api.jobtechdev.se"
	searchPath    = "/search"

	publishedAfterLayout = "2006-01-02T15:04:05"
)

// Mode selects how the index combines free-text terms.
type Mode string

// Free-text combination modes exposed by the index.
const (
	ModeAnd Mode = "AND"
	ModeOr  Mode = "OR"
)

// Params describes one search request. Pagination is caller-controlled.
type Params struct {
	Query          string
	Offset         int
	Limit          int
	PublishedAfter PublishDateFilter
	WorkTime       string
	Mode           Mode
}

// Result is the normalized response shape.
type Result struct {
	Hits  []JobListing
	Total int
}

// Client talks to the job-search index.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

// New creates a search client. An empty apiURL selects the public index.
func New(logger *zap.Logger, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search issues one free-text query. The three feature-negotiation headers
// are contractual to the index and always sent; only the bool-method is
// tunable per call through Mode.
func (c *Client) Search(ctx context.Context, params Params) (*Result, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	q.Set("offset", strconv.Itoa(params.Offset))
	q.Set("limit", strconv.Itoa(params.Limit))
	if bound, ok := params.PublishedAfter.LowerBound(time.Now()); ok {
		q.Set("published-after", bound.Format(publishedAfterLayout))
	}
	if params.WorkTime != "" {
		q.Set("working-hours-type", params.WorkTime)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+searchPath, nil)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	req.URL.RawQuery = q.Encode()

	mode := params.Mode
	if mode == "" {
		mode = ModeOr
	}
	req.Header.Set("x-feature-freetext-bool-method", strings.ToLower(string(mode)))
	req.Header.Set("x-feature-disable-smart-freetext", "true")
	req.Header.Set("x-feature-enable-false-negative", "true")

	c.logger.Debug("searching job index",
		zap.String("query", params.Query),
		zap.Int("offset", params.Offset),
		zap.Int("limit", params.Limit))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{Detail: "bad status: " + resp.Status}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &UpstreamError{Detail: "malformed response: " + err.Error()}
	}

	return &Result{Hits: decoded.Hits, Total: decoded.Total.Value}, nil
}

// searchResponse mirrors the index's wire shape.
type searchResponse struct {
	Hits  []JobListing `json:"hits"`
	Total struct {
		Value int `json:"value"`
	} `json:"total"`
}
