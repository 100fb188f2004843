// Package newsapi fetches AI-related articles from a search-style news API.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// Query and paging parameters are fixed: one topic, one page of up to
	// 100 results sorted by publish time.
	searchQuery = "artificial intelligence"
	pageSize    = 100

	// batchSize bounds how many rendered articles are handed to the
	// summarizer. The tail slice of the returned page is kept, in the
	// order the API returned it.
	batchSize = 10
)

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	cbSettings := gobreaker.Settings{
		Name:        "newsapi",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if we have 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
		},
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		cb: gobreaker.NewCircuitBreaker(cbSettings),
	}
}

type searchResponse struct {
	Articles []searchArticle `json:"articles"`
}

type searchArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Fetch retrieves articles published on or after fromDate and renders each as
// "<title>: <description>". A non-OK upstream status yields an empty batch,
// not an error; only transport-level failures are surfaced to the caller.
func (c *Client) Fetch(ctx context.Context, fromDate string) ([]string, error) {
	res, err := c.cb.Execute(func() (interface{}, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(fromDate), nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		resp, respErr := c.client.Do(req)
		if respErr != nil {
			return nil, respErr
		}
		return resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}

	resp := res.(*http.Response)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// A failed search is indistinguishable from an empty one for the
		// caller; the status is only visible in the logs.
		slog.Warn("News API returned non-OK status, treating as no articles", "status", resp.StatusCode)
		return nil, nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("news api decode: %w", err)
	}

	lines := make([]string, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		lines = append(lines, fmt.Sprintf("%s: %s", a.Title, a.Description))
	}

	// Keep the last batchSize entries of the page as returned, no re-sort.
	if len(lines) > batchSize {
		lines = lines[len(lines)-batchSize:]
	}
	return lines, nil
}

func (c *Client) searchURL(fromDate string) string {
	params := url.Values{}
	params.Set("q", searchQuery)
	params.Set("from", fromDate)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)
	return c.baseURL + "?" + params.Encode()
}
