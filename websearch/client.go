// Package websearch provides the rate-limited gateway to the external web
// search provider. Every result is collapsed to a single descriptive line so
// that the downstream extractors can treat search output as plain text.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cleanjesus/medmate-api/interfaces"
	"github.com/cleanjesus/medmate-api/logging"
	"github.com/cleanjesus/medmate-api/metrics"
	"github.com/juju/ratelimit"
)

// Compile-time check to ensure Client implements Searcher
var _ interfaces.Searcher = (*Client)(nil)

const (
	// DefaultBaseURL is the Brave-compatible search endpoint.
	DefaultBaseURL = "https://api.search.brave.com/res/v1/web/search"

	// NoResultsLine is returned as the only line when the provider reports
	// zero hits. It is a valid non-error response.
	NoResultsLine = "No search results found."

	resultCount = 5
)

// Client issues throttled queries against the search provider. Calls are paced
// by a 1-token bucket whose fill interval is the mandatory inter-request
// delay, so the delay policy lives here rather than at the call sites.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	throttle   *ratelimit.Bucket
	retryDelay time.Duration
	sleep      func(time.Duration) // overridable in tests
}

// NewClient creates a search client. requestDelay is the unconditional pause
// enforced before every call; retryDelay is the extra wait after a throttling
// response before the single retry.
func NewClient(apiKey, baseURL string, timeout, requestDelay, retryDelay time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	throttle := ratelimit.NewBucket(requestDelay, 1)
	// Drain the initial token so the very first call also waits the full
	// inter-request delay, matching the unconditional pre-call pause.
	throttle.TakeAvailable(1)
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		throttle:   throttle,
		retryDelay: retryDelay,
		sleep:      time.Sleep,
	}
}

// Search runs a single query and returns at most five formatted result lines
// in the form "title: description [Source: url]". It never returns an error:
// a throttled call is retried exactly once after the retry delay, and any
// other failure degrades to a single error-description line that the
// extractors will simply fail to match.
func (c *Client) Search(ctx context.Context, query string) []string {
	return c.search(ctx, query, true)
}

func (c *Client) search(ctx context.Context, query string, mayRetry bool) []string {
	logging.Debug("Searching", "query", query)
	metrics.SearchRequestsTotal.Inc()

	// Fixed pre-call delay to respect the provider rate limit.
	c.sleep(c.throttle.Take(1))

	lines, status, err := c.doRequest(ctx, query)
	if err != nil {
		logging.Warn("Search provider error", "query", query, "error", err)
		metrics.SearchErrorsTotal.Inc()
		return []string{fmt.Sprintf("Error searching: %v", err)}
	}

	if status == http.StatusTooManyRequests {
		if mayRetry {
			logging.Info("Search throttled, retrying once", "query", query)
			metrics.SearchRetriesTotal.Inc()
			c.sleep(c.retryDelay)
			return c.search(ctx, query, false)
		}
		metrics.SearchErrorsTotal.Inc()
		return []string{"Error searching: rate limited"}
	}

	if status != http.StatusOK {
		metrics.SearchErrorsTotal.Inc()
		return []string{fmt.Sprintf("Error searching: provider returned status %d", status)}
	}

	if len(lines) == 0 {
		return []string{NoResultsLine}
	}
	return lines
}

// doRequest performs one GET against the provider and decodes the hits.
func (c *Client) doRequest(ctx context.Context, query string) ([]string, int, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", fmt.Sprintf("%d", resultCount))
	params.Set("search_lang", "en")
	params.Set("safesearch", "moderate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	// No explicit Accept-Encoding: the transport negotiates gzip itself and
	// transparently decompresses only when it added the header.
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn("Failed to close search response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Snippet     string `json:"snippet"`
				URL         string `json:"url"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode search response: %w", err)
	}

	lines := make([]string, 0, len(payload.Web.Results))
	for _, hit := range payload.Web.Results {
		description := hit.Description
		if description == "" {
			description = hit.Snippet
		}
		lines = append(lines, fmt.Sprintf("%s: %s [Source: %s]", hit.Title, description, hit.URL))
		if len(lines) >= resultCount {
			break
		}
	}
	return lines, resp.StatusCode, nil
}
