package websearch

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	c := NewClient("test-key", baseURL, 5*time.Second, time.Millisecond, time.Millisecond)
	c.sleep = func(time.Duration) {}
	return c
}

func TestSearchFormatsResults(t *testing.T) {
	var gotToken, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Subscription-Token")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[
			{"title":"Title One","description":"Desc one","url":"https://example.com/1"},
			{"title":"Title Two","snippet":"Snippet two","url":"https://example.com/2"}
		]}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "metformin price")

	if gotToken != "test-key" {
		t.Errorf("Expected subscription token header, got %q", gotToken)
	}
	if gotQuery != "metformin price" {
		t.Errorf("Expected query param to carry the query, got %q", gotQuery)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 result lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "Title One: Desc one [Source: https://example.com/1]" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	// Snippet substitutes for a missing description
	if lines[1] != "Title Two: Snippet two [Source: https://example.com/2]" {
		t.Errorf("Unexpected second line: %q", lines[1])
	}
}

func TestSearchRetriesOnceOnThrottle(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[{"title":"T","description":"D","url":"https://example.com"}]}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if requests != 2 {
		t.Errorf("Expected exactly 2 requests, got %d", requests)
	}
	if len(lines) != 1 || lines[0] != "T: D [Source: https://example.com]" {
		t.Errorf("Expected the retried result, got %v", lines)
	}
}

func TestSearchGivesUpAfterSecondThrottle(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if requests != 2 {
		t.Errorf("Expected exactly 2 requests, got %d", requests)
	}
	if len(lines) != 1 || lines[0] != "Error searching: rate limited" {
		t.Errorf("Expected rate limited error line, got %v", lines)
	}
}

func TestSearchDegradesToErrorLine(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Error searching:") {
		t.Errorf("Expected a single error line, got %v", lines)
	}
}

func TestSearchNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[]}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if len(lines) != 1 || lines[0] != NoResultsLine {
		t.Errorf("Expected the no-results line, got %v", lines)
	}
}

func TestSearchDecodesGzipResponses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			t.Error("Expected the transport to negotiate gzip")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"web":{"results":[{"title":"T","description":"D","url":"https://example.com"}]}}`))
		_ = gz.Close()
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if len(lines) != 1 || lines[0] != "T: D [Source: https://example.com]" {
		t.Errorf("Expected decompressed result line, got %v", lines)
	}
}

func TestSearchNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	lines := client.Search(context.Background(), "query")

	if len(lines) != 1 || lines[0] != "Error searching: provider returned status 500" {
		t.Errorf("Expected status error line, got %v", lines)
	}
}
