package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wikiglance/internal/upstream"
)

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWikipediaSearch(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
		check      func(*testing.T, Outcome)
	}{
		{
			name:   "results parsed in order with total",
			status: http.StatusOK,
			body: `{"query":{"searchinfo":{"totalhits":42},"search":[
				{"title":"Alan Turing","snippet":"<span class=\"searchmatch\">Alan</span> Turing","pageid":1208},
				{"title":"Turing machine","snippet":"abstract machine","pageid":30403}
			]}}`,
			check: func(t *testing.T, out Outcome) {
				if len(out.Items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(out.Items))
				}
				if out.Items[0].Title != "Alan Turing" || out.Items[1].Title != "Turing machine" {
					t.Errorf("relevance order not preserved: %+v", out.Items)
				}
				if out.Items[0].PageID != 1208 {
					t.Errorf("expected pageid 1208, got %d", out.Items[0].PageID)
				}
				if out.Items[0].SnippetHTML != `<span class="searchmatch">Alan</span> Turing` {
					t.Errorf("snippet markup must pass through unmodified, got %q", out.Items[0].SnippetHTML)
				}
				if !out.HasTotal || out.TotalMatches != 42 {
					t.Errorf("expected total 42, got %d (has=%v)", out.TotalMatches, out.HasTotal)
				}
			},
		},
		{
			name:   "empty result list is not an error",
			status: http.StatusOK,
			body:   `{"query":{"searchinfo":{"totalhits":0},"search":[]}}`,
			check: func(t *testing.T, out Outcome) {
				if len(out.Items) != 0 {
					t.Errorf("expected no items, got %d", len(out.Items))
				}
				if !out.HasTotal || out.TotalMatches != 0 {
					t.Errorf("expected total 0 present, got %+v", out)
				}
			},
		},
		{
			name:   "missing total is allowed",
			status: http.StatusOK,
			body:   `{"query":{"search":[{"title":"X","snippet":"","pageid":7}]}}`,
			check: func(t *testing.T, out Outcome) {
				if out.HasTotal {
					t.Error("expected HasTotal=false when searchinfo absent")
				}
			},
		},
		{
			name:    "missing search list is malformed",
			status:  http.StatusOK,
			body:    `{"batchcomplete":""}`,
			wantErr: upstream.ErrMalformedResponse,
		},
		{
			name:    "invalid JSON is malformed",
			status:  http.StatusOK,
			body:    `{not json`,
			wantErr: upstream.ErrMalformedResponse,
		},
		{
			name:       "non-success status is a network error",
			status:     http.StatusServiceUnavailable,
			body:       `upstream down`,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("action") != "query" || q.Get("list") != "search" {
					t.Errorf("unexpected request params: %v", q)
				}
				if q.Get("srsearch") != "alan turing" {
					t.Errorf("expected srsearch='alan turing', got %q", q.Get("srsearch"))
				}
				if q.Get("srlimit") != "10" {
					t.Errorf("expected srlimit=10, got %q", q.Get("srlimit"))
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewWikipedia(testLog(), srv.Client(), srv.URL)
			out, err := c.Search(context.Background(), "alan turing", 10)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.wantStatus != 0 {
				var se *upstream.StatusError
				if !errors.As(err, &se) {
					t.Fatalf("expected StatusError, got %v", err)
				}
				if se.StatusCode != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, se.StatusCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, out)
		})
	}
}

func TestArticleURL(t *testing.T) {
	got := ArticleURL("https://en.wikipedia.org/?curid=", 1208)
	if got != "https://en.wikipedia.org/?curid=1208" {
		t.Errorf("unexpected article url: %s", got)
	}
}
