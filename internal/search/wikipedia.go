package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"wikiglance/internal/upstream"
)

// WikipediaClient queries the MediaWiki search API.
type WikipediaClient struct {
	log     *slog.Logger
	http    *http.Client
	baseURL string
}

// NewWikipedia builds a client against the given api.php endpoint.
func NewWikipedia(log *slog.Logger, httpClient *http.Client, baseURL string) *WikipediaClient {
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &WikipediaClient{log: log, http: httpClient, baseURL: baseURL}
}

type wikiSearchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	PageID  int    `json:"pageid"`
}

type wikiSearchResponse struct {
	Query *struct {
		SearchInfo *struct {
			TotalHits int `json:"totalhits"`
		} `json:"searchinfo"`
		Search []wikiSearchHit `json:"search"`
	} `json:"query"`
}

// Search requests up to limit matches with snippet and page-id metadata.
// A missing result list is a contract violation; an empty one is not.
func (c *WikipediaClient) Search(ctx context.Context, query string, limit int) (Outcome, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("wikipedia: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Outcome{}, &upstream.StatusError{Service: "wikipedia", StatusCode: resp.StatusCode}
	}

	var body wikiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Outcome{}, fmt.Errorf("wikipedia: %w: %v", upstream.ErrMalformedResponse, err)
	}
	if body.Query == nil || body.Query.Search == nil {
		return Outcome{}, fmt.Errorf("wikipedia: %w: missing query.search", upstream.ErrMalformedResponse)
	}

	out := Outcome{Items: make([]Result, 0, len(body.Query.Search))}
	for _, hit := range body.Query.Search {
		out.Items = append(out.Items, Result{
			Title:       hit.Title,
			SnippetHTML: hit.Snippet,
			PageID:      hit.PageID,
		})
	}
	if body.Query.SearchInfo != nil {
		out.TotalMatches = body.Query.SearchInfo.TotalHits
		out.HasTotal = true
	}
	c.log.Debug("search settled", "query", query, "items", len(out.Items), "total", out.TotalMatches)
	return out, nil
}
