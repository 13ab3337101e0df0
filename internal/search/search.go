package search

import (
	"context"
	"strconv"
)

// Result is one matched article. SnippetHTML carries lightweight markup as
// returned by the index; it is untrusted and must be sanitized before
// rendering.
type Result struct {
	Title       string
	SnippetHTML string
	PageID      int
}

// Outcome is an ordered result list plus optional total-match metadata.
// Items preserve the relevance order returned by the service. A zero-item
// Outcome is valid; "no results" is not an error.
type Outcome struct {
	Items        []Result
	TotalMatches int
	HasTotal     bool
}

// Client queries a search index for up to limit matches.
type Client interface {
	Search(ctx context.Context, query string, limit int) (Outcome, error)
}

// ArticleURL builds the canonical link for a match from the configured base
// URL and the opaque page identifier.
func ArticleURL(base string, pageID int) string {
	return base + strconv.Itoa(pageID)
}
