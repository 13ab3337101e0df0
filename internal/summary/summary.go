package summary

import (
	"context"
	"fmt"
)

// Client produces a short natural-language summary for a query.
type Client interface {
	Summarize(ctx context.Context, query string) (string, error)
}

// Generation parameters are fixed configuration constants, not computed.
const (
	genTemperature     = 0.7
	genTopK            = 40
	genTopP            = 0.95
	genMaxOutputTokens = 300
)

// buildPrompt embeds the query into the fixed prompt template.
func buildPrompt(query string) string {
	return fmt.Sprintf("Provide a concise, conversational summary about %q. "+
		"Focus on the most important and interesting aspects. "+
		"Keep it under 200 words and make it engaging like you're providing the first time information on the subject", query)
}
