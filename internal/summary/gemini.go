package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"wikiglance/internal/upstream"
)

// GeminiClient calls the generateContent endpoint of the Gemini REST API.
type GeminiClient struct {
	log     *slog.Logger
	http    *http.Client
	baseURL string
	model   string
	apiKey  string
}

// NewGemini builds a client. baseURL is the API root without a trailing slash.
func NewGemini(log *slog.Logger, httpClient *http.Client, baseURL, model, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if httpClient == nil {
		httpClient = upstream.NewHTTPClient()
	}
	return &GeminiClient{
		log:     log,
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Summarize generates a short summary for query. Blank input fails fast
// without a network call.
func (c *GeminiClient) Summarize(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", upstream.ErrEmptyQuery
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(query)}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     genTemperature,
			TopK:            genTopK,
			TopP:            genTopP,
			MaxOutputTokens: genMaxOutputTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &upstream.StatusError{Service: "gemini", StatusCode: resp.StatusCode}
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: %w: %v", upstream.ErrMalformedResponse, err)
	}
	text := firstCandidateText(out)
	if text == "" {
		return "", fmt.Errorf("gemini: %w: no candidate text", upstream.ErrMalformedResponse)
	}
	c.log.Debug("summary settled", "query", query, "chars", len(text))
	return text, nil
}

func firstCandidateText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
