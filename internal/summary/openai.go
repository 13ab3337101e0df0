package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"wikiglance/internal/upstream"
)

// OpenAIClient is the Chat Completions alternative to the Gemini provider.
type OpenAIClient struct {
	log    *slog.Logger
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAI builds a client with defaults against api.openai.com.
func NewOpenAI(log *slog.Logger, apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{log: log, model: model, client: &cli}, nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", upstream.ErrEmptyQuery
	}
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(buildPrompt(query)),
					},
				},
			},
		},
		Temperature: openai.Float(genTemperature),
		TopP:        openai.Float(genTopP),
		MaxTokens:   openai.Int(genMaxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: %w: no choices returned", upstream.ErrMalformedResponse)
	}
	text := resp.Choices[0].Message.Content
	c.log.Debug("summary settled", "query", query, "chars", len(text))
	return text, nil
}
