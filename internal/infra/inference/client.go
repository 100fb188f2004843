// Package inference produces news summaries via an OpenAI-compatible
// chat-completion endpoint (the Hugging Face inference router by default).
package inference

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Client struct {
	client    *openai.Client
	model     string
	maxTokens int64
}

func NewClient(baseURL, token, model string, maxTokens int) *Client {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(token),
		// The pipeline has no retry policy anywhere; the SDK default of
		// two retries would silently add one here.
		option.WithMaxRetries(0),
	)
	return &Client{
		client:    &client,
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Summarize builds the prompt, opens a streaming completion and accumulates
// the streamed fragments in arrival order. The result is trimmed of
// surrounding whitespace; an empty string is valid output, not an error.
func (c *Client) Summarize(ctx context.Context, articles []string) (string, error) {
	prompt := BuildPrompt(articles)

	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		MaxTokens: openai.Int(c.maxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	defer func() {
		if err := stream.Close(); err != nil {
			slog.Warn("Failed to close inference stream", "error", err)
		}
	}()

	var sb strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) > 0 {
			sb.WriteString(chunk.Choices[0].Delta.Content)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("inference stream: %w", err)
	}

	return strings.TrimSpace(sb.String()), nil
}
