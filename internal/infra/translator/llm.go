// Package translator renders summaries into a requested language using an
// OpenAI-compatible chat endpoint.
package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a professional translator. Translate the text provided by the user into the requested target language. Preserve the meaning, tone and formatting of the original. Output only the translated text, with no commentary.`

type LLMTranslator struct {
	client          *openai.Client
	model           string
	defaultLanguage string
}

func NewLLMTranslator(baseURL, token, model, defaultLanguage string) *LLMTranslator {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(token),
		option.WithMaxRetries(0),
	)
	return &LLMTranslator{
		client:          &client,
		model:           model,
		defaultLanguage: defaultLanguage,
	}
}

// Translate returns text rendered into the language identified by
// languageCode. The default/source language short-circuits without any
// upstream call and returns the input unchanged.
func (t *LLMTranslator) Translate(ctx context.Context, text, languageCode string) (string, error) {
	if languageCode == "" || languageCode == t.defaultLanguage {
		return text, nil
	}

	userPrompt := fmt.Sprintf("Target language code: %s\n\n%s", languageCode, text)

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from translator")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
