package factory

import (
	"errors"

	"github.com/AINewsSummary/internal/app"
	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/internal/infra/inference"
	"github.com/AINewsSummary/internal/infra/newsapi"
	"github.com/AINewsSummary/internal/infra/translator"
	"github.com/AINewsSummary/pkg/config"
)

// NewNewsFetcher creates the news API client with validation.
func NewNewsFetcher(cfg *config.Config) (domain.NewsFetcher, error) {
	if cfg.NewsAPIKey == "" {
		return nil, errors.New("news API key not configured")
	}
	if cfg.NewsAPIURL == "" {
		return nil, errors.New("news API URL not configured")
	}
	return newsapi.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.NewsHTTPTimeout), nil
}

// NewSummarizer creates the streaming inference client.
func NewSummarizer(cfg *config.Config) (domain.Summarizer, error) {
	if cfg.InferenceToken == "" {
		return nil, errors.New("inference token not configured")
	}
	if cfg.InferenceModel == "" {
		return nil, errors.New("inference model not configured")
	}
	if cfg.SummaryMaxTokens <= 0 {
		return nil, errors.New("summary max tokens must be positive")
	}
	return inference.NewClient(cfg.InferenceBaseURL, cfg.InferenceToken, cfg.InferenceModel, cfg.SummaryMaxTokens), nil
}

// NewTranslator creates the LLM-backed translator. It shares the inference
// endpoint and model with the summarizer.
func NewTranslator(cfg *config.Config) (domain.Translator, error) {
	if cfg.InferenceToken == "" {
		return nil, errors.New("inference token not configured")
	}
	return translator.NewLLMTranslator(cfg.InferenceBaseURL, cfg.InferenceToken, cfg.InferenceModel, cfg.DefaultLanguage), nil
}

// NewSummaryService creates the pipeline service with validation.
func NewSummaryService(
	fetcher domain.NewsFetcher,
	summarizer domain.Summarizer,
	translator domain.Translator,
	publisher domain.EventPublisher,
	cfg *config.Config,
) (*app.SummaryService, error) {
	if fetcher == nil {
		return nil, errors.New("news fetcher is nil")
	}
	if summarizer == nil {
		return nil, errors.New("summarizer is nil")
	}
	if translator == nil {
		return nil, errors.New("translator is nil")
	}
	if publisher == nil {
		return nil, errors.New("event publisher is nil")
	}
	return app.NewSummaryService(fetcher, summarizer, translator, publisher, cfg.InferenceModel), nil
}
