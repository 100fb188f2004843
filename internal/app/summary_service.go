package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/internal/infra/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// SummaryService runs the fetch -> summarize -> translate pipeline. Each run
// is independent and strictly sequential; no state survives between calls.
type SummaryService struct {
	fetcher    domain.NewsFetcher
	summarizer domain.Summarizer
	translator domain.Translator
	publisher  domain.EventPublisher
	model      string
	now        func() time.Time
}

func NewSummaryService(
	fetcher domain.NewsFetcher,
	summarizer domain.Summarizer,
	translator domain.Translator,
	publisher domain.EventPublisher,
	model string,
) *SummaryService {
	return &SummaryService{
		fetcher:    fetcher,
		summarizer: summarizer,
		translator: translator,
		publisher:  publisher,
		model:      model,
		now:        time.Now,
	}
}

// startDate maps a window to the YYYY-MM-DD date its article search begins at.
func (s *SummaryService) startDate(window domain.Window) string {
	return s.now().AddDate(0, 0, -window.Days()).Format("2006-01-02")
}

// GetSummary produces a translated summary for the window, or a classified
// terminal outcome. The summary string is non-empty exactly when the outcome
// is OutcomeDone; NoNewsFound and SummaryEmpty are normal "no data" results,
// the error return is populated only for the two failure outcomes.
func (s *SummaryService) GetSummary(ctx context.Context, window domain.Window, language string) (string, domain.Outcome, error) {
	tr := otel.Tracer("news-summary")
	ctx, span := tr.Start(ctx, "GetSummary")
	defer span.End()
	span.SetAttributes(
		attribute.String("window", string(window)),
		attribute.String("language", language),
	)

	from := s.startDate(window)
	slog.Info("Fetching AI news articles", "window", window, "from", from)

	start := time.Now()
	articles, err := s.fetcher.Fetch(ctx, from)
	metrics.NewsFetchDuration.WithLabelValues(string(window)).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return s.fail(window, domain.OutcomeUpstreamError, fmt.Errorf("fetch news: %w", err))
	}
	if len(articles) == 0 {
		slog.Warn("No AI news articles fetched", "window", window, "from", from)
		return s.noData(window, domain.OutcomeNoNewsFound)
	}
	metrics.ArticlesFetched.WithLabelValues(string(window)).Add(float64(len(articles)))

	slog.Info("Summarizing fetched articles", "count", len(articles), "window", window)
	start = time.Now()
	summary, err := s.summarizer.Summarize(ctx, articles)
	metrics.SummarizeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return s.fail(window, domain.OutcomeUpstreamError, fmt.Errorf("summarize news: %w", err))
	}
	if summary == "" {
		slog.Warn("Summarization returned an empty result", "window", window)
		return s.noData(window, domain.OutcomeSummaryEmpty)
	}

	start = time.Now()
	translated, err := s.translator.Translate(ctx, summary, language)
	metrics.TranslateDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return s.fail(window, domain.OutcomeTranslationError, fmt.Errorf("translate summary: %w", err))
	}

	s.publish(ctx, window, language, translated)

	slog.Info("AI news summary generated", "window", window, "language", language)
	metrics.SummariesGenerated.WithLabelValues(string(window), string(domain.OutcomeDone)).Inc()
	return translated, domain.OutcomeDone, nil
}

func (s *SummaryService) fail(window domain.Window, outcome domain.Outcome, err error) (string, domain.Outcome, error) {
	metrics.SummariesGenerated.WithLabelValues(string(window), string(outcome)).Inc()
	return "", outcome, err
}

func (s *SummaryService) noData(window domain.Window, outcome domain.Outcome) (string, domain.Outcome, error) {
	metrics.SummariesGenerated.WithLabelValues(string(window), string(outcome)).Inc()
	return "", outcome, nil
}

// publish emits the completed summary as an event. The caller already has its
// response at this point, so publish failures are logged and counted but
// never surfaced.
func (s *SummaryService) publish(ctx context.Context, window domain.Window, language, summary string) {
	if s.publisher == nil {
		return
	}

	event := &domain.SummaryEvent{
		Window:      string(window),
		Language:    language,
		Summary:     summary,
		Model:       s.model,
		GeneratedAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish summary event", "window", window, "error", err)
		metrics.PublishErrors.Inc()
		return
	}
	metrics.SummaryEventsPublished.Inc()
}
