package domain

import (
	"context"
	"time"
)

// Window selects the lookback period for a summary request.
type Window string

const (
	WindowToday     Window = "today"
	WindowLastWeek  Window = "last_week"
	WindowLastMonth Window = "last_month"
)

// Days returns how far back the window reaches from the current date.
func (w Window) Days() int {
	switch w {
	case WindowLastWeek:
		return 7
	case WindowLastMonth:
		return 30
	default:
		return 0
	}
}

// Valid reports whether w is one of the known windows.
func (w Window) Valid() bool {
	switch w {
	case WindowToday, WindowLastWeek, WindowLastMonth:
		return true
	}
	return false
}

// Outcome classifies the terminal state of one pipeline run.
type Outcome string

const (
	OutcomeDone             Outcome = "done"
	OutcomeNoNewsFound      Outcome = "no_news_found"
	OutcomeSummaryEmpty     Outcome = "summary_empty"
	OutcomeUpstreamError    Outcome = "upstream_error"
	OutcomeTranslationError Outcome = "translation_error"
)

// NewsFetcher retrieves rendered "<title>: <description>" article lines
// published on or after fromDate (YYYY-MM-DD). An empty slice means no news;
// a non-nil error means the provider could not be reached at all.
type NewsFetcher interface {
	Fetch(ctx context.Context, fromDate string) ([]string, error)
}

// Summarizer turns a batch of article lines into a single plain-text summary.
// An empty string is valid output and distinct from an error.
type Summarizer interface {
	Summarize(ctx context.Context, articles []string) (string, error)
}

// Translator renders text into the requested language. The default/source
// language must be returned unchanged without any upstream call.
type Translator interface {
	Translate(ctx context.Context, text, languageCode string) (string, error)
}

// SummaryEvent is emitted after a summary has been produced and returned.
type SummaryEvent struct {
	Window      string    `json:"window"`
	Language    string    `json:"language"`
	Summary     string    `json:"summary"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// EventPublisher publishes summary events to a queue.
type EventPublisher interface {
	Publish(ctx context.Context, event *SummaryEvent) error
	Close() error
}

// ResponseCache stores rendered responses at the serving boundary.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
