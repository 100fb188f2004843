package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AINewsSummary/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks

type MockFetcher struct {
	mock.Mock
}

var _ domain.NewsFetcher = (*MockFetcher)(nil)

func (m *MockFetcher) Fetch(ctx context.Context, fromDate string) ([]string, error) {
	args := m.Called(ctx, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSummarizer struct {
	mock.Mock
}

var _ domain.Summarizer = (*MockSummarizer)(nil)

func (m *MockSummarizer) Summarize(ctx context.Context, articles []string) (string, error) {
	args := m.Called(ctx, articles)
	return args.String(0), args.Error(1)
}

type MockTranslator struct {
	mock.Mock
}

var _ domain.Translator = (*MockTranslator)(nil)

func (m *MockTranslator) Translate(ctx context.Context, text, languageCode string) (string, error) {
	args := m.Called(ctx, text, languageCode)
	return args.String(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

var _ domain.EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event *domain.SummaryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestService(f *MockFetcher, s *MockSummarizer, tr *MockTranslator, p *MockPublisher) *SummaryService {
	svc := NewSummaryService(f, s, tr, p, "test-model")
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestStartDate(t *testing.T) {
	svc := newTestService(new(MockFetcher), new(MockSummarizer), new(MockTranslator), new(MockPublisher))

	assert.Equal(t, "2026-08-29", svc.startDate(domain.WindowToday))
	assert.Equal(t, "2026-08-22", svc.startDate(domain.WindowLastWeek))
	assert.Equal(t, "2026-07-30", svc.startDate(domain.WindowLastMonth))
}

func TestGetSummary_Done(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	articles := []string{"A: a", "B: b"}
	fetcher.On("Fetch", mock.Anything, "2026-08-29").Return(articles, nil)
	summarizer.On("Summarize", mock.Anything, articles).Return("AI models improved this week.", nil)
	translator.On("Translate", mock.Anything, "AI models improved this week.", "en").
		Return("AI models improved this week.", nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(fetcher, summarizer, translator, publisher)
	summary, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "en")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, outcome)
	assert.Equal(t, "AI models improved this week.", summary)

	fetcher.AssertExpectations(t)
	summarizer.AssertExpectations(t)
	translator.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestGetSummary_NoNewsSkipsSummarizerAndTranslator(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{}, nil)

	svc := newTestService(fetcher, summarizer, translator, publisher)
	summary, outcome, err := svc.GetSummary(context.Background(), domain.WindowLastWeek, "en")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoNewsFound, outcome)
	assert.Empty(t, summary)

	summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGetSummary_EmptySummarySkipsTranslator(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("", nil)

	svc := newTestService(fetcher, summarizer, translator, publisher)
	_, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "en")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSummaryEmpty, outcome)
	translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSummary_FetchErrorIsUpstream(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	svc := newTestService(fetcher, new(MockSummarizer), new(MockTranslator), new(MockPublisher))
	_, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "en")

	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeUpstreamError, outcome)
}

func TestGetSummary_SummarizeErrorIsUpstream(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("", errors.New("stream failed"))

	svc := newTestService(fetcher, summarizer, new(MockTranslator), new(MockPublisher))
	_, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "en")

	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeUpstreamError, outcome)
}

func TestGetSummary_TranslateErrorIsClassified(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("Hello", nil)
	translator.On("Translate", mock.Anything, "Hello", "fr").Return("", errors.New("translator down"))

	svc := newTestService(fetcher, summarizer, translator, publisher)
	_, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "fr")

	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeTranslationError, outcome)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGetSummary_TranslatorReceivesRequestedLanguage(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("Hello", nil)
	translator.On("Translate", mock.Anything, "Hello", "fr").Return("Bonjour", nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(fetcher, summarizer, translator, publisher)
	summary, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "fr")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, outcome)
	assert.Equal(t, "Bonjour", summary)
	translator.AssertExpectations(t)
}

func TestGetSummary_PublishFailureDoesNotFailRequest(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("Hello", nil)
	translator.On("Translate", mock.Anything, "Hello", "en").Return("Hello", nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("kafka down"))

	svc := newTestService(fetcher, summarizer, translator, publisher)
	summary, outcome, err := svc.GetSummary(context.Background(), domain.WindowToday, "en")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, outcome)
	assert.Equal(t, "Hello", summary)
}

func TestGetSummary_PublishesEventWithWindowAndLanguage(t *testing.T) {
	fetcher := new(MockFetcher)
	summarizer := new(MockSummarizer)
	translator := new(MockTranslator)
	publisher := new(MockPublisher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return([]string{"A: a"}, nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("Hello", nil)
	translator.On("Translate", mock.Anything, "Hello", "tr").Return("Merhaba", nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *domain.SummaryEvent) bool {
		return e.Window == "last_month" && e.Language == "tr" && e.Summary == "Merhaba" && e.Model == "test-model"
	})).Return(nil)

	svc := newTestService(fetcher, summarizer, translator, publisher)
	_, outcome, err := svc.GetSummary(context.Background(), domain.WindowLastMonth, "tr")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, outcome)
	publisher.AssertExpectations(t)
}
