package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SummariesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_generated_total",
			Help: "The total number of summary pipeline runs by terminal outcome",
		},
		[]string{"window", "outcome"},
	)

	NewsFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_fetch_duration_seconds",
			Help:    "Duration of news API fetches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"window"},
	)

	SummarizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarize_duration_seconds",
			Help:    "Duration of streaming summarization calls",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	TranslateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "translate_duration_seconds",
			Help:    "Duration of translation calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	ArticlesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_fetched_total",
			Help: "The total number of article lines handed to the summarizer",
		},
		[]string{"window"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Responses served from the cache",
		},
		[]string{"route"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Requests that fell through to the pipeline",
		},
		[]string{"route"},
	)

	SummaryEventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_events_published_total",
			Help: "Summary events successfully published to the queue",
		},
	)

	PublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_publish_errors_total",
			Help: "Summary events that failed to publish",
		},
	)
)
