package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/internal/infra/metrics"
)

const maxBodyBytes = 1 << 16

// CacheMiddleware implements cache-aside over the summary routes, keyed by
// (route, language). Only successful responses are stored; errors always
// fall through to the pipeline.
type CacheMiddleware struct {
	cache           domain.ResponseCache
	defaultLanguage string
}

func NewCacheMiddleware(cache domain.ResponseCache, defaultLanguage string) *CacheMiddleware {
	return &CacheMiddleware{
		cache:           cache,
		defaultLanguage: defaultLanguage,
	}
}

func (m *CacheMiddleware) Wrap(route string, ttl time.Duration, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The language lives in the request body, so the body is buffered
		// here and replayed for the handler.
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			next(w, r)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		key := route + ":" + m.languageFrom(body)

		if val, ok, err := m.cache.Get(r.Context(), key); err == nil && ok {
			metrics.CacheHits.WithLabelValues(route).Inc()
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(val)); err != nil {
				slog.Warn("Failed to write cached response", "error", err)
			}
			return
		} else if err != nil {
			slog.Warn("Response cache lookup failed", "route", route, "error", err)
		}
		metrics.CacheMisses.WithLabelValues(route).Inc()

		rec := newRecorder(w)
		next(rec, r)

		if rec.status == http.StatusOK {
			if err := m.cache.Set(r.Context(), key, rec.body.String(), ttl); err != nil {
				slog.Warn("Failed to store response in cache", "route", route, "error", err)
			}
		}
	}
}

// languageFrom extracts the language field best-effort; malformed bodies are
// the handler's problem, not the cache's.
func (m *CacheMiddleware) languageFrom(body []byte) string {
	if len(body) == 0 {
		return m.defaultLanguage
	}
	var req summaryRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Language == "" {
		return m.defaultLanguage
	}
	return req.Language
}

// recorder tees the response so a successful body can be cached after the
// handler runs.
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func newRecorder(w http.ResponseWriter) *recorder {
	return &recorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.status == http.StatusOK {
		r.body.Write(p)
	}
	return r.ResponseWriter.Write(p)
}
