package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/AINewsSummary/internal/domain"
)

// SummaryProvider is the pipeline surface the handlers depend on.
type SummaryProvider interface {
	GetSummary(ctx context.Context, window domain.Window, language string) (string, domain.Outcome, error)
}

type SummaryHandler struct {
	service         SummaryProvider
	defaultLanguage string
}

func NewSummaryHandler(service SummaryProvider, defaultLanguage string) *SummaryHandler {
	return &SummaryHandler{
		service:         service,
		defaultLanguage: defaultLanguage,
	}
}

type summaryRequest struct {
	Language string `json:"language"`
}

// Window returns the handler for one summary route. The three routes differ
// only in the lookback window they pass to the pipeline.
func (h *SummaryHandler) Window(window domain.Window) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		language := h.defaultLanguage
		if r.ContentLength != 0 {
			var req summaryRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Bad Request: invalid JSON body")
				return
			}
			if req.Language != "" {
				language = req.Language
			}
		}

		summary, outcome, err := h.service.GetSummary(r.Context(), window, language)
		switch outcome {
		case domain.OutcomeDone:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte(summary)); err != nil {
				slog.Warn("Failed to write summary response", "error", err)
			}
		case domain.OutcomeNoNewsFound:
			writeError(w, http.StatusBadRequest, "No AI news articles available to summarize.")
		case domain.OutcomeSummaryEmpty:
			writeError(w, http.StatusBadRequest, "Failed to generate a summary from the news articles.")
		default:
			slog.Error("Summary pipeline failed", "window", window, "outcome", outcome, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error: an unexpected error occurred.")
		}
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "OK",
		"message": "API is running.",
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
