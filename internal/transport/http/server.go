package http

import (
	"net/http"

	"github.com/AINewsSummary/internal/app"
	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/pkg/config"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHTTPServer(cfg *config.Config, service *app.SummaryService, cache domain.ResponseCache) *http.Server {
	h := NewSummaryHandler(service, cfg.DefaultLanguage)
	cm := NewCacheMiddleware(cache, cfg.DefaultLanguage)

	r := mux.NewRouter()
	r.HandleFunc("/health", handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	r.HandleFunc("/daily_news_summary",
		cm.Wrap("daily_news_summary", cfg.CacheTTL, h.Window(domain.WindowToday))).Methods("POST")
	r.HandleFunc("/weekly_news_summary",
		cm.Wrap("weekly_news_summary", cfg.CacheTTL, h.Window(domain.WindowLastWeek))).Methods("POST")
	r.HandleFunc("/monthly_news_summary",
		cm.Wrap("monthly_news_summary", cfg.CacheTTL, h.Window(domain.WindowLastMonth))).Methods("POST")

	return &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}
}
