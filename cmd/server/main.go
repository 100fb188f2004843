package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/AINewsSummary/cmd/server/factory"
	"github.com/AINewsSummary/internal/app"
	"github.com/AINewsSummary/internal/infra/tracing"
	transport "github.com/AINewsSummary/internal/transport/http"
	"github.com/AINewsSummary/pkg/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	fx.New(
		fx.Provide(
			// Config
			config.Load,

			// Infrastructure
			factory.NewRedisClient,
			factory.NewResponseCache,
			factory.NewEventPublisher,

			// Providers
			factory.NewNewsFetcher,
			factory.NewSummarizer,
			factory.NewTranslator,

			// Services
			factory.NewSummaryService,

			// HTTP Server
			transport.NewHTTPServer,
		),
		fx.Invoke(
			SetupTracer,
			WaitForReady, // Block until configured dependencies are ready
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func SetupTracer(lc fx.Lifecycle) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, "news-summary")
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

// WaitForReady blocks until redis and kafka are reachable, when configured.
func WaitForReady(
	cfg *config.Config,
	redisClient *redis.Client,
) error {
	ctx := context.Background()
	waiter := app.NewReadinessWaiter(
		redisClient,
		cfg.KafkaBrokers,
		cfg.KafkaTopic,
	)
	return waiter.WaitForDependencies(ctx)
}

func StartServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting HTTP server", "address", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
