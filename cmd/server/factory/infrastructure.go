// Package factory provides dependency injection constructors for the server.
package factory

import (
	"context"
	"errors"

	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/internal/infra/cache"
	"github.com/AINewsSummary/internal/infra/queue"
	"github.com/AINewsSummary/pkg/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient creates a redis client when the redis cache backend is
// selected; otherwise it returns nil and the memory backend is used.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.CacheBackend != "redis" {
		return nil, nil
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("redis cache backend selected but REDIS_URL not configured")
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		// Fall back to treating the value as a plain host:port
		opt = &redis.Options{Addr: cfg.RedisURL}
	}
	client := redis.NewClient(opt)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewResponseCache selects the configured response cache backend.
func NewResponseCache(client *redis.Client, cfg *config.Config) (domain.ResponseCache, error) {
	if cfg.CacheBackend == "redis" {
		if client == nil {
			return nil, errors.New("redis client is nil")
		}
		return cache.NewRedisCache(client), nil
	}
	return cache.NewMemoryCache(), nil
}

// NewEventPublisher creates the Kafka summary-event publisher, or a noop
// publisher when no brokers are configured.
func NewEventPublisher(cfg *config.Config, lc fx.Lifecycle) (domain.EventPublisher, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return queue.NewNoopPublisher(), nil
	}
	if cfg.KafkaTopic == "" {
		return nil, errors.New("kafka topic not configured")
	}

	publisher := queue.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
