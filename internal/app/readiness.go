package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// ReadinessWaiter blocks startup until the optional infrastructure the
// service was configured with is reachable. The news, inference and
// translation providers are external SaaS endpoints and are not probed.
type ReadinessWaiter struct {
	redisClient *redis.Client
	brokers     []string
	topic       string
}

func NewReadinessWaiter(redisClient *redis.Client, brokers []string, topic string) *ReadinessWaiter {
	return &ReadinessWaiter{
		redisClient: redisClient,
		brokers:     brokers,
		topic:       topic,
	}
}

func (w *ReadinessWaiter) WaitForDependencies(ctx context.Context) error {
	if w.redisClient != nil {
		if err := w.waitForRedis(ctx); err != nil {
			return err
		}
	}
	if len(w.brokers) > 0 {
		if err := w.waitForKafka(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReadinessWaiter) waitForRedis(ctx context.Context) error {
	slog.Info("Waiting for Redis...")
	// Poll every 2 seconds, indefinitely (or until context cancel), rather
	// than crashing if dependencies are slow to start in dev environments.
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.redisClient.Ping(ctx).Err(); err != nil {
				slog.Warn("Redis not ready yet", "error", err)
				continue
			}
			slog.Info("Redis is ready")
			return nil
		}
	}
}

func (w *ReadinessWaiter) waitForKafka(ctx context.Context) error {
	slog.Info("Waiting for Kafka...")
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.checkKafka(); err != nil {
				slog.Warn("Kafka not ready yet", "error", err)
				continue
			}
			slog.Info("Kafka is ready")
			return nil
		}
	}
}

func (w *ReadinessWaiter) checkKafka() error {
	// 1. Check TCP connection to brokers
	for _, broker := range w.brokers {
		conn, err := net.DialTimeout("tcp", broker, 2*time.Second)
		if err != nil {
			return fmt.Errorf("failed to connect to broker %s: %w", broker, err)
		}
		_ = conn.Close()
	}

	// 2. Check if topic exists, against the first broker for simplicity
	conn, err := kafka.Dial("tcp", w.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	partitions, err := conn.ReadPartitions(w.topic)
	if err != nil {
		return fmt.Errorf("failed to read partitions for topic %s: %w", w.topic, err)
	}
	if len(partitions) == 0 {
		return fmt.Errorf("topic %s has no partitions", w.topic)
	}

	return nil
}
