package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/AINewsSummary/internal/domain"
	"github.com/AINewsSummary/pkg/logging"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer  *kafka.Writer
	sampler *logging.ErrorSampler
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{}, // Hash balancer ensures messages with same key go to same partition
	}
	slog.Info("Kafka Publisher initialized", "brokers", brokers, "topic", topic)
	return &KafkaPublisher{
		writer: w,
		// Kafka being down produces one error per request; sample the noise
		sampler: logging.NewErrorSampler(10),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.SummaryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Key by window+language so repeated summaries of the same slot land on
	// the same partition, in order.
	msg := kafka.Message{
		Key:   []byte(event.Window + ":" + event.Language),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		if p.sampler.ShouldLog("kafka_publish_error") {
			slog.Error("Failed to write summary event to kafka",
				"error", err, "occurrences", p.sampler.GetCount("kafka_publish_error"))
		}
		return err
	}

	p.sampler.Reset("kafka_publish_error")
	slog.Debug("Published summary event to Kafka", "window", event.Window, "language", event.Language)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
