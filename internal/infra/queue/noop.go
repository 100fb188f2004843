package queue

import (
	"context"

	"github.com/AINewsSummary/internal/domain"
)

// NoopPublisher stands in when no brokers are configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, _ *domain.SummaryEvent) error {
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
