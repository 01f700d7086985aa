package repository

import (
	"context"
	"fmt"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
	"SignalDesk/pkg/kafka"
)

// KafkaPublisher streams pipeline snapshots to a topic for downstream
// consumers (dashboards, archival jobs).
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaPublisher wraps a producer for one topic.
func NewKafkaPublisher(producer *kafka.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

var _ domrepo.Publisher = (*KafkaPublisher)(nil)

// PublishSnapshot sends the snapshot keyed by its update timestamp.
func (p *KafkaPublisher) PublishSnapshot(ctx context.Context, snap *models.PipelineSnapshot) error {
	key := []byte(snap.UpdatedAt.UTC().Format("20060102T150405.000Z"))
	if err := p.producer.Publish(ctx, p.topic, key, snap); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
