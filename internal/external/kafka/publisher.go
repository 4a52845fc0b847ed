// Package kafka carries the fire-and-forget outbound events: buyer and
// instructor notifications and statistics refresh signals.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"coursepay/internal/messaging"
	"coursepay/pkg/correlation"
	"coursepay/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a new Kafka publisher for one topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer}
}

// Publish sends an envelope to Kafka.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}
	if corrID := correlation.FromContext(ctx); corrID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(corrID),
		})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.PublishFailuresTotal.WithLabelValues(p.writer.Topic).Inc()
		slog.ErrorContext(ctx, "failed to publish message",
			slog.String("topic", p.writer.Topic), slog.String("key", env.Key), slog.Any("error", err))
		return err
	}

	slog.DebugContext(ctx, "message published",
		slog.String("topic", p.writer.Topic), slog.String("key", env.Key), slog.String("event_id", env.EventID))
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
