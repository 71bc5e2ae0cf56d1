package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Publisher emits order lifecycle events. Publishing is best-effort and must
// never fail a customer-facing request.
type Publisher interface {
	Publish(ctx context.Context, eventType, orderID string, payload any)
	Close() error
}

// kafkaWriter is the subset of kafka.Writer the producer uses.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to a Kafka topic keyed by order id so all
// events of one order land on the same partition.
type KafkaPublisher struct {
	writer kafkaWriter
	logger *slog.Logger
}

// NewKafkaPublisher constructs a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

// Publish marshals the envelope and writes it, logging failures.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, orderID string, payload any) {
	envelope, err := NewEnvelope(eventType, orderID, payload)
	if err != nil {
		p.logger.Error("marshal event payload failed",
			slog.String("event", eventType), slog.String("error", err.Error()))
		return
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Error("marshal event envelope failed",
			slog.String("event", eventType), slog.String("error", err.Error()))
		return
	}

	msg := kafka.Message{Key: []byte(orderID), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			slog.String("event", eventType),
			slog.String("order", orderID),
			slog.String("error", err.Error()),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops everything; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) {}
func (NopPublisher) Close() error                                 { return nil }
