package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestPublishWrapsEnvelope(t *testing.T) {
	writer := &captureWriter{}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}

	publisher.Publish(context.Background(), EventPaymentSucceeded, "order-1", PaymentEventPayload{
		OrderID: "order-1", PaymentID: "pay-1", Amount: 60000, Status: "SUCCESS",
	})

	if len(writer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "order-1" {
		t.Fatalf("expected key order-1, got %s", msg.Key)
	}

	var envelope Envelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.EventType != EventPaymentSucceeded {
		t.Fatalf("unexpected event type %s", envelope.EventType)
	}
	if envelope.EventID == "" {
		t.Fatal("expected event id to be set")
	}
	if envelope.EventVersion != 1 {
		t.Fatalf("unexpected event version %d", envelope.EventVersion)
	}

	var payload PaymentEventPayload
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Amount != 60000 {
		t.Fatalf("unexpected amount %d", payload.Amount)
	}
}

func TestPublishSwallowsWriteErrors(t *testing.T) {
	writer := &captureWriter{err: errors.New("broker down")}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}

	// Must not panic or propagate the error.
	publisher.Publish(context.Background(), EventOrderCreated, "order-1", OrderCreatedPayload{OrderID: "order-1"})
}

func TestClose(t *testing.T) {
	writer := &captureWriter{}
	publisher := &KafkaPublisher{writer: writer, logger: testLogger()}
	if err := publisher.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !writer.closed {
		t.Fatal("expected writer to be closed")
	}
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	p.Publish(context.Background(), EventOrderCreated, "x", nil)
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
