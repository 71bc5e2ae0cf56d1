package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderCreated     = "OrderCreated"
	EventPaymentSucceeded = "PaymentSucceeded"
	EventPaymentFailed    = "PaymentFailed"
	EventPaymentExpired   = "PaymentExpired"
	EventOrderCompleted   = "OrderCompleted"
	EventOrderCanceled    = "OrderCanceled"
)

const producerName = "tokoku-api"

// Envelope wraps every published event with delivery metadata.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	OrderID      string          `json:"order_id"`
	Payload      json.RawMessage `json:"payload"`
}

// OrderCreatedPayload describes a freshly checked-out order.
type OrderCreatedPayload struct {
	OrderID       string `json:"order_id"`
	OrderCode     string `json:"order_code"`
	StoreID       string `json:"store_id"`
	CustomerID    string `json:"customer_id"`
	Total         int64  `json:"total"`
	PaymentMethod string `json:"payment_method"`
}

// PaymentEventPayload describes a payment state transition.
type PaymentEventPayload struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Reference string `json:"reference,omitempty"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// OrderStatusPayload describes a fulfillment transition.
type OrderStatusPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// NewEnvelope builds an envelope around an already-marshaled payload.
func NewEnvelope(eventType, orderID string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producerName,
		OrderID:      orderID,
		Payload:      raw,
	}, nil
}
