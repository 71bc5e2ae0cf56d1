package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus describes an individual invoice attempt. SUCCESS is terminal
// and is never overwritten.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

// Payment is one invoice attempt against an external processor. An order may
// accumulate several rows, one per attempt; the latest by creation time is
// authoritative for polling.
type Payment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	StoreID   uuid.UUID
	Provider  string
	Reference string
	InvoiceID string
	QRString  string
	QRISURL   string
	Amount    int64
	Status    PaymentStatus
	ExpiredAt time.Time
	CreatedAt time.Time
}

// Active reports whether the payment can still be settled.
func (p *Payment) Active(now time.Time) bool {
	return p.Status == PaymentStatusPending && p.ExpiredAt.After(now)
}
