package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// NewPayment carries a processor invoice to persist as a PENDING payment.
type NewPayment struct {
	OrderID   uuid.UUID
	StoreID   uuid.UUID
	Provider  string
	Reference string
	InvoiceID string
	QRString  string
	QRISURL   string
	Amount    int64
	ExpiredAt time.Time
}

// PaymentRepository describes persistence operations with payments. A partial
// unique index allows at most one PENDING row per order, which makes invoice
// creation race-free under concurrent requests.
type PaymentRepository interface {
	// Create inserts a PENDING payment. When a concurrent request already
	// holds the pending slot for the order, the winner's row is returned
	// with created=false.
	Create(ctx context.Context, p NewPayment) (payment *model.Payment, created bool, err error)
	// GetActive returns the unexpired PENDING payment for the order, if any.
	GetActive(ctx context.Context, orderID uuid.UUID, now time.Time) (*model.Payment, error)
	// GetLatest returns the newest payment row for the order.
	GetLatest(ctx context.Context, orderID uuid.UUID) (*model.Payment, error)
	// FindByExternalRef locates a payment by processor reference or
	// merchant invoice id.
	FindByExternalRef(ctx context.Context, reference, invoiceID string) (*model.Payment, error)
	// Settle moves the payment out of its current status and applies the
	// matching order payment state in one transaction, so a crash between
	// the two writes can never strand the order. SUCCESS rows are never
	// overwritten; when the guard matches no row the order is untouched and
	// settled=false is returned. A non-empty orderStatus is written in the
	// same statement as the payment state.
	Settle(ctx context.Context, paymentID, orderID uuid.UUID, status model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (settled bool, err error)
	// Reset returns the payment to PENDING with a fresh expiry (sandbox
	// simulation only).
	Reset(ctx context.Context, id uuid.UUID, expiredAt time.Time) error
	// ExpireOverdue flips overdue PENDING rows for the order to EXPIRED and
	// reports how many changed.
	ExpireOverdue(ctx context.Context, orderID uuid.UUID, now time.Time) (int64, error)
	// SelectOverdueBatch returns a locked batch of overdue PENDING payments
	// already flipped to EXPIRED, for downstream order/event handling.
	SelectOverdueBatch(ctx context.Context, now time.Time, limit int) ([]model.Payment, error)
}
