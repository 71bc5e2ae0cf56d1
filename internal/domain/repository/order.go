package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// NewOrder carries the checkout snapshot persisted as a new order row.
type NewOrder struct {
	StoreID       uuid.UUID
	CustomerID    uuid.UUID
	Items         []model.OrderItem
	Subtotal      int64
	ShippingFee   int64
	Total         int64
	Shipping      model.ShippingMethod
	PaymentMethod model.PaymentMethod
	Address       *model.Address
	Notes         string
}

// OrderRepository describes persistence operations with orders. All status
// mutations are narrow, field-scoped updates.
type OrderRepository interface {
	// Create persists the order with a server-generated unique order code,
	// status NEW and payment state UNPAID.
	Create(ctx context.Context, o NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// GetOwned returns the order only when it belongs to customerID.
	GetOwned(ctx context.Context, id, customerID uuid.UUID) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	// SetPaymentState updates only the payment_status column. When status is
	// non-empty, order_status is updated in the same statement.
	SetPaymentState(ctx context.Context, id uuid.UUID, state model.PaymentState, status model.OrderStatus) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	// RecordSale flips sold_counted false->true and, when the flip wins,
	// applies every line's sold_count increment in the same transaction.
	// Returns false when the order was already counted.
	RecordSale(ctx context.Context, id uuid.UUID) (bool, error)
}
