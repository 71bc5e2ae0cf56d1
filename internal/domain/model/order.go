package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes fulfillment lifecycle. The customer timeline drives
// the vocabulary; legacy admin labels are mapped via CanonicalOrderStatus.
type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "NEW"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

// PaymentState describes the payment side of an order.
type PaymentState string

const (
	PaymentStateUnpaid  PaymentState = "UNPAID"
	PaymentStatePaid    PaymentState = "PAID"
	PaymentStateFailed  PaymentState = "FAILED"
	PaymentStateExpired PaymentState = "EXPIRED"
)

// ShippingMethod selects delivery mode chosen at checkout.
type ShippingMethod string

const (
	ShippingCourier ShippingMethod = "COURIER"
	ShippingPickup  ShippingMethod = "PICKUP"
)

// PaymentMethod selects how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodQRIS PaymentMethod = "QRIS"
)

// OrderItem is an immutable line snapshot captured at checkout.
// Later product edits never change it.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Qty       int       `json:"qty"`
	Notes     string    `json:"notes,omitempty"`
	Subtotal  int64     `json:"subtotal"`
}

// Address is the shipping snapshot stored on courier orders.
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is a customer purchase within a single store.
type Order struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	CustomerID    uuid.UUID
	OrderCode     string
	Items         []OrderItem
	Subtotal      int64
	ShippingFee   int64
	Total         int64
	Shipping      ShippingMethod
	PaymentMethod PaymentMethod
	PaymentState  PaymentState
	Status        OrderStatus
	SoldCounted   bool
	Address       *Address
	Notes         string
	CreatedAt     time.Time
}

// CanonicalOrderStatus maps the legacy admin vocabulary onto the canonical
// one. The second return value is false for labels belonging to neither.
func CanonicalOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusOutForDelivery, OrderStatusReadyForPickup,
		OrderStatusCompleted, OrderStatusCanceled:
		return OrderStatus(s), true
	}
	switch s {
	case "PAID":
		return OrderStatusConfirmed, true
	case "CANCELLED":
		return OrderStatusCanceled, true
	}
	return "", false
}

// NextOrderStatuses returns the legal transitions out of the given status
// for an order with the given shipping method.
func NextOrderStatuses(current OrderStatus, shipping ShippingMethod) []OrderStatus {
	switch current {
	case OrderStatusNew:
		return []OrderStatus{OrderStatusConfirmed, OrderStatusCanceled}
	case OrderStatusConfirmed:
		return []OrderStatus{OrderStatusProcessing, OrderStatusCanceled}
	case OrderStatusProcessing:
		if shipping == ShippingPickup {
			return []OrderStatus{OrderStatusReadyForPickup, OrderStatusCanceled}
		}
		return []OrderStatus{OrderStatusOutForDelivery, OrderStatusCanceled}
	case OrderStatusOutForDelivery, OrderStatusReadyForPickup:
		return []OrderStatus{OrderStatusCompleted, OrderStatusCanceled}
	}
	return nil
}

// CanTransitionOrder reports whether moving current -> next is allowed.
func CanTransitionOrder(current, next OrderStatus, shipping ShippingMethod) bool {
	for _, s := range NextOrderStatuses(current, shipping) {
		if s == next {
			return true
		}
	}
	return false
}
