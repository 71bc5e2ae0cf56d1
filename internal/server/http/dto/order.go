package dto

import "time"

// CartItemRequest is one checkout line. Only product and quantity come from
// the client; prices are resolved server-side.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Notes     string `json:"notes,omitempty"`
}

// AddressRequest is the delivery address for courier orders.
type AddressRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutRequest describes the checkout payload.
type CheckoutRequest struct {
	StoreID       string            `json:"store_id"`
	Items         []CartItemRequest `json:"items"`
	Shipping      string            `json:"shipping_method"`
	PaymentMethod string            `json:"payment_method"`
	Address       *AddressRequest   `json:"address,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

// OrderItemResponse is one priced order line.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	Notes     string `json:"notes,omitempty"`
	Subtotal  int64  `json:"subtotal"`
}

// OrderResponse is the customer-facing order representation.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderCode     string              `json:"order_code"`
	StoreID       string              `json:"store_id"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      int64               `json:"subtotal"`
	ShippingFee   int64               `json:"shipping_fee"`
	Total         int64               `json:"total"`
	Shipping      string              `json:"shipping_method"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"order_status"`
	Address       *AddressRequest     `json:"address,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// CheckoutResponse pairs the created order with its invoice, when one was
// issued at checkout.
type CheckoutResponse struct {
	Order        OrderResponse    `json:"order"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
	InvoiceError string           `json:"invoice_error,omitempty"`
}

// AdvanceOrderRequest carries the admin status transition.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}
