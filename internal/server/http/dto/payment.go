package dto

import "time"

// PaymentResponse is the customer-facing invoice representation.
type PaymentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Provider   string    `json:"provider"`
	Reference  string    `json:"reference"`
	PaymentURL string    `json:"payment_url,omitempty"`
	QRString   string    `json:"qr_string,omitempty"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Reused     bool      `json:"reused,omitempty"`
	ExpiredAt  time.Time `json:"expired_at"`
}

// PaymentStatusResponse pairs the order with its newest payment attempt.
type PaymentStatusResponse struct {
	Order   OrderResponse    `json:"order"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// CallbackRequest mirrors the processor's notification fields. The processor
// posts form-encoded bodies; JSON is accepted for manual testing.
type CallbackRequest struct {
	MerchantCode    string `json:"merchantCode" form:"merchantCode"`
	MerchantOrderID string `json:"merchantOrderId" form:"merchantOrderId"`
	Reference       string `json:"reference" form:"reference"`
	Amount          string `json:"amount" form:"amount"`
	Signature       string `json:"signature" form:"signature"`
	ResultCode      string `json:"resultCode" form:"resultCode"`
}

// CallbackResponse acknowledges a processed notification.
type CallbackResponse struct {
	Status string `json:"status"`
}

// SimulateRequest selects a sandbox payment manipulation for an order.
type SimulateRequest struct {
	OrderID string `json:"order_id"`
	Action  string `json:"action"`
}

// SimulateResponse reports the simulation result.
type SimulateResponse struct {
	Message string           `json:"message"`
	Order   OrderResponse    `json:"order"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}
