package dto

// CartRequest is the stored-cart payload.
type CartRequest struct {
	StoreID string            `json:"store_id"`
	Items   []CartItemRequest `json:"items"`
}

// CartResponse mirrors CartRequest on reads.
type CartResponse struct {
	StoreID string            `json:"store_id,omitempty"`
	Items   []CartItemRequest `json:"items"`
}
