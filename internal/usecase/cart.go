package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/cache"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
)

// StoredCart is the customer's saved cart. It is a convenience for clients
// only; checkout always receives the cart explicitly in the request body.
type StoredCart struct {
	StoreID uuid.UUID  `json:"store_id"`
	Items   []CartItem `json:"items"`
}

// CartUseCase persists carts in the cache between sessions.
type CartUseCase struct {
	carts cache.Store
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts cache.Store) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// GetCart returns the stored cart, or an empty one when nothing is saved.
func (u *CartUseCase) GetCart(ctx context.Context, customerID uuid.UUID) (*StoredCart, error) {
	raw, err := u.carts.GetCart(ctx, customerID.String())
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &StoredCart{Items: []CartItem{}}, nil
		}
		return nil, err
	}

	var cart StoredCart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// A corrupt saved cart is not worth failing over; start fresh.
		return &StoredCart{Items: []CartItem{}}, nil
	}
	return &cart, nil
}

// PutCart validates and saves the cart.
func (u *CartUseCase) PutCart(ctx context.Context, customerID uuid.UUID, cart StoredCart) error {
	for _, item := range cart.Items {
		if item.Qty <= 0 {
			return fmt.Errorf("%w: qty must be positive", domainErrors.ErrValidation)
		}
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return u.carts.PutCart(ctx, customerID.String(), raw)
}

// ClearCart drops the stored cart.
func (u *CartUseCase) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	return u.carts.ClearCart(ctx, customerID.String())
}
