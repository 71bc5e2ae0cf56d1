package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// ProductRepository describes catalog access needed by the order core.
type ProductRepository interface {
	// GetForStore returns the listed products belonging to storeID, keyed by
	// id. Missing or inactive products are simply absent from the result.
	GetForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]model.Product, error)
	// DecrementStock applies per-line stock decrements in one batch
	// statement, flooring at zero.
	DecrementStock(ctx context.Context, items []model.OrderItem) error
}
