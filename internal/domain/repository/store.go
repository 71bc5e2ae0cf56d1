package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// StoreRepository describes tenant lookup.
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
}
