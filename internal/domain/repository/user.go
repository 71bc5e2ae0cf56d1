package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// UserRepository describes persistence operations with accounts.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
