package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// Principal is the capability-tagged identity carried by a verified token.
type Principal struct {
	UserID uuid.UUID
	Role   model.Role
}

type Strategy interface {
	IssueToken(userID uuid.UUID, role model.Role) (string, error)
	ParseToken(token string) (Principal, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
