package model

import (
	"time"

	"github.com/google/uuid"
)

// Store is a tenant of the marketplace.
type Store struct {
	ID              uuid.UUID
	Name            string
	Slug            string
	ShippingFeeFlat int64
	IsActive        bool
	CreatedAt       time.Time
}
