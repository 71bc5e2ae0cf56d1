package model

import (
	"time"

	"github.com/google/uuid"
)

// Product carries the catalog fields the order core depends on. Stock is
// decremented at fulfillment; sold_count once per paid order line.
type Product struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Price     int64
	Stock     int
	SoldCount int
	IsActive  bool
	CreatedAt time.Time
}
