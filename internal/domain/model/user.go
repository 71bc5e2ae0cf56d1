package model

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which endpoints a principal may call.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsAdmin reports whether role grants back-office access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
