package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidSignature   = errors.New("invalid callback signature")
	ErrExternalService    = errors.New("payment processor request failed")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrSimulationDisabled = errors.New("simulation not available in production")
)
