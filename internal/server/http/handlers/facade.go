package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
	pkgAuth "github.com/anandaputra/tokoku/internal/pkg/auth"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Principal, error)
}

// CartFacade persists carts between sessions.
type CartFacade interface {
	Cart(ctx context.Context, customerID uuid.UUID) (*usecase.StoredCart, error)
	SaveCart(ctx context.Context, customerID uuid.UUID, cart usecase.StoredCart) error
}

// OrderFacade encapsulates checkout and order reads exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, customerID uuid.UUID, in usecase.CheckoutInput) (*usecase.CheckoutResult, error)
	Orders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	Order(ctx context.Context, orderID, customerID uuid.UUID) (*model.Order, error)
}

// PaymentFacade covers invoice issuing, status polling and the processor
// callback.
type PaymentFacade interface {
	CreateInvoice(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.IssuedInvoice, error)
	PaymentStatus(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.PaymentView, error)
	HandleCallback(ctx context.Context, data usecase.CallbackData) (usecase.CallbackOutcome, error)
}

// AdminFacade covers staff-only operations.
type AdminFacade interface {
	Simulate(ctx context.Context, role model.Role, orderID uuid.UUID, action usecase.SimulateAction) (*usecase.SimulationResult, error)
	AdvanceOrder(ctx context.Context, role model.Role, orderID uuid.UUID, status string) (*model.Order, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CartFacade
	OrderFacade
	PaymentFacade
	AdminFacade
}
