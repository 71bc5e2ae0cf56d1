package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
	pkgAuth "github.com/anandaputra/tokoku/internal/pkg/auth"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// StoreFacade aggregates the use cases behind a single application surface
// consumed by HTTP handlers and the background worker.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	carts    *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	invoices *usecase.InvoiceUseCase
	callback *usecase.CallbackUseCase
	status   *usecase.StatusUseCase
	simulate *usecase.SimulateUseCase
	admin    *usecase.AdminUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	carts *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	invoices *usecase.InvoiceUseCase,
	callback *usecase.CallbackUseCase,
	status *usecase.StatusUseCase,
	simulate *usecase.SimulateUseCase,
	admin *usecase.AdminUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:     auth,
		carts:    carts,
		checkout: checkout,
		invoices: invoices,
		callback: callback,
		status:   status,
		simulate: simulate,
		admin:    admin,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Principal, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Cart(ctx context.Context, customerID uuid.UUID) (*usecase.StoredCart, error) {
	return f.carts.GetCart(ctx, customerID)
}

func (f *StoreFacade) SaveCart(ctx context.Context, customerID uuid.UUID, cart usecase.StoredCart) error {
	return f.carts.PutCart(ctx, customerID, cart)
}

func (f *StoreFacade) Checkout(ctx context.Context, customerID uuid.UUID, in usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	return f.checkout.Checkout(ctx, customerID, in)
}

func (f *StoreFacade) Orders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	return f.checkout.ListOrders(ctx, customerID)
}

func (f *StoreFacade) Order(ctx context.Context, orderID, customerID uuid.UUID) (*model.Order, error) {
	return f.checkout.GetOrder(ctx, orderID, customerID)
}

func (f *StoreFacade) CreateInvoice(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.IssuedInvoice, error) {
	return f.invoices.CreateInvoice(ctx, orderID, customerID)
}

func (f *StoreFacade) PaymentStatus(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.PaymentView, error) {
	return f.status.PaymentStatus(ctx, orderID, customerID)
}

func (f *StoreFacade) HandleCallback(ctx context.Context, data usecase.CallbackData) (usecase.CallbackOutcome, error) {
	return f.callback.HandleCallback(ctx, data)
}

func (f *StoreFacade) Simulate(ctx context.Context, role model.Role, orderID uuid.UUID, action usecase.SimulateAction) (*usecase.SimulationResult, error) {
	return f.simulate.Simulate(ctx, role, orderID, action)
}

func (f *StoreFacade) AdvanceOrder(ctx context.Context, role model.Role, orderID uuid.UUID, status string) (*model.Order, error) {
	return f.admin.Advance(ctx, role, orderID, status)
}

func (f *StoreFacade) SweepExpiredPayments(ctx context.Context, limit int) ([]model.Payment, error) {
	return f.status.SweepExpired(ctx, limit)
}

func (f *StoreFacade) ExpireOrderPayment(ctx context.Context, payment model.Payment) error {
	return f.status.ExpireOrderPayment(ctx, payment)
}
