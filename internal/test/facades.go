package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
	pkgAuth "github.com/anandaputra/tokoku/internal/pkg/auth"
	"github.com/anandaputra/tokoku/internal/usecase"
)

// StorefrontFacadeStub provides controllable behaviour for HTTP handlers.
// Unset functions fall back to permissive defaults so tests only configure
// the paths they exercise.
type StorefrontFacadeStub struct {
	RegisterFn      func(context.Context, string, string) (string, error)
	AuthenticateFn  func(context.Context, string, string) (string, error)
	ParseTokenFn    func(string) (pkgAuth.Principal, error)
	CartFn          func(context.Context, uuid.UUID) (*usecase.StoredCart, error)
	SaveCartFn      func(context.Context, uuid.UUID, usecase.StoredCart) error
	CheckoutFn      func(context.Context, uuid.UUID, usecase.CheckoutInput) (*usecase.CheckoutResult, error)
	OrdersFn        func(context.Context, uuid.UUID) ([]model.Order, error)
	OrderFn         func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	CreateInvoiceFn func(context.Context, uuid.UUID, uuid.UUID) (*usecase.IssuedInvoice, error)
	PaymentStatusFn func(context.Context, uuid.UUID, uuid.UUID) (*usecase.PaymentView, error)
	CallbackFn      func(context.Context, usecase.CallbackData) (usecase.CallbackOutcome, error)
	SimulateFn      func(context.Context, model.Role, uuid.UUID, usecase.SimulateAction) (*usecase.SimulationResult, error)
	AdvanceFn       func(context.Context, model.Role, uuid.UUID, string) (*model.Order, error)
}

func (s StorefrontFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

func (s StorefrontFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

func (s StorefrontFacadeStub) ParseToken(token string) (pkgAuth.Principal, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Principal{UserID: uuid.New(), Role: model.RoleCustomer}, nil
}

func (s StorefrontFacadeStub) Cart(ctx context.Context, customerID uuid.UUID) (*usecase.StoredCart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, customerID)
	}
	return &usecase.StoredCart{Items: []usecase.CartItem{}}, nil
}

func (s StorefrontFacadeStub) SaveCart(ctx context.Context, customerID uuid.UUID, cart usecase.StoredCart) error {
	if s.SaveCartFn != nil {
		return s.SaveCartFn(ctx, customerID, cart)
	}
	return nil
}

func (s StorefrontFacadeStub) Checkout(ctx context.Context, customerID uuid.UUID, in usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, customerID, in)
	}
	return &usecase.CheckoutResult{Order: &model.Order{ID: uuid.New(), CustomerID: customerID}}, nil
}

func (s StorefrontFacadeStub) Orders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: uuid.New(), CustomerID: customerID}}, nil
}

func (s StorefrontFacadeStub) Order(ctx context.Context, orderID, customerID uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, customerID)
	}
	return &model.Order{ID: orderID, CustomerID: customerID}, nil
}

func (s StorefrontFacadeStub) CreateInvoice(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.IssuedInvoice, error) {
	if s.CreateInvoiceFn != nil {
		return s.CreateInvoiceFn(ctx, orderID, customerID)
	}
	return &usecase.IssuedInvoice{Payment: &model.Payment{ID: uuid.New(), OrderID: orderID}}, nil
}

func (s StorefrontFacadeStub) PaymentStatus(ctx context.Context, orderID, customerID uuid.UUID) (*usecase.PaymentView, error) {
	if s.PaymentStatusFn != nil {
		return s.PaymentStatusFn(ctx, orderID, customerID)
	}
	return &usecase.PaymentView{Order: &model.Order{ID: orderID, CustomerID: customerID}}, nil
}

func (s StorefrontFacadeStub) HandleCallback(ctx context.Context, data usecase.CallbackData) (usecase.CallbackOutcome, error) {
	if s.CallbackFn != nil {
		return s.CallbackFn(ctx, data)
	}
	return usecase.OutcomeProcessed, nil
}

func (s StorefrontFacadeStub) Simulate(ctx context.Context, role model.Role, orderID uuid.UUID, action usecase.SimulateAction) (*usecase.SimulationResult, error) {
	if s.SimulateFn != nil {
		return s.SimulateFn(ctx, role, orderID, action)
	}
	return &usecase.SimulationResult{Message: "Simulated PAID", Order: &model.Order{ID: orderID}}, nil
}

func (s StorefrontFacadeStub) AdvanceOrder(ctx context.Context, role model.Role, orderID uuid.UUID, status string) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, role, orderID, status)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatus(status)}, nil
}

// WorkerFacadeStub mimics worker interactions with the store facade.
type WorkerFacadeStub struct {
	SweepFn   func(context.Context, int) ([]model.Payment, error)
	ExpireFn  func(context.Context, model.Payment) error
	mu        sync.Mutex
	Batches   [][]model.Payment
	Expired   []model.Payment
	sweepCall int
}

// Lock acquires the stub mutex for assertions.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases the stub mutex.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

func (s *WorkerFacadeStub) SweepExpiredPayments(ctx context.Context, limit int) ([]model.Payment, error) {
	if s.SweepFn != nil {
		return s.SweepFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sweepCall >= len(s.Batches) {
		return nil, nil
	}
	batch := s.Batches[s.sweepCall]
	s.sweepCall++
	return batch, nil
}

func (s *WorkerFacadeStub) ExpireOrderPayment(ctx context.Context, payment model.Payment) error {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, payment)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Expired = append(s.Expired, payment)
	return nil
}
