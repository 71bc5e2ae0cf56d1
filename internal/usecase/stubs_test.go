package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
)

type stubOrderRepository struct {
	createFn          func(context.Context, repository.NewOrder) (*model.Order, error)
	getByIDFn         func(context.Context, uuid.UUID) (*model.Order, error)
	getOwnedFn        func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	listByCustomerFn  func(context.Context, uuid.UUID) ([]model.Order, error)
	setPaymentStateFn func(context.Context, uuid.UUID, model.PaymentState, model.OrderStatus) error
	setStatusFn       func(context.Context, uuid.UUID, model.OrderStatus) error
	recordSaleFn      func(context.Context, uuid.UUID) (bool, error)
}

func (s stubOrderRepository) Create(ctx context.Context, o repository.NewOrder) (*model.Order, error) {
	return s.createFn(ctx, o)
}

func (s stubOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.getByIDFn(ctx, id)
}

func (s stubOrderRepository) GetOwned(ctx context.Context, id, customerID uuid.UUID) (*model.Order, error) {
	return s.getOwnedFn(ctx, id, customerID)
}

func (s stubOrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	return s.listByCustomerFn(ctx, customerID)
}

func (s stubOrderRepository) SetPaymentState(ctx context.Context, id uuid.UUID, state model.PaymentState, status model.OrderStatus) error {
	return s.setPaymentStateFn(ctx, id, state, status)
}

func (s stubOrderRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	return s.setStatusFn(ctx, id, status)
}

func (s stubOrderRepository) RecordSale(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.recordSaleFn(ctx, id)
}

type stubPaymentRepository struct {
	createFn             func(context.Context, repository.NewPayment) (*model.Payment, bool, error)
	getActiveFn          func(context.Context, uuid.UUID, time.Time) (*model.Payment, error)
	getLatestFn          func(context.Context, uuid.UUID) (*model.Payment, error)
	findByExternalRefFn  func(context.Context, string, string) (*model.Payment, error)
	settleFn             func(context.Context, uuid.UUID, uuid.UUID, model.PaymentStatus, model.PaymentState, model.OrderStatus) (bool, error)
	resetFn              func(context.Context, uuid.UUID, time.Time) error
	expireOverdueFn      func(context.Context, uuid.UUID, time.Time) (int64, error)
	selectOverdueBatchFn func(context.Context, time.Time, int) ([]model.Payment, error)
}

func (s stubPaymentRepository) Create(ctx context.Context, p repository.NewPayment) (*model.Payment, bool, error) {
	return s.createFn(ctx, p)
}

func (s stubPaymentRepository) GetActive(ctx context.Context, orderID uuid.UUID, now time.Time) (*model.Payment, error) {
	return s.getActiveFn(ctx, orderID, now)
}

func (s stubPaymentRepository) GetLatest(ctx context.Context, orderID uuid.UUID) (*model.Payment, error) {
	return s.getLatestFn(ctx, orderID)
}

func (s stubPaymentRepository) FindByExternalRef(ctx context.Context, reference, invoiceID string) (*model.Payment, error) {
	return s.findByExternalRefFn(ctx, reference, invoiceID)
}

func (s stubPaymentRepository) Settle(ctx context.Context, paymentID, orderID uuid.UUID, status model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (bool, error) {
	return s.settleFn(ctx, paymentID, orderID, status, state, orderStatus)
}

func (s stubPaymentRepository) Reset(ctx context.Context, id uuid.UUID, expiredAt time.Time) error {
	return s.resetFn(ctx, id, expiredAt)
}

func (s stubPaymentRepository) ExpireOverdue(ctx context.Context, orderID uuid.UUID, now time.Time) (int64, error) {
	return s.expireOverdueFn(ctx, orderID, now)
}

func (s stubPaymentRepository) SelectOverdueBatch(ctx context.Context, now time.Time, limit int) ([]model.Payment, error) {
	return s.selectOverdueBatchFn(ctx, now, limit)
}

type stubProductRepository struct {
	getForStoreFn    func(context.Context, uuid.UUID, []uuid.UUID) (map[uuid.UUID]model.Product, error)
	decrementStockFn func(context.Context, []model.OrderItem) error
}

func (s stubProductRepository) GetForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]model.Product, error) {
	return s.getForStoreFn(ctx, storeID, ids)
}

func (s stubProductRepository) DecrementStock(ctx context.Context, items []model.OrderItem) error {
	return s.decrementStockFn(ctx, items)
}

type stubStoreRepository struct {
	getByIDFn func(context.Context, uuid.UUID) (*model.Store, error)
}

func (s stubStoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	return s.getByIDFn(ctx, id)
}

type stubUserRepository struct {
	createFn     func(context.Context, string, string, model.Role) (*model.User, error)
	getByLoginFn func(context.Context, string) (*model.User, error)
	getByIDFn    func(context.Context, uuid.UUID) (*model.User, error)
}

func (s stubUserRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	return s.createFn(ctx, login, passwordHash, role)
}

func (s stubUserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return s.getByLoginFn(ctx, login)
}

func (s stubUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.getByIDFn(ctx, id)
}

type stubDuitkuClient struct {
	createInvoiceFn func(context.Context, duitku.InvoiceRequest) (*duitku.Invoice, error)
}

func (s stubDuitkuClient) CreateInvoice(ctx context.Context, req duitku.InvoiceRequest) (*duitku.Invoice, error) {
	return s.createInvoiceFn(ctx, req)
}

type publishedEvent struct {
	eventType string
	orderID   string
	payload   any
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, eventType, orderID string, payload any) {
	p.events = append(p.events, publishedEvent{eventType: eventType, orderID: orderID, payload: payload})
}

func (p *recordingPublisher) Close() error { return nil }

type recordingCache struct {
	carts        map[string][]byte
	statuses     map[string][]byte
	putStatuses  []string
	invalidated  []string
	clearedCarts []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{
		carts:    make(map[string][]byte),
		statuses: make(map[string][]byte),
	}
}

func (c *recordingCache) GetCart(_ context.Context, userID string) ([]byte, error) {
	raw, ok := c.carts[userID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return raw, nil
}

func (c *recordingCache) PutCart(_ context.Context, userID string, cart []byte) error {
	c.carts[userID] = cart
	return nil
}

func (c *recordingCache) ClearCart(_ context.Context, userID string) error {
	delete(c.carts, userID)
	c.clearedCarts = append(c.clearedCarts, userID)
	return nil
}

func (c *recordingCache) GetPaymentStatus(_ context.Context, orderID string) ([]byte, bool) {
	raw, ok := c.statuses[orderID]
	return raw, ok
}

func (c *recordingCache) PutPaymentStatus(_ context.Context, orderID string, data []byte) {
	c.statuses[orderID] = data
	c.putStatuses = append(c.putStatuses, orderID)
}

func (c *recordingCache) InvalidatePaymentStatus(_ context.Context, orderID string) {
	delete(c.statuses, orderID)
	c.invalidated = append(c.invalidated, orderID)
}

func (c *recordingCache) Close() error { return nil }
