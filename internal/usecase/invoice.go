package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	"github.com/anandaputra/tokoku/internal/cache"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
)

const (
	providerDuitku = "DUITKU"

	// Used when the customer's login is not an email address.
	fallbackCustomerEmail = "customer@example.com"
)

// IssuedInvoice is the result of an invoice request. Reused is true when an
// unexpired pending payment already covered the order.
type IssuedInvoice struct {
	Payment *model.Payment
	Reused  bool
}

// InvoiceUseCase is the invoice issuer for online payments.
type InvoiceUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
	client   duitku.Client
	statuses cache.Store
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	users repository.UserRepository,
	client duitku.Client,
	statuses cache.Store,
	ttl time.Duration,
	logger *slog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		orders:   orders,
		payments: payments,
		users:    users,
		client:   client,
		statuses: statuses,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateInvoice returns the active pending payment for the order or creates
// a new invoice with the processor. At most one pending payment can exist
// per order; the database constraint settles concurrent attempts.
func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, orderID, customerID uuid.UUID) (*IssuedInvoice, error) {
	order, err := u.orders.GetOwned(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	now := u.now()

	if _, err := u.payments.ExpireOverdue(ctx, orderID, now); err != nil {
		return nil, err
	}

	active, err := u.payments.GetActive(ctx, orderID, now)
	if err == nil {
		return &IssuedInvoice{Payment: active, Reused: true}, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	// Unique per attempt so the processor never sees a replayed order id.
	merchantOrderID := fmt.Sprintf("%s-%d", order.OrderCode, now.UnixMilli())

	invoice, err := u.client.CreateInvoice(ctx, duitku.InvoiceRequest{
		MerchantOrderID: merchantOrderID,
		Amount:          order.Total,
		ProductDetails:  "Pembayaran " + order.OrderCode,
		CustomerEmail:   u.customerEmail(ctx, customerID),
		ExpiryMinutes:   int(u.ttl.Minutes()),
	})
	if err != nil {
		var inquiryErr duitku.InquiryError
		if errors.As(err, &inquiryErr) {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrExternalService, inquiryErr.StatusMessage)
		}
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrExternalService, err)
	}

	payment, created, err := u.payments.Create(ctx, repository.NewPayment{
		OrderID:   order.ID,
		StoreID:   order.StoreID,
		Provider:  providerDuitku,
		Reference: invoice.Reference,
		InvoiceID: merchantOrderID,
		QRString:  invoice.QRString,
		QRISURL:   invoice.PaymentURL,
		Amount:    order.Total,
		ExpiredAt: now.Add(u.ttl),
	})
	if err != nil {
		return nil, err
	}
	if !created {
		// A concurrent request won the pending slot. The invoice just
		// created externally is orphaned; it expires on its own.
		u.logger.Warn("concurrent invoice creation, reusing winner",
			slog.String("order", order.OrderCode),
			slog.String("orphaned_reference", invoice.Reference),
		)
	}

	u.statuses.InvalidatePaymentStatus(ctx, order.ID.String())

	return &IssuedInvoice{Payment: payment, Reused: !created}, nil
}

func (u *InvoiceUseCase) customerEmail(ctx context.Context, customerID uuid.UUID) string {
	user, err := u.users.GetByID(ctx, customerID)
	if err != nil || !strings.Contains(user.Login, "@") {
		return fallbackCustomerEmail
	}
	return user.Login
}
