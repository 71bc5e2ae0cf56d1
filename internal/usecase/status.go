package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/cache"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// PaymentView is the customer-facing payment status snapshot.
type PaymentView struct {
	Order   *model.Order
	Payment *model.Payment
}

// StatusUseCase answers payment status polls. Polling also sweeps overdue
// invoices for the polled order so the customer never sees a stale PENDING.
type StatusUseCase struct {
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	statuses  cache.Store
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	statuses cache.Store,
	publisher events.Publisher,
	logger *slog.Logger,
) *StatusUseCase {
	return &StatusUseCase{
		orders:    orders,
		payments:  payments,
		statuses:  statuses,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PaymentStatus returns the order and its newest payment. Overdue pending
// payments are expired inline before reading. Views are cached briefly so
// interval polling does not hammer the ledger; settle paths invalidate the
// entry, so a hit is never staler than the cache TTL.
func (u *StatusUseCase) PaymentStatus(ctx context.Context, orderID, customerID uuid.UUID) (*PaymentView, error) {
	if raw, ok := u.statuses.GetPaymentStatus(ctx, orderID.String()); ok {
		var view PaymentView
		// The entry is keyed by order alone, so the owner check from
		// GetOwned has to be re-applied to the cached snapshot.
		if err := json.Unmarshal(raw, &view); err == nil && view.Order != nil && view.Order.CustomerID == customerID {
			return &view, nil
		}
	}

	order, err := u.orders.GetOwned(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	expired, err := u.payments.ExpireOverdue(ctx, orderID, u.now())
	if err != nil {
		return nil, err
	}
	if expired > 0 && order.PaymentState == model.PaymentStateUnpaid {
		if err := u.orders.SetPaymentState(ctx, orderID, model.PaymentStateExpired, ""); err != nil {
			return nil, err
		}
		order.PaymentState = model.PaymentStateExpired
		u.publisher.Publish(ctx, events.EventPaymentExpired, orderID.String(), events.PaymentEventPayload{
			OrderID: orderID.String(),
			Status:  string(model.PaymentStatusExpired),
		})
		u.statuses.InvalidatePaymentStatus(ctx, orderID.String())
	}

	view := &PaymentView{Order: order}
	payment, err := u.payments.GetLatest(ctx, orderID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		view.Payment = payment
	}

	if raw, err := json.Marshal(view); err == nil {
		u.statuses.PutPaymentStatus(ctx, orderID.String(), raw)
	}
	return view, nil
}

// SweepExpired flips a batch of overdue pending payments to EXPIRED and
// propagates the expiry to their orders. It is the background counterpart of
// the inline sweep in PaymentStatus.
func (u *StatusUseCase) SweepExpired(ctx context.Context, limit int) ([]model.Payment, error) {
	return u.payments.SelectOverdueBatch(ctx, u.now(), limit)
}

// ExpireOrderPayment marks the order's payment state EXPIRED when it is
// still UNPAID. Orders settled between batch selection and this call are
// left untouched.
func (u *StatusUseCase) ExpireOrderPayment(ctx context.Context, payment model.Payment) error {
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if order.PaymentState != model.PaymentStateUnpaid {
		return nil
	}

	if err := u.orders.SetPaymentState(ctx, payment.OrderID, model.PaymentStateExpired, ""); err != nil {
		return err
	}
	u.publisher.Publish(ctx, events.EventPaymentExpired, payment.OrderID.String(), events.PaymentEventPayload{
		OrderID:   payment.OrderID.String(),
		PaymentID: payment.ID.String(),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		Status:    string(model.PaymentStatusExpired),
	})
	u.statuses.InvalidatePaymentStatus(ctx, payment.OrderID.String())
	return nil
}
