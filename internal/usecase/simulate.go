package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/cache"
	"github.com/anandaputra/tokoku/internal/config"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// SimulateAction selects a sandbox payment manipulation.
type SimulateAction string

const (
	SimulatePaid    SimulateAction = "PAID"
	SimulateExpired SimulateAction = "EXPIRED"
	SimulateReset   SimulateAction = "RESET"
)

// SimulationResult reports what the simulation did.
type SimulationResult struct {
	Message string
	Order   *model.Order
	Payment *model.Payment
}

// SimulateUseCase mutates payment state without the processor, for manual
// testing against the sandbox. It is disabled outright in production.
type SimulateUseCase struct {
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	statuses  cache.Store
	publisher events.Publisher
	env       config.Environment
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewSimulateUseCase constructs SimulateUseCase.
func NewSimulateUseCase(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	statuses cache.Store,
	publisher events.Publisher,
	env config.Environment,
	ttl time.Duration,
	logger *slog.Logger,
) *SimulateUseCase {
	return &SimulateUseCase{
		orders:    orders,
		payments:  payments,
		statuses:  statuses,
		publisher: publisher,
		env:       env,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// Simulate applies the requested payment outcome to the order's latest
// payment. Only admins may call it, and only outside production.
func (u *SimulateUseCase) Simulate(ctx context.Context, role model.Role, orderID uuid.UUID, action SimulateAction) (*SimulationResult, error) {
	if u.env == config.EnvProduction {
		return nil, domainErrors.ErrSimulationDisabled
	}
	if !role.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payment, err := u.payments.GetLatest(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch action {
	case SimulatePaid:
		return u.simulatePaid(ctx, order, payment)
	case SimulateExpired:
		return u.simulateExpired(ctx, order, payment)
	case SimulateReset:
		return u.simulateReset(ctx, order, payment)
	default:
		return nil, fmt.Errorf("%w: unknown simulation action %q", domainErrors.ErrValidation, action)
	}
}

func (u *SimulateUseCase) simulatePaid(ctx context.Context, order *model.Order, payment *model.Payment) (*SimulationResult, error) {
	settled, err := u.payments.Settle(ctx, payment.ID, order.ID,
		model.PaymentStatusSuccess, model.PaymentStatePaid, model.OrderStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !settled {
		return &SimulationResult{Message: alreadySettledMessage(payment), Order: order, Payment: payment}, nil
	}
	if _, err := u.orders.RecordSale(ctx, order.ID); err != nil {
		u.logger.Error("record sale failed",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	u.publisher.Publish(ctx, events.EventPaymentSucceeded, order.ID.String(), events.PaymentEventPayload{
		OrderID:   order.ID.String(),
		PaymentID: payment.ID.String(),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		Status:    string(model.PaymentStatusSuccess),
	})
	u.statuses.InvalidatePaymentStatus(ctx, order.ID.String())

	payment.Status = model.PaymentStatusSuccess
	order.PaymentState = model.PaymentStatePaid
	order.Status = model.OrderStatusConfirmed
	return &SimulationResult{Message: "Simulated PAID", Order: order, Payment: payment}, nil
}

func (u *SimulateUseCase) simulateExpired(ctx context.Context, order *model.Order, payment *model.Payment) (*SimulationResult, error) {
	settled, err := u.payments.Settle(ctx, payment.ID, order.ID,
		model.PaymentStatusExpired, model.PaymentStateExpired, "")
	if err != nil {
		return nil, err
	}
	if !settled {
		return &SimulationResult{Message: alreadySettledMessage(payment), Order: order, Payment: payment}, nil
	}
	u.publisher.Publish(ctx, events.EventPaymentExpired, order.ID.String(), events.PaymentEventPayload{
		OrderID:   order.ID.String(),
		PaymentID: payment.ID.String(),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		Status:    string(model.PaymentStatusExpired),
	})
	u.statuses.InvalidatePaymentStatus(ctx, order.ID.String())

	payment.Status = model.PaymentStatusExpired
	order.PaymentState = model.PaymentStateExpired
	return &SimulationResult{Message: "Simulated EXPIRED", Order: order, Payment: payment}, nil
}

func (u *SimulateUseCase) simulateReset(ctx context.Context, order *model.Order, payment *model.Payment) (*SimulationResult, error) {
	expiredAt := u.now().Add(u.ttl)
	if err := u.payments.Reset(ctx, payment.ID, expiredAt); err != nil {
		return nil, err
	}
	if err := u.orders.SetPaymentState(ctx, order.ID, model.PaymentStateUnpaid, model.OrderStatusNew); err != nil {
		return nil, err
	}
	u.statuses.InvalidatePaymentStatus(ctx, order.ID.String())

	payment.Status = model.PaymentStatusPending
	payment.ExpiredAt = expiredAt
	order.PaymentState = model.PaymentStateUnpaid
	order.Status = model.OrderStatusNew
	return &SimulationResult{Message: "Simulated RESET", Order: order, Payment: payment}, nil
}

// alreadySettledMessage names the state that blocked the transition; the
// payment may be SUCCESS, FAILED or EXPIRED, not only SUCCESS.
func alreadySettledMessage(payment *model.Payment) string {
	return fmt.Sprintf("Payment already %s", payment.Status)
}
