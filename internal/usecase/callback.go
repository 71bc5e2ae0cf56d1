package usecase

import (
	"context"
	"log/slog"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	"github.com/anandaputra/tokoku/internal/cache"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// Processor result codes carried in the callback body.
const (
	resultCodeSuccess = "00"
	resultCodeFailed  = "02"
)

// CallbackOutcome tells the transport layer how a callback was settled.
type CallbackOutcome string

const (
	OutcomeProcessed        CallbackOutcome = "processed"
	OutcomeAlreadyProcessed CallbackOutcome = "already_processed"
	OutcomePending          CallbackOutcome = "pending"
	OutcomeFailed           CallbackOutcome = "failed"
)

// CallbackData is the parsed processor notification.
type CallbackData struct {
	MerchantCode    string
	MerchantOrderID string
	Reference       string
	Amount          string
	Signature       string
	ResultCode      string
}

// CallbackUseCase reconciles processor notifications with the ledger. The
// processor retries callbacks, so every path here must be idempotent.
type CallbackUseCase struct {
	orders       repository.OrderRepository
	payments     repository.PaymentRepository
	statuses     cache.Store
	publisher    events.Publisher
	merchantCode string
	apiKey       string
	logger       *slog.Logger
}

// NewCallbackUseCase constructs CallbackUseCase.
func NewCallbackUseCase(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	statuses cache.Store,
	publisher events.Publisher,
	merchantCode, apiKey string,
	logger *slog.Logger,
) *CallbackUseCase {
	return &CallbackUseCase{
		orders:       orders,
		payments:     payments,
		statuses:     statuses,
		publisher:    publisher,
		merchantCode: merchantCode,
		apiKey:       apiKey,
		logger:       logger,
	}
}

// HandleCallback verifies the notification signature, locates the payment by
// external reference and applies the result exactly once.
func (u *CallbackUseCase) HandleCallback(ctx context.Context, data CallbackData) (CallbackOutcome, error) {
	if !duitku.VerifyCallback(u.merchantCode, data.Amount, data.MerchantOrderID, u.apiKey, data.Signature) {
		return "", domainErrors.ErrInvalidSignature
	}

	payment, err := u.payments.FindByExternalRef(ctx, data.Reference, data.MerchantOrderID)
	if err != nil {
		return "", err
	}

	if payment.Status == model.PaymentStatusSuccess {
		return OutcomeAlreadyProcessed, nil
	}

	switch data.ResultCode {
	case resultCodeSuccess:
		return u.applySuccess(ctx, payment)
	case resultCodeFailed:
		return u.applyFailure(ctx, payment)
	default:
		u.logger.Info("callback left payment pending",
			slog.String("reference", data.Reference),
			slog.String("result_code", data.ResultCode),
		)
		return OutcomePending, nil
	}
}

func (u *CallbackUseCase) applySuccess(ctx context.Context, payment *model.Payment) (CallbackOutcome, error) {
	// Payment and order flip in one transaction: a failure here leaves the
	// payment PENDING, so the processor retry settles both rather than
	// hitting the SUCCESS guard against a stranded order.
	settled, err := u.payments.Settle(ctx, payment.ID, payment.OrderID,
		model.PaymentStatusSuccess, model.PaymentStatePaid, model.OrderStatusConfirmed)
	if err != nil {
		return "", err
	}
	if !settled {
		// A concurrent retry already settled this payment.
		return OutcomeAlreadyProcessed, nil
	}

	// Sold counters are flag-guarded, so even if this fails and the
	// processor retries, the retry hits the SUCCESS guard above and the
	// counters are never double-applied.
	if _, err := u.orders.RecordSale(ctx, payment.OrderID); err != nil {
		u.logger.Error("record sale failed",
			slog.String("order_id", payment.OrderID.String()),
			slog.String("error", err.Error()),
		)
	}

	u.publisher.Publish(ctx, events.EventPaymentSucceeded, payment.OrderID.String(), events.PaymentEventPayload{
		OrderID:   payment.OrderID.String(),
		PaymentID: payment.ID.String(),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		Status:    string(model.PaymentStatusSuccess),
	})
	u.statuses.InvalidatePaymentStatus(ctx, payment.OrderID.String())

	return OutcomeProcessed, nil
}

func (u *CallbackUseCase) applyFailure(ctx context.Context, payment *model.Payment) (CallbackOutcome, error) {
	settled, err := u.payments.Settle(ctx, payment.ID, payment.OrderID,
		model.PaymentStatusFailed, model.PaymentStateFailed, "")
	if err != nil {
		return "", err
	}
	if !settled {
		return OutcomeAlreadyProcessed, nil
	}

	u.publisher.Publish(ctx, events.EventPaymentFailed, payment.OrderID.String(), events.PaymentEventPayload{
		OrderID:   payment.OrderID.String(),
		PaymentID: payment.ID.String(),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		Status:    string(model.PaymentStatusFailed),
	})
	u.statuses.InvalidatePaymentStatus(ctx, payment.OrderID.String())

	return OutcomeFailed, nil
}
