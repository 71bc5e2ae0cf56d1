package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/events"
)

const (
	testMerchantCode = "DM1234"
	testAPIKey       = "supersecret"
)

func signedCallback(payment *model.Payment, resultCode string) CallbackData {
	amount := strconv.FormatInt(payment.Amount, 10)
	return CallbackData{
		MerchantCode:    testMerchantCode,
		MerchantOrderID: payment.InvoiceID,
		Reference:       payment.Reference,
		Amount:          amount,
		ResultCode:      resultCode,
		Signature:       duitku.CallbackSignature(testMerchantCode, amount, payment.InvoiceID, testAPIKey),
	}
}

func pendingPayment() *model.Payment {
	return &model.Payment{
		ID:        uuid.New(),
		OrderID:   uuid.New(),
		Reference: "D002",
		InvoiceID: "ORD-20260831-0007-1756000000000",
		Amount:    60000,
		Status:    model.PaymentStatusPending,
	}
}

func TestHandleCallbackRejectsBadSignature(t *testing.T) {
	uc := NewCallbackUseCase(stubOrderRepository{}, stubPaymentRepository{}, newRecordingCache(), &recordingPublisher{}, testMerchantCode, testAPIKey, testLogger)

	data := signedCallback(pendingPayment(), "00")
	data.Signature = "deadbeef"

	if _, err := uc.HandleCallback(context.Background(), data); !errors.Is(err, domainErrors.ErrInvalidSignature) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestHandleCallbackUnknownReference(t *testing.T) {
	payments := stubPaymentRepository{findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
		return nil, domainErrors.ErrNotFound
	}}
	uc := NewCallbackUseCase(stubOrderRepository{}, payments, newRecordingCache(), &recordingPublisher{}, testMerchantCode, testAPIKey, testLogger)

	if _, err := uc.HandleCallback(context.Background(), signedCallback(pendingPayment(), "00")); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHandleCallbackSuccessSettlesOnce(t *testing.T) {
	payment := pendingPayment()

	settleCalls := 0
	saleCalls := 0
	var stateSet model.PaymentState
	var statusSet model.OrderStatus

	payments := stubPaymentRepository{
		findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
			return payment, nil
		},
		settleFn: func(_ context.Context, _, _ uuid.UUID, status model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (bool, error) {
			settleCalls++
			if status != model.PaymentStatusSuccess {
				t.Fatalf("expected SUCCESS settle, got %s", status)
			}
			stateSet, statusSet = state, orderStatus
			return settleCalls == 1, nil
		},
	}
	orders := stubOrderRepository{
		recordSaleFn: func(context.Context, uuid.UUID) (bool, error) {
			saleCalls++
			return saleCalls == 1, nil
		},
	}
	publisher := &recordingPublisher{}
	statuses := newRecordingCache()
	uc := NewCallbackUseCase(orders, payments, statuses, publisher, testMerchantCode, testAPIKey, testLogger)

	outcome, err := uc.HandleCallback(context.Background(), signedCallback(payment, "00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeProcessed {
		t.Fatalf("expected processed, got %s", outcome)
	}
	if stateSet != model.PaymentStatePaid || statusSet != model.OrderStatusConfirmed {
		t.Fatalf("expected order PAID/CONFIRMED, got %s/%s", stateSet, statusSet)
	}
	if saleCalls != 1 {
		t.Fatalf("expected one record-sale attempt, got %d", saleCalls)
	}
	if len(publisher.events) != 1 || publisher.events[0].eventType != events.EventPaymentSucceeded {
		t.Fatalf("expected one PaymentSucceeded event, got %+v", publisher.events)
	}
	if len(statuses.invalidated) != 1 {
		t.Fatalf("expected one cache invalidation, got %d", len(statuses.invalidated))
	}

	// A processor retry of the same notification must change nothing more.
	outcome, err = uc.HandleCallback(context.Background(), signedCallback(payment, "00"))
	if err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	if outcome != OutcomeAlreadyProcessed {
		t.Fatalf("expected already processed on retry, got %s", outcome)
	}
	if saleCalls != 1 || len(publisher.events) != 1 {
		t.Fatalf("retry must not repeat side effects: sales=%d events=%d", saleCalls, len(publisher.events))
	}
}

func TestHandleCallbackRetryCompletesAfterSettleFailure(t *testing.T) {
	payment := pendingPayment()

	// The payment and order writes commit together, so a failure leaves the
	// payment PENDING and the retry must settle both instead of reporting
	// already-processed against a half-settled order.
	settleCalls := 0
	var stateSet model.PaymentState
	var statusSet model.OrderStatus
	payments := stubPaymentRepository{
		findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
			return payment, nil
		},
		settleFn: func(_ context.Context, _, _ uuid.UUID, _ model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (bool, error) {
			settleCalls++
			if settleCalls == 1 {
				return false, errors.New("connection reset")
			}
			stateSet, statusSet = state, orderStatus
			return true, nil
		},
	}
	orders := stubOrderRepository{
		recordSaleFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
	}
	uc := NewCallbackUseCase(orders, payments, newRecordingCache(), &recordingPublisher{}, testMerchantCode, testAPIKey, testLogger)

	if _, err := uc.HandleCallback(context.Background(), signedCallback(payment, "00")); err == nil {
		t.Fatal("expected error from failed settle")
	}

	outcome, err := uc.HandleCallback(context.Background(), signedCallback(payment, "00"))
	if err != nil {
		t.Fatalf("unexpected retry error: %v", err)
	}
	if outcome != OutcomeProcessed {
		t.Fatalf("expected retry to settle, got %s", outcome)
	}
	if stateSet != model.PaymentStatePaid || statusSet != model.OrderStatusConfirmed {
		t.Fatalf("expected order PAID/CONFIRMED on retry, got %s/%s", stateSet, statusSet)
	}
}

func TestHandleCallbackAlreadySuccessShortCircuits(t *testing.T) {
	payment := pendingPayment()
	payment.Status = model.PaymentStatusSuccess

	payments := stubPaymentRepository{
		findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
			return payment, nil
		},
		settleFn: func(context.Context, uuid.UUID, uuid.UUID, model.PaymentStatus, model.PaymentState, model.OrderStatus) (bool, error) {
			t.Fatal("settled payment must not be re-settled")
			return false, nil
		},
	}
	uc := NewCallbackUseCase(stubOrderRepository{}, payments, newRecordingCache(), &recordingPublisher{}, testMerchantCode, testAPIKey, testLogger)

	outcome, err := uc.HandleCallback(context.Background(), signedCallback(payment, "00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeAlreadyProcessed {
		t.Fatalf("expected already processed, got %s", outcome)
	}
}

func TestHandleCallbackFailureResult(t *testing.T) {
	payment := pendingPayment()

	var stateSet model.PaymentState
	payments := stubPaymentRepository{
		findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
			return payment, nil
		},
		settleFn: func(_ context.Context, _, _ uuid.UUID, status model.PaymentStatus, state model.PaymentState, orderStatus model.OrderStatus) (bool, error) {
			if status != model.PaymentStatusFailed {
				t.Fatalf("expected FAILED settle, got %s", status)
			}
			if orderStatus != "" {
				t.Fatalf("failure must not touch fulfillment status, got %s", orderStatus)
			}
			stateSet = state
			return true, nil
		},
	}
	publisher := &recordingPublisher{}
	uc := NewCallbackUseCase(stubOrderRepository{}, payments, newRecordingCache(), publisher, testMerchantCode, testAPIKey, testLogger)

	outcome, err := uc.HandleCallback(context.Background(), signedCallback(payment, "02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", outcome)
	}
	if stateSet != model.PaymentStateFailed {
		t.Fatalf("expected order payment state FAILED, got %s", stateSet)
	}
	if len(publisher.events) != 1 || publisher.events[0].eventType != events.EventPaymentFailed {
		t.Fatalf("expected one PaymentFailed event, got %+v", publisher.events)
	}
}

func TestHandleCallbackUnknownResultCodeLeavesPending(t *testing.T) {
	payment := pendingPayment()

	payments := stubPaymentRepository{
		findByExternalRefFn: func(context.Context, string, string) (*model.Payment, error) {
			return payment, nil
		},
		settleFn: func(context.Context, uuid.UUID, uuid.UUID, model.PaymentStatus, model.PaymentState, model.OrderStatus) (bool, error) {
			t.Fatal("unrecognized result codes must not change the payment")
			return false, nil
		},
	}
	uc := NewCallbackUseCase(stubOrderRepository{}, payments, newRecordingCache(), &recordingPublisher{}, testMerchantCode, testAPIKey, testLogger)

	outcome, err := uc.HandleCallback(context.Background(), signedCallback(payment, "01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomePending {
		t.Fatalf("expected pending outcome, got %s", outcome)
	}
}
