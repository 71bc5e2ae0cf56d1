package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/domain/model"
	testhelpers "github.com/anandaputra/tokoku/internal/test"
)

func TestNewPaymentExpirerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	exp := NewPaymentExpirer(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, logger)
	if exp.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", exp.batchSize)
	}
	if exp.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", exp.workers)
	}
}

func TestPaymentExpirerExpiresBatch(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	payment := model.Payment{ID: uuid.New(), OrderID: uuid.New(), Status: model.PaymentStatusExpired}
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.Payment{{payment}}}
	exp := NewPaymentExpirer(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	exp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		processed := len(facade.Expired) > 0
		facade.Unlock()
		if processed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment expiry")
		case <-time.After(10 * time.Millisecond):
		}
	}

	exp.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Expired) != 1 || facade.Expired[0].ID != payment.ID {
		t.Fatalf("expected the batch payment to be expired, got %+v", facade.Expired)
	}
}

func TestPaymentExpirerStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	exp := NewPaymentExpirer(&testhelpers.WorkerFacadeStub{}, time.Hour, 1, 2, logger)

	exp.Start(context.Background())
	exp.Stop()
	exp.Stop()
}
