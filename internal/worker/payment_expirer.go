package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/anandaputra/tokoku/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	SweepExpiredPayments(ctx context.Context, limit int) ([]model.Payment, error)
	ExpireOrderPayment(ctx context.Context, payment model.Payment) error
}

// PaymentExpirer periodically expires overdue pending invoices and updates
// their orders concurrently.
type PaymentExpirer struct {
	facade       StoreFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Payment
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentExpirer constructs the expirer worker pool.
func NewPaymentExpirer(facade StoreFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentExpirer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentExpirer{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Payment, batchSize*workers),
	}
}

// Start launches background processing.
func (p *PaymentExpirer) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentExpirer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PaymentExpirer) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentExpirer) fetchAndDispatch(ctx context.Context) {
	payments, err := p.facade.SweepExpiredPayments(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("sweep expired payments failed", slog.String("error", err.Error()))
		return
	}
	for _, payment := range payments {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- payment:
		}
	}
}

func (p *PaymentExpirer) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case payment, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.facade.ExpireOrderPayment(ctx, payment); err != nil {
				p.logger.Error("expire order payment failed",
					slog.String("payment_id", payment.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
