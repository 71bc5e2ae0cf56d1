package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// AdminUseCase advances order fulfillment on behalf of store staff.
type AdminUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		orders:    orders,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// Advance moves an order to the requested fulfillment status. The label is
// accepted in the legacy vocabulary too and normalized before the transition
// check.
func (u *AdminUseCase) Advance(ctx context.Context, role model.Role, orderID uuid.UUID, statusLabel string) (*model.Order, error) {
	if !role.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}

	next, ok := model.CanonicalOrderStatus(statusLabel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, statusLabel)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransitionOrder(order.Status, next, order.Shipping) {
		return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, order.Status, next)
	}

	if err := u.orders.SetStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next

	switch next {
	case model.OrderStatusCompleted:
		if err := u.products.DecrementStock(ctx, order.Items); err != nil {
			u.logger.Error("stock decrement failed",
				slog.String("order", order.OrderCode),
				slog.String("error", err.Error()),
			)
		}
		u.publisher.Publish(ctx, events.EventOrderCompleted, order.ID.String(), events.OrderStatusPayload{
			OrderID: order.ID.String(),
			Status:  string(next),
		})
	case model.OrderStatusCanceled:
		u.publisher.Publish(ctx, events.EventOrderCanceled, order.ID.String(), events.OrderStatusPayload{
			OrderID: order.ID.String(),
			Status:  string(next),
		})
	}

	return order, nil
}
