package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/anandaputra/tokoku/internal/cache"
	domainErrors "github.com/anandaputra/tokoku/internal/domain/errors"
	"github.com/anandaputra/tokoku/internal/domain/model"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// CartItem is one line of the session cart handed to checkout. Price and
// name are resolved server-side; the client only chooses product and qty.
type CartItem struct {
	ProductID uuid.UUID
	Qty       int
	Notes     string
}

// CheckoutInput is the explicit session-scoped value object driving checkout.
type CheckoutInput struct {
	StoreID  uuid.UUID
	Items    []CartItem
	Shipping model.ShippingMethod
	Payment  model.PaymentMethod
	Address  *model.Address
	Notes    string
}

// CheckoutResult carries the created order and, for online payment, the
// invoice issued for it. Invoice is nil when issuing failed; the order still
// exists and the caller retries invoice creation only.
type CheckoutResult struct {
	Order      *model.Order
	Invoice    *IssuedInvoice
	InvoiceErr error
}

// CheckoutUseCase is the customer-facing order orchestrator.
type CheckoutUseCase struct {
	stores      repository.StoreRepository
	products    repository.ProductRepository
	orders      repository.OrderRepository
	invoices    *InvoiceUseCase
	carts       cache.Store
	publisher   events.Publisher
	fallbackFee int64
	logger      *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	stores repository.StoreRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	invoices *InvoiceUseCase,
	carts cache.Store,
	publisher events.Publisher,
	fallbackFee int64,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		stores:      stores,
		products:    products,
		orders:      orders,
		invoices:    invoices,
		carts:       carts,
		publisher:   publisher,
		fallbackFee: fallbackFee,
		logger:      logger,
	}
}

// Checkout validates the cart, snapshots prices, persists the order and, for
// QRIS, issues the payment invoice. Order creation and invoice creation are
// deliberately not atomic: an invoice failure leaves the order NEW/UNPAID.
func (u *CheckoutUseCase) Checkout(ctx context.Context, customerID uuid.UUID, in CheckoutInput) (*CheckoutResult, error) {
	if err := ValidateCart(in.Items); err != nil {
		return nil, err
	}
	if !validShippingMethod(in.Shipping) {
		return nil, fmt.Errorf("%w: unknown shipping method %q", domainErrors.ErrValidation, in.Shipping)
	}
	if !validPaymentMethod(in.Payment) {
		return nil, fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrValidation, in.Payment)
	}
	if in.Shipping == model.ShippingCourier {
		if err := ValidateShippingAddress(in.Address); err != nil {
			return nil, err
		}
	} else {
		in.Address = nil
	}

	store, err := u.stores.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, domainErrors.ErrNotFound
	}

	items, subtotal, err := u.snapshotItems(ctx, store.ID, in.Items)
	if err != nil {
		return nil, err
	}

	var shippingFee int64
	if in.Shipping == model.ShippingCourier {
		shippingFee = store.ShippingFeeFlat
		if shippingFee <= 0 {
			shippingFee = u.fallbackFee
		}
	}

	order, err := u.orders.Create(ctx, repository.NewOrder{
		StoreID:       store.ID,
		CustomerID:    customerID,
		Items:         items,
		Subtotal:      subtotal,
		ShippingFee:   shippingFee,
		Total:         subtotal + shippingFee,
		Shipping:      in.Shipping,
		PaymentMethod: in.Payment,
		Address:       in.Address,
		Notes:         in.Notes,
	})
	if err != nil {
		return nil, err
	}

	u.publisher.Publish(ctx, events.EventOrderCreated, order.ID.String(), events.OrderCreatedPayload{
		OrderID:       order.ID.String(),
		OrderCode:     order.OrderCode,
		StoreID:       order.StoreID.String(),
		CustomerID:    customerID.String(),
		Total:         order.Total,
		PaymentMethod: string(order.PaymentMethod),
	})

	result := &CheckoutResult{Order: order}

	if in.Payment == model.PaymentMethodQRIS {
		invoice, err := u.invoices.CreateInvoice(ctx, order.ID, customerID)
		if err != nil {
			u.logger.Error("invoice creation after checkout failed",
				slog.String("order", order.OrderCode),
				slog.String("error", err.Error()),
			)
			result.InvoiceErr = err
			return result, nil
		}
		result.Invoice = invoice
	}

	// The stored cart is only dropped once the order (and invoice, for
	// online payment) exists.
	if err := u.carts.ClearCart(ctx, customerID.String()); err != nil {
		u.logger.Warn("clear cart failed",
			slog.String("customer", customerID.String()),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}

func (u *CheckoutUseCase) snapshotItems(ctx context.Context, storeID uuid.UUID, cart []CartItem) ([]model.OrderItem, int64, error) {
	ids := make([]uuid.UUID, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.ProductID)
	}

	catalog, err := u.products.GetForStore(ctx, storeID, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.OrderItem, 0, len(cart))
	var subtotal int64
	for _, line := range cart {
		product, ok := catalog[line.ProductID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: product %s is not available", domainErrors.ErrValidation, line.ProductID)
		}
		lineSubtotal := product.Price * int64(line.Qty)
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       line.Qty,
			Notes:     line.Notes,
			Subtotal:  lineSubtotal,
		})
		subtotal += lineSubtotal
	}
	return items, subtotal, nil
}

// ListOrders returns the customer's orders, newest first.
func (u *CheckoutUseCase) ListOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// GetOrder returns one order owned by the customer.
func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID, customerID uuid.UUID) (*model.Order, error) {
	return u.orders.GetOwned(ctx, orderID, customerID)
}
