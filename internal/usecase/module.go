package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/anandaputra/tokoku/internal/adapter/duitku"
	"github.com/anandaputra/tokoku/internal/cache"
	"github.com/anandaputra/tokoku/internal/config"
	"github.com/anandaputra/tokoku/internal/domain/repository"
	"github.com/anandaputra/tokoku/internal/events"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCartUseCase,
	NewAdminUseCase,
	func(
		orders repository.OrderRepository,
		payments repository.PaymentRepository,
		users repository.UserRepository,
		client duitku.Client,
		statuses cache.Store,
		cfg *config.Config,
		logger *slog.Logger,
	) *InvoiceUseCase {
		return NewInvoiceUseCase(orders, payments, users, client, statuses, cfg.InvoiceTTL, logger)
	},
	func(
		stores repository.StoreRepository,
		products repository.ProductRepository,
		orders repository.OrderRepository,
		invoices *InvoiceUseCase,
		carts cache.Store,
		publisher events.Publisher,
		cfg *config.Config,
		logger *slog.Logger,
	) *CheckoutUseCase {
		return NewCheckoutUseCase(stores, products, orders, invoices, carts, publisher, cfg.ShippingFeeFlat, logger)
	},
	func(
		orders repository.OrderRepository,
		payments repository.PaymentRepository,
		statuses cache.Store,
		publisher events.Publisher,
		cfg *config.Config,
		logger *slog.Logger,
	) *CallbackUseCase {
		return NewCallbackUseCase(orders, payments, statuses, publisher, cfg.MerchantCode, cfg.DuitkuAPIKey, logger)
	},
	NewStatusUseCase,
	func(
		orders repository.OrderRepository,
		payments repository.PaymentRepository,
		statuses cache.Store,
		publisher events.Publisher,
		cfg *config.Config,
		logger *slog.Logger,
	) *SimulateUseCase {
		return NewSimulateUseCase(orders, payments, statuses, publisher, cfg.Environment, cfg.InvoiceTTL, logger)
	},
)
