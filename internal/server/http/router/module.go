package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/anandaputra/tokoku/internal/app"
	"github.com/anandaputra/tokoku/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(facade *app.StoreFacade, logger *slog.Logger) *gin.Engine {
		var storefront handlers.StorefrontFacade = facade
		return Setup(storefront, logger)
	},
)
