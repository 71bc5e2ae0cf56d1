package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/anandaputra/tokoku/internal/server/http/handlers"
	"github.com/anandaputra/tokoku/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	callbackHandler := handlers.NewCallbackHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	api.POST("/payments/callback", callbackHandler.Handle)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/cart", cartHandler.Get)
	authed.PUT("/cart", cartHandler.Put)
	authed.POST("/orders", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/invoice", paymentHandler.CreateInvoice)
	authed.GET("/orders/:id/payment", paymentHandler.Status)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.POST("/simulate", adminHandler.Simulate)
	admin.PATCH("/orders/:id/status", adminHandler.AdvanceOrder)

	return engine
}
