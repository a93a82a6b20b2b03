package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ekeukwu/market/internal/server/http/handlers"
	"github.com/ekeukwu/market/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	shopHandler := handlers.NewShopHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	engine.POST("/register", authHandler.Register)
	engine.POST("/token", authHandler.Token)
	engine.GET("/shops", shopHandler.List)
	engine.GET("/shops/:id", shopHandler.Get)

	authed := engine.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.GET("/users/me", authHandler.Me)
	authed.GET("/users", userHandler.List)
	authed.POST("/users", userHandler.Create)
	authed.GET("/users/:id", userHandler.Get)
	authed.PATCH("/users/:id", userHandler.Update)
	authed.DELETE("/users/:id", userHandler.Delete)

	authed.POST("/shops", shopHandler.Create)
	authed.PATCH("/shops/:id", shopHandler.Update)
	authed.DELETE("/shops/:id", shopHandler.Delete)

	authed.GET("/order", orderHandler.List)
	authed.POST("/order", orderHandler.Create)
	authed.GET("/order/:id", orderHandler.Get)
	authed.PATCH("/order/:id", orderHandler.Update)
	authed.DELETE("/order/:id", orderHandler.Delete)
	authed.GET("/orders/:order_id/payments", orderHandler.Payments)

	authed.POST("/payments", paymentHandler.Record)
	authed.POST("/payments/staggered", paymentHandler.Staggered)
	authed.POST("/payments/rent-to-own", paymentHandler.RentToOwn)
	authed.POST("/payments/outright", paymentHandler.Outright)
	authed.GET("/payments/renewals", paymentHandler.Renewals)
	authed.GET("/payments/:order_id", paymentHandler.ByOrder)
	authed.GET("/payments/history/:order_id", paymentHandler.History)

	return engine
}
