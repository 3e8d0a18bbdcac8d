package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-bridge/internal/shared/middleware"
	"ledger-bridge/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupWebhookRoutes(v1, c)
	}

	return router
}

func setupWebhookRoutes(rg *gin.RouterGroup, c *container.Container) {
	webhooks := rg.Group("/webhooks")
	{
		webhooks.POST("/juspay", c.WebhookHandler.JuspayWebhook)
		webhooks.POST("/platform/transaction-cancelation-requested", c.WebhookHandler.TransactionCancelationRequested)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		}

		if c.DB != nil {
			if err := c.DB.Ping(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}

		ctx.JSON(http.StatusOK, status)
	}
}
