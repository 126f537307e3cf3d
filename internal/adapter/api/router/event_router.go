package router

import (
	"github.com/labstack/echo/v4"

	"assetnotifier/internal/adapter/api/handler"
	"assetnotifier/internal/adapter/api/middleware"
)

func SetupEventRouter(e *echo.Echo, webhookMiddleware *middleware.WebhookMiddleware) {
	eventHandler := handler.GetEventHandler()

	// Trigger boundary - called by the content repository, signed requests only
	events := e.Group("/v1/events")
	events.Use(webhookMiddleware.VerifySignature)

	events.POST("/asset", eventHandler.HandleAssetEvent)
}
