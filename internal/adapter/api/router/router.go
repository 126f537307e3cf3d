package router

import (
	"github.com/labstack/echo/v4"

	"assetnotifier/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, webhookMiddleware *middleware.WebhookMiddleware, authMiddleware *middleware.AuthMiddleware) {
	SetupEventRouter(e, webhookMiddleware)
	SetupAdminRouter(e, authMiddleware)
}
