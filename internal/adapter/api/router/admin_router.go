package router

import (
	"github.com/labstack/echo/v4"

	"assetnotifier/internal/adapter/api/handler"
	"assetnotifier/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	adminHandler := handler.GetAdminHandler()

	// Admin routes - require authentication
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)

	admin.POST("/templates/ensure", adminHandler.EnsureTemplates)
}
