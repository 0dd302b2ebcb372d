package routes

import (
	"Backend-CheckIn-Passport/src/controllers"
	"Backend-CheckIn-Passport/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func analyticsRoutes(router fiber.Router, h *controllers.Handler) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Use(middleware.AuthJWT, middleware.RequireAdmin)
	analyticsRoutes.Get("/", h.GetAnalytics)
	analyticsRoutes.Get("/prompt", h.GetAnalyticsPrompt)

	exportRoutes := router.Group("/export")
	exportRoutes.Use(middleware.AuthJWT, middleware.RequireAdmin)
	exportRoutes.Get("/checkin-logs.csv", h.ExportCheckInLogsCSV)
	exportRoutes.Get("/checkin-logs.xlsx", h.ExportCheckInLogsXLSX)
}
