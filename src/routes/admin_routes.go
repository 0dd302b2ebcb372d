package routes

import (
	"Backend-CheckIn-Passport/src/controllers"
	"Backend-CheckIn-Passport/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(router fiber.Router, h *controllers.Handler) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthJWT, middleware.RequireAdmin)

	adminRoutes.Post("/refresh", h.RefreshSnapshot)
	adminRoutes.Get("/polling", h.GetPolling)
	adminRoutes.Put("/polling", h.SetPolling)

	adminRoutes.Put("/activities", h.SaveActivity)
	adminRoutes.Delete("/activities/:id", h.DeleteActivity)
	adminRoutes.Put("/locations", h.SaveLocation)
	adminRoutes.Delete("/locations/:id", h.DeleteLocation)
	adminRoutes.Delete("/checkin-logs/:id", h.DeleteCheckInLog)
	adminRoutes.Put("/missions", h.SaveMissions)
}
