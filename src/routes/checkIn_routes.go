package routes

import (
	"Backend-CheckIn-Passport/src/controllers"
	"Backend-CheckIn-Passport/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func checkInRoutes(router fiber.Router, h *controllers.Handler) {
	router.Post("/checkins", h.SubmitCheckIn)
	router.Get("/checkin-logs/user/:userId", h.GetUserCheckInHistory)
	router.Get("/checkin-logs", middleware.AuthJWT, middleware.RequireAdmin, h.ListCheckInLogs)
}
