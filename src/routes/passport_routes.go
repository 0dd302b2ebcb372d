package routes

import (
	"Backend-CheckIn-Passport/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func passportRoutes(router fiber.Router, h *controllers.Handler) {
	passportRoutes := router.Group("/passport")
	passportRoutes.Get("/:userId", h.GetUserPassport)
	passportRoutes.Get("/:userId/missions/:missionId", h.GetMissionProgress)
}
