package routes

import (
	"Backend-CheckIn-Passport/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, h *controllers.Handler) {
	api := app.Group("/api")

	appDataRoutes(api, h)
	checkInRoutes(api, h)
	passportRoutes(api, h)
	analyticsRoutes(api, h)
	adminRoutes(api, h)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
