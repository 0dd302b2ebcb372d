package routes

import (
	"Backend-CheckIn-Passport/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// appDataRoutes ข้อมูลอ้างอิงและ QR ของกิจกรรม (สาธารณะ)
func appDataRoutes(router fiber.Router, h *controllers.Handler) {
	router.Get("/app-data", h.GetAppData)
	router.Get("/activities/:id/qrcode", h.GetActivityQRCode)
}
