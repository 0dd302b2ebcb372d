package controllers

import (
	"Backend-CheckIn-Passport/src/jobs"
	"Backend-CheckIn-Passport/src/utils"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
)

// RefreshSnapshot godoc
// @Summary      Re-fetch logs and registries
// @Description  Queues a refresh job when Redis is available, otherwise refreshes synchronously
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Success      202  {object}  map[string]interface{}
// @Failure      502  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/refresh [post]
func (h *Handler) RefreshSnapshot(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	if h.Asynq != nil {
		queued, err := jobs.EnqueueRefresh(h.Asynq, "manual", userID)
		if err == nil {
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"message": "Refresh queued",
				"queued":  queued,
			})
		}
		log.Printf("⚠️ %v, refreshing synchronously", err)
	}

	snap, err := h.Store.Refresh(c.UserContext())
	if err != nil {
		// ข้อมูลเดิมยังใช้ได้ แจ้ง seq ที่ยังใช้อยู่
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":       "Refresh failed, previous data retained",
			"snapshotSeq": snap.Seq,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Refreshed",
		"snapshotSeq": snap.Seq,
		"fetchedAt":   utils.FormatTimestamp(snap.FetchedAt),
	})
}

type pollingRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// GetPolling godoc
// @Summary      Whether automatic 30 second refresh is enabled
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /admin/polling [get]
func (h *Handler) GetPolling(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"enabled": h.Poller.Enabled()})
}

// SetPolling godoc
// @Summary      Enable or disable automatic 30 second refresh
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  pollingRequest  true  "Polling state"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/polling [put]
func (h *Handler) SetPolling(c *fiber.Ctx) error {
	var req pollingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if *req.Enabled {
		// poller อยู่ได้นานกว่า request จึงไม่ใช้ context ของ request
		h.Poller.Start(context.Background())
	} else {
		h.Poller.Stop()
	}
	return c.JSON(fiber.Map{"enabled": h.Poller.Enabled()})
}
