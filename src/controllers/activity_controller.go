package controllers

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/activities"
	"Backend-CheckIn-Passport/src/services/exports"
	"Backend-CheckIn-Passport/src/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAppData godoc
// @Summary      Get activities (with status), locations, schools, clusters and passport missions
// @Tags         appData
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /app-data [get]
func (h *Handler) GetAppData(c *fiber.Ctx) error {
	snap := h.Store.Current()
	data := snap.AppData
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"activities":  activities.BuildViews(data.Activities, data.Locations, utils.NowBangkok()),
			"locations":   data.Locations,
			"schools":     data.Schools,
			"clusters":    data.Clusters,
			"missions":    data.Missions,
			"snapshotSeq": snap.Seq,
		},
	})
}

// SaveActivity godoc
// @Summary      Create or update an activity
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  models.CheckInActivity  true  "Activity"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/activities [put]
func (h *Handler) SaveActivity(c *fiber.Ctx) error {
	var activity models.CheckInActivity
	if err := c.BodyParser(&activity); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&activity); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := activities.SaveActivity(c.UserContext(), &activity); err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving activity")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Activity saved successfully",
		"data":    activity,
	})
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ActivityID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/activities/{id} [delete]
func (h *Handler) DeleteActivity(c *fiber.Ctx) error {
	if err := activities.DeleteActivity(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, activities.ErrActivityNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting activity")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Activity deleted successfully"})
}

// GetActivityQRCode godoc
// @Summary      QR code PNG linking to the activity check-in page
// @Tags         activities
// @Produce      png
// @Param        id  path  string  true  "ActivityID"
// @Success      200  {file}  binary
// @Failure      500  {object}  models.ErrorResponse
// @Router       /activities/{id}/qrcode [get]
func (h *Handler) GetActivityQRCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "activityId is required")
	}

	png, err := exports.ActivityQRCode(h.BaseURL, id)
	if err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate check-in QR Code")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
