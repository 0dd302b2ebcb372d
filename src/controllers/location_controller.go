package controllers

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/locations"
	"Backend-CheckIn-Passport/src/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SaveLocation godoc
// @Summary      Create or update a check-in location
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  models.CheckInLocation  true  "Location"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/locations [put]
func (h *Handler) SaveLocation(c *fiber.Ctx) error {
	var location models.CheckInLocation
	if err := c.BodyParser(&location); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&location); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := locations.SaveLocation(c.UserContext(), &location); err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error saving location")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Location saved successfully",
		"data":    location,
	})
}

// DeleteLocation godoc
// @Summary      Delete a check-in location
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "LocationID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/locations/{id} [delete]
func (h *Handler) DeleteLocation(c *fiber.Ctx) error {
	if err := locations.DeleteLocation(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, locations.ErrLocationNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Location not found")
		}
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting location")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Location deleted successfully"})
}
