package controllers

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/passport"
	"Backend-CheckIn-Passport/src/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetUserPassport godoc
// @Summary      Get mission progress of every passport mission for a user
// @Tags         passport
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      200  {array}   models.MissionProgress
// @Failure      500  {object}  models.ErrorResponse
// @Router       /passport/{userId} [get]
func (h *Handler) GetUserPassport(c *fiber.Ctx) error {
	progress, err := h.Passport.UserProgress(c.UserContext(), c.Params("userId"))
	if err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load passport")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": progress})
}

// GetMissionProgress godoc
// @Summary      Get progress of one passport mission for a user
// @Tags         passport
// @Produce      json
// @Param        userId     path  string  true  "User ID"
// @Param        missionId  path  string  true  "Mission ID"
// @Success      200  {object}  models.MissionProgress
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /passport/{userId}/missions/{missionId} [get]
func (h *Handler) GetMissionProgress(c *fiber.Ctx) error {
	progress, err := h.Passport.MissionProgress(c.UserContext(), c.Params("userId"), c.Params("missionId"))
	if err != nil {
		if errors.Is(err, passport.ErrMissionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Mission not found")
		}
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to load mission progress")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": progress})
}

// SaveMissions godoc
// @Summary      Replace the passport mission config
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  []models.PassportMission  true  "Missions"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/missions [put]
func (h *Handler) SaveMissions(c *fiber.Ctx) error {
	var missions []models.PassportMission
	if err := c.BodyParser(&missions); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := passport.ValidateMissions(missions); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := passport.SaveMissions(c.UserContext(), missions); err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save missions")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Missions saved successfully",
		"data":    missions,
	})
}
