package controllers

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/utils"

	"github.com/gofiber/fiber/v2"
)

func parseFilter(c *fiber.Ctx) (models.AnalyticsFilter, error) {
	filter := models.AnalyticsFilter{
		Cluster: c.Query("cluster", models.FilterAll),
		Time:    c.Query("time", models.FilterAll),
	}
	return filter, utils.ValidateStruct(&filter)
}

// GetAnalytics godoc
// @Summary      Get analytics dashboard report
// @Description  Overview, school participation, location hotspots and hourly timeline of check-ins
// @Tags         analytics
// @Produce      json
// @Param        cluster  query  string  false  "Cluster filter" default(All)
// @Param        time     query  string  false  "All, Morning or Afternoon" default(All)
// @Success      200  {object}  models.AnalyticsReport
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics [get]
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	report := h.Analytics.Report(c.UserContext(), filter)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": report,
	})
}

// GetAnalyticsPrompt godoc
// @Summary      Get Thai summary text of the analytics report
// @Tags         analytics
// @Produce      json
// @Param        kind     query  string  false  "summary or school" default(summary)
// @Param        cluster  query  string  false  "Cluster filter" default(All)
// @Param        time     query  string  false  "All, Morning or Afternoon" default(All)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /analytics/prompt [get]
func (h *Handler) GetAnalyticsPrompt(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	text, err := h.Analytics.Prompt(c.UserContext(), c.Query("kind"), filter, utils.NowBangkok())
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{"prompt": text},
	})
}
