package controllers

import (
	"Backend-CheckIn-Passport/src/models"
	"Backend-CheckIn-Passport/src/services/activities"
	"Backend-CheckIn-Passport/src/services/checkins"
	"Backend-CheckIn-Passport/src/utils"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ListCheckInLogs godoc
// @Summary      Get check-in logs with pagination, search, and sorting
// @Tags         checkInLogs
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Number of items per page" default(20)
// @Param        search query  string  false  "Search user, activity or location name"
// @Param        sortBy query  string  false  "Field to sort by" default(timestamp)
// @Param        order  query  string  false  "Sort order (asc or desc)" default(desc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /checkin-logs [get]
func (h *Handler) ListCheckInLogs(c *fiber.Ctx) error {
	params := models.DefaultPagination()

	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	res, err := h.Logs.ListCheckInLogs(c.UserContext(), params)
	if err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch check-in logs")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// GetUserCheckInHistory godoc
// @Summary      Get check-in history of a user (newest first)
// @Tags         checkInLogs
// @Produce      json
// @Param        userId  path  string  true  "User ID"
// @Success      200  {array}   models.CheckInLog
// @Failure      500  {object}  models.ErrorResponse
// @Router       /checkin-logs/user/{userId} [get]
func (h *Handler) GetUserCheckInHistory(c *fiber.Ctx) error {
	logs, err := h.History.GetUserCheckInHistory(c.UserContext(), c.Params("userId"))
	if err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch check-in history")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": logs})
}

// SubmitCheckIn godoc
// @Summary      Self check-in to an activity
// @Tags         checkInLogs
// @Accept       json
// @Produce      json
// @Param        body  body  models.CheckInRequest  true  "Check-in"
// @Success      201  {object}  models.CheckInLog
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /checkins [post]
func (h *Handler) SubmitCheckIn(c *fiber.Ctx) error {
	var req models.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := checkins.Submit(c.UserContext(), req)
	if err != nil {
		var unavailable *checkins.UnavailableError
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Activity not found")
		case errors.As(err, &unavailable):
			return utils.HandleError(c, fiber.StatusConflict, unavailable.Error())
		}
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to check in")
	}

	if h.Invalidator != nil {
		h.Invalidator.InvalidateAppData(c.UserContext())
	}
	h.requestRefresh("checkin", entry.UserID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checked in successfully",
		"data":    entry,
	})
}

// DeleteCheckInLog godoc
// @Summary      Delete a check-in log
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "CheckInID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/checkin-logs/{id} [delete]
func (h *Handler) DeleteCheckInLog(c *fiber.Ctx) error {
	if err := checkins.DeleteCheckInLog(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, checkins.ErrCheckInNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Check-in log not found")
		}
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete check-in log")
	}

	h.afterMutation(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Check-in log deleted successfully"})
}
