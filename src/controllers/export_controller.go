package controllers

import (
	"Backend-CheckIn-Passport/src/services/exports"
	"Backend-CheckIn-Passport/src/utils"
	"bytes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// XLSXContentType MIME ของไฟล์ Excel
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCheckInLogsCSV godoc
// @Summary      Download filtered check-in logs as CSV
// @Tags         export
// @Produce      text/csv
// @Param        cluster  query  string  false  "Cluster filter" default(All)
// @Param        time     query  string  false  "All, Morning or Afternoon" default(All)
// @Success      200  {file}  binary
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /export/checkin-logs.csv [get]
func (h *Handler) ExportCheckInLogsCSV(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := exports.WriteCheckInLogsCSV(&buf, h.Analytics.FilteredLogs(filter)); err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to export CSV")
	}

	filename := fmt.Sprintf("checkin-logs-%s.csv", utils.NowBangkok().Format("20060102-1504"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// ExportCheckInLogsXLSX godoc
// @Summary      Download filtered check-in logs as Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        cluster  query  string  false  "Cluster filter" default(All)
// @Param        time     query  string  false  "All, Morning or Afternoon" default(All)
// @Success      200  {file}  binary
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /export/checkin-logs.xlsx [get]
func (h *Handler) ExportCheckInLogsXLSX(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := exports.WriteCheckInLogsXLSX(&buf, h.Analytics.FilteredLogs(filter)); err != nil {
		log.Printf("❌ %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to export Excel")
	}

	filename := fmt.Sprintf("checkin-logs-%s.xlsx", utils.NowBangkok().Format("20060102-1504"))
	c.Set(fiber.HeaderContentType, XLSXContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
