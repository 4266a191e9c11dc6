package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (ctrl *ReportController) generate(c *fiber.Ctx) (*models.Report, error) {
	start, err := parseTimeQuery(c, "start")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start parameter", models.ErrValidation)
	}
	end, err := parseTimeQuery(c, "end")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end parameter", models.ErrValidation)
	}
	return ctrl.reports.Generate(start, end)
}

// GetReport godoc
// @Summary Generate a statistics report for a period
// @Description Appointments of the period plus doctor and service popularity
// @Tags reports
// @Produce json
// @Param start query string true "Period start, RFC3339"
// @Param end query string true "Period end, RFC3339"
// @Success 200 {object} models.Report
// @Failure 400 {object} utils.ErrorResponse
// @Router /reports [get]
func (ctrl *ReportController) GetReport(c *fiber.Ctx) error {
	report, err := ctrl.generate(c)
	if err != nil {
		return utils.RespondError(c, "Failed to generate report", err)
	}
	return c.JSON(report)
}

// ExportReportCSV godoc
// @Summary Download the period report as CSV
// @Tags reports
// @Produce text/csv
// @Param start query string true "Period start, RFC3339"
// @Param end query string true "Period end, RFC3339"
// @Success 200 {string} string
// @Failure 400 {object} utils.ErrorResponse
// @Router /reports/export/csv [get]
func (ctrl *ReportController) ExportReportCSV(c *fiber.Ctx) error {
	report, err := ctrl.generate(c)
	if err != nil {
		return utils.RespondError(c, "Failed to generate report", err)
	}
	out, err := ctrl.reports.ExportCSV(report)
	if err != nil {
		return utils.RespondError(c, "Failed to export report", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.csv"`)
	return c.Send(out)
}

// ExportReportXML godoc
// @Summary Download the period report as XML
// @Tags reports
// @Produce application/xml
// @Param start query string true "Period start, RFC3339"
// @Param end query string true "Period end, RFC3339"
// @Success 200 {string} string
// @Failure 400 {object} utils.ErrorResponse
// @Router /reports/export/xml [get]
func (ctrl *ReportController) ExportReportXML(c *fiber.Ctx) error {
	report, err := ctrl.generate(c)
	if err != nil {
		return utils.RespondError(c, "Failed to generate report", err)
	}
	out, err := ctrl.reports.ExportXML(report)
	if err != nil {
		return utils.RespondError(c, "Failed to export report", err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.xml"`)
	return c.Send(out)
}
