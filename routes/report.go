package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
)

func SetupReportRoutes(app *fiber.App, ctrl *controllers.ReportController) {
	report := app.Group("/reports", middleware.Protected())
	report.Get("/", ctrl.GetReport)
	report.Get("/export/csv", ctrl.ExportReportCSV)
	report.Get("/export/xml", ctrl.ExportReportXML)
}
