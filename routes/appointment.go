package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctrl *controllers.AppointmentController) {
	appointment := app.Group("/appointments")
	appointment.Get("/", ctrl.GetAllAppointments)
	appointment.Get("/date-range", ctrl.GetAppointmentsByDateRange)
	appointment.Get("/availability", ctrl.CheckAvailability)
	appointment.Get("/:id", ctrl.GetAppointment)
	appointment.Post("/", middleware.Protected(), ctrl.CreateAppointment)
	appointment.Put("/:id", middleware.Protected(), ctrl.UpdateAppointment)
	appointment.Patch("/:id/status", middleware.Protected(), ctrl.UpdateAppointmentStatus)
	appointment.Delete("/:id", middleware.Protected(), ctrl.DeleteAppointment)
}
