package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
)

// Controllers bundles everything the route setup needs.
type Controllers struct {
	Auth         *controllers.AuthController
	Users        *controllers.UserController
	Doctors      *controllers.DoctorController
	Services     *controllers.ServiceController
	Appointments *controllers.AppointmentController
	Reports      *controllers.ReportController
}

// Setup wires every route group onto the app.
func Setup(app *fiber.App, c Controllers) {
	SetupAuthRoutes(app, c.Auth)
	SetupUserRoutes(app, c.Users)
	SetupDoctorRoutes(app, c.Doctors)
	SetupServiceRoutes(app, c.Services)
	SetupAppointmentRoutes(app, c.Appointments)
	SetupReportRoutes(app, c.Reports)
}
