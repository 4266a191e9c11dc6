package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
	"github.com/medcare/medcare-server/models"
)

func SetupDoctorRoutes(app *fiber.App, ctrl *controllers.DoctorController) {
	doctor := app.Group("/doctors")
	doctor.Get("/", ctrl.GetAllDoctors)
	doctor.Get("/:id", ctrl.GetDoctor)
	doctor.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.CreateDoctor)
	doctor.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.UpdateDoctor)
	doctor.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.DeleteDoctor)
}
