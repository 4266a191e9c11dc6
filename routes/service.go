package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
	"github.com/medcare/medcare-server/models"
)

func SetupServiceRoutes(app *fiber.App, ctrl *controllers.ServiceController) {
	service := app.Group("/services")
	service.Get("/", ctrl.GetAllServices)
	service.Get("/:id", ctrl.GetService)
	service.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), ctrl.DeleteService)
}
