package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
	"github.com/medcare/medcare-server/models"
)

// SetupUserRoutes configures staff account management, admin only.
func SetupUserRoutes(app *fiber.App, ctrl *controllers.UserController) {
	user := app.Group("/users", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	user.Get("/", ctrl.GetAllUsers)
	user.Get("/:id", ctrl.GetUser)
	user.Post("/", ctrl.CreateUser)
	user.Put("/:id", ctrl.UpdateUser)
	user.Delete("/:id", ctrl.DeleteUser)
}
