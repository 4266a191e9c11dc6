package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/controllers"
	"github.com/medcare/medcare-server/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctrl *controllers.AuthController) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", ctrl.Login)
	auth.Post("/refresh", ctrl.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), ctrl.Me)
	auth.Post("/logout", middleware.Protected(), ctrl.Logout)
}
