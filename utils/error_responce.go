package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusForError maps the service error kinds onto HTTP status codes.
// Anything that is not one of the recoverable kinds is an opaque
// infrastructure failure and comes back as a 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrSlotConflict):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError writes the standard error body with the mapped status.
func RespondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(StatusForError(err)).JSON(ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
