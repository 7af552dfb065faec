package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error JSON shape used by every route: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the shape for message-only success responses.
type MessageBody struct {
	Message string `json:"message"`
}

// Error sends a JSON error body with the given status code.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// Unauthorized sends 401. Used by auth middleware and handlers alike so every
// credential failure has the same shape.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// BadRequest sends 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound sends 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Internal sends 500 with a generic body. The underlying error is logged at the
// call site, never returned to the client.
func Internal(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// Message sends a 200 with {"message": "..."}.
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}
