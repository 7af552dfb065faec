package middleware

import (
	"strings"

	"esg-backend/internal/pkg/response"
	"esg-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDLocal = "user_id"

// RequireAuth verifies the Authorization: Bearer token and stores the caller's
// user ID in Locals. Missing, malformed, invalid and expired tokens all get a
// 401 before any handler or storage access runs.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return response.Unauthorized(c, "Unauthorized")
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		userID, err := token.Verify(raw, secret)
		if err != nil {
			return response.Unauthorized(c, "Invalid token")
		}
		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// GetUserID returns the authenticated user ID set by RequireAuth.
func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDLocal).(uuid.UUID)
	return id, ok
}
