package middleware

import (
	"esg-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the global error handler. No error reaches the transport
// layer unmapped: fiber errors keep their code, everything else becomes a
// generic 500 with the detail logged server-side only.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return response.Error(c, e.Code, e.Message)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return response.Internal(c)
}
