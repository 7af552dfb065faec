package auth

import (
	"errors"

	"esg-backend/internal/middleware"
	"esg-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Handlers struct {
	Service *Service
}

// TokenBody is the success shape for register and login.
type TokenBody struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	user, token, err := h.Service.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return response.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, ErrFieldsRequired), errors.Is(err, ErrInvalidName),
			errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		}
		log.Error().Err(err).Msg("register failed")
		return response.Internal(c)
	}
	return c.Status(fiber.StatusCreated).JSON(TokenBody{Token: token, User: user})
}

// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	user, token, err := h.Service.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return response.Unauthorized(c, err.Error())
		}
		log.Error().Err(err).Msg("login failed")
		return response.Internal(c)
	}
	return c.JSON(TokenBody{Token: token, User: user})
}

// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	user, err := h.Service.GetUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "Unauthorized")
		}
		log.Error().Err(err).Msg("me lookup failed")
		return response.Internal(c)
	}
	return c.JSON(user)
}
