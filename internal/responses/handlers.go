package responses

import (
	"errors"

	"esg-backend/internal/middleware"
	"esg-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
}

// GET /api/responses
func (h *Handlers) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	list, err := h.Service.ListByUser(c.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list responses failed")
		return response.Internal(c)
	}
	return c.JSON(list)
}

// POST /api/responses
func (h *Handlers) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	record, err := h.Service.Create(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrFinancialYearRequired), errors.Is(err, ErrNegativeValue),
			errors.Is(err, ErrFemaleExceedsTotal), errors.Is(err, ErrRenewableExceedsTotal),
			errors.Is(err, ErrBoardPercentRange):
			return response.BadRequest(c, err.Error())
		}
		log.Error().Err(err).Msg("create response failed")
		return response.Internal(c)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// DELETE /api/responses/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid response ID")
	}
	if err := h.Service.DeleteByIDForUser(c.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, ErrRelatedData):
			return response.BadRequest(c, err.Error())
		}
		log.Error().Err(err).Msg("delete response failed")
		return response.Internal(c)
	}
	return response.Message(c, "Response deleted successfully")
}
