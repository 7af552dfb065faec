package export

import (
	"errors"

	"esg-backend/internal/middleware"
	"esg-backend/internal/pkg/response"
	"esg-backend/internal/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *Service
}

// GET /api/export/pdf[?responseId=...]
func (h *Handlers) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, FormatPDF)
}

// GET /api/export/excel[?responseId=...]
func (h *Handlers) ExportExcel(c *fiber.Ctx) error {
	return h.export(c, FormatExcel)
}

func (h *Handlers) export(c *fiber.Ctx, format Format) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var result *Result
	var err error
	if c.Context().QueryArgs().Has("responseId") {
		raw := c.Query("responseId")
		if raw == "" {
			return response.BadRequest(c, "Response ID is required")
		}
		responseID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return response.BadRequest(c, "Invalid response ID")
		}
		result, err = h.Service.ExportOne(c.Context(), userID, responseID, format)
	} else {
		result, err = h.Service.ExportAll(c.Context(), userID, format)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyDataset):
			return response.NotFound(c, err.Error())
		case errors.Is(err, responses.ErrNotFound):
			return response.NotFound(c, err.Error())
		case errors.Is(err, ErrUnknownUser):
			return response.Unauthorized(c, "Unauthorized")
		}
		log.Error().Err(err).Str("format", string(format)).Msg("export failed")
		return response.Internal(c)
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}
