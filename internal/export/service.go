package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"esg-backend/internal/models"
	"esg-backend/internal/responses"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Format selects the output encoding.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// Result is a rendered document ready to stream.
type Result struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Service ties storage lookup and rendering together. Responses is the
// ownership-scoped response store; both encoders consume the same report
// builder.
type Service struct {
	DB        *gorm.DB
	Responses *responses.Service
}

// ExportAll renders the caller's full response history.
func (s *Service) ExportAll(ctx context.Context, userID uuid.UUID, format Format) (*Result, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := s.Responses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	report, err := BuildSummaryReport(user, list, time.Now())
	if err != nil {
		return nil, err
	}
	result, err := s.encode(report, format, "esg-questionnaire-summary")
	if err != nil {
		return nil, err
	}
	s.recordEvent(ctx, userID, format, "all", result.Filename)
	return result, nil
}

// ExportOne renders a single caller-owned response. A foreign-owned id fails
// exactly like a nonexistent one.
func (s *Service) ExportOne(ctx context.Context, userID, responseID uuid.UUID, format Format) (*Result, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp, err := s.Responses.GetByIDForUser(ctx, responseID, userID)
	if err != nil {
		return nil, err
	}
	report, err := BuildDetailReport(user, resp, time.Now())
	if err != nil {
		return nil, err
	}
	result, err := s.encode(report, format, "esg-response-"+responseID.String())
	if err != nil {
		return nil, err
	}
	s.recordEvent(ctx, userID, format, responseID.String(), result.Filename)
	return result, nil
}

func (s *Service) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) encode(report *Report, format Format, basename string) (*Result, error) {
	switch format {
	case FormatPDF:
		data, err := EncodePDF(report)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, ContentType: PDFContentType, Filename: basename + ".pdf"}, nil
	case FormatExcel:
		data, err := EncodeXLSX(report)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, ContentType: XLSXContentType, Filename: basename + ".xlsx"}, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// recordEvent writes the export audit row. Best effort: a failed audit write
// never fails the export.
func (s *Service) recordEvent(ctx context.Context, userID uuid.UUID, format Format, scope, filename string) {
	payload, err := json.Marshal(map[string]string{
		"scope":    scope,
		"filename": filename,
	})
	if err != nil {
		return
	}
	event := models.ExportEvent{
		UserID:    userID,
		EventType: string(format),
		EventData: datatypes.JSON(payload),
	}
	if err := s.DB.WithContext(ctx).Create(&event).Error; err != nil {
		log.Warn().Err(err).Msg("export event not recorded")
	}
}
