package responses

import (
	"context"
	"errors"
	"strings"

	"esg-backend/internal/metrics"
	"esg-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the response store: persistence for ESGResponse records scoped by
// owning user. Records are immutable after create.
type Service struct {
	DB *gorm.DB
}

// CreateInput is the POST body. Pointer fields distinguish "absent" from
// "recorded zero"; absent raw metrics are stored as NULL and rendered N/A.
type CreateInput struct {
	FinancialYear string `json:"financialYear"`

	TotalElectricityConsumption     *float64 `json:"totalElectricityConsumption"`
	RenewableElectricityConsumption *float64 `json:"renewableElectricityConsumption"`
	TotalFuelConsumption            *float64 `json:"totalFuelConsumption"`
	CarbonEmissions                 *float64 `json:"carbonEmissions"`

	TotalEmployees              *float64 `json:"totalEmployees"`
	FemaleEmployees             *float64 `json:"femaleEmployees"`
	AvgTrainingHoursPerEmployee *float64 `json:"avgTrainingHoursPerEmployee"`
	CommunityInvestmentSpend    *float64 `json:"communityInvestmentSpend"`

	IndependentBoardMembersPercent *float64 `json:"independentBoardMembersPercent"`
	HasDataPrivacyPolicy           bool     `json:"hasDataPrivacyPolicy"`
	TotalRevenue                   *float64 `json:"totalRevenue"`

	// Clients may submit the ratios they previewed; they are stored as given.
	// Absent ratios are derived server-side from the raw fields.
	CarbonIntensity           *float64 `json:"carbonIntensity"`
	RenewableElectricityRatio *float64 `json:"renewableElectricityRatio"`
	DiversityRatio            *float64 `json:"diversityRatio"`
	CommunitySpendRatio       *float64 `json:"communitySpendRatio"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func ptr(v float64) *float64 { return &v }

// Validate enforces the cross-field invariants at the storage boundary, so
// they hold regardless of which client submitted the data.
func (in *CreateInput) Validate() error {
	if strings.TrimSpace(in.FinancialYear) == "" {
		return ErrFinancialYearRequired
	}
	for _, v := range []*float64{
		in.TotalElectricityConsumption, in.RenewableElectricityConsumption,
		in.TotalFuelConsumption, in.CarbonEmissions,
		in.TotalEmployees, in.FemaleEmployees,
		in.AvgTrainingHoursPerEmployee, in.CommunityInvestmentSpend,
		in.IndependentBoardMembersPercent, in.TotalRevenue,
		in.CarbonIntensity, in.RenewableElectricityRatio,
		in.DiversityRatio, in.CommunitySpendRatio,
	} {
		if v != nil && *v < 0 {
			return ErrNegativeValue
		}
	}
	if in.FemaleEmployees != nil && in.TotalEmployees != nil && *in.FemaleEmployees > *in.TotalEmployees {
		return ErrFemaleExceedsTotal
	}
	if in.RenewableElectricityConsumption != nil && in.TotalElectricityConsumption != nil &&
		*in.RenewableElectricityConsumption > *in.TotalElectricityConsumption {
		return ErrRenewableExceedsTotal
	}
	if in.IndependentBoardMembersPercent != nil && *in.IndependentBoardMembersPercent > 100 {
		return ErrBoardPercentRange
	}
	return nil
}

// Create assigns identity and creation timestamp, fills in any derived ratios
// the client did not supply, and stores the record. Supplied derived values
// are stored as given, never recomputed.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*models.ESGResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	derived := metrics.Derive(metrics.Raw{
		CarbonEmissions:                 deref(in.CarbonEmissions),
		TotalRevenue:                    deref(in.TotalRevenue),
		RenewableElectricityConsumption: deref(in.RenewableElectricityConsumption),
		TotalElectricityConsumption:     deref(in.TotalElectricityConsumption),
		FemaleEmployees:                 deref(in.FemaleEmployees),
		TotalEmployees:                  deref(in.TotalEmployees),
		CommunityInvestmentSpend:        deref(in.CommunityInvestmentSpend),
	})
	if in.CarbonIntensity == nil {
		in.CarbonIntensity = ptr(derived.CarbonIntensity)
	}
	if in.RenewableElectricityRatio == nil {
		in.RenewableElectricityRatio = ptr(derived.RenewableElectricityRatio)
	}
	if in.DiversityRatio == nil {
		in.DiversityRatio = ptr(derived.DiversityRatio)
	}
	if in.CommunitySpendRatio == nil {
		in.CommunitySpendRatio = ptr(derived.CommunitySpendRatio)
	}

	record := models.ESGResponse{
		UserID:        userID,
		FinancialYear: strings.TrimSpace(in.FinancialYear),

		TotalElectricityConsumption:     in.TotalElectricityConsumption,
		RenewableElectricityConsumption: in.RenewableElectricityConsumption,
		TotalFuelConsumption:            in.TotalFuelConsumption,
		CarbonEmissions:                 in.CarbonEmissions,

		TotalEmployees:              in.TotalEmployees,
		FemaleEmployees:             in.FemaleEmployees,
		AvgTrainingHoursPerEmployee: in.AvgTrainingHoursPerEmployee,
		CommunityInvestmentSpend:    in.CommunityInvestmentSpend,

		IndependentBoardMembersPercent: in.IndependentBoardMembersPercent,
		HasDataPrivacyPolicy:           in.HasDataPrivacyPolicy,
		TotalRevenue:                   in.TotalRevenue,

		CarbonIntensity:           in.CarbonIntensity,
		RenewableElectricityRatio: in.RenewableElectricityRatio,
		DiversityRatio:            in.DiversityRatio,
		CommunitySpendRatio:       in.CommunitySpendRatio,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns the caller's responses, newest first. The id term keeps
// the order stable when two records share a creation timestamp.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ESGResponse, error) {
	list := []models.ESGResponse{}
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, response_id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByIDForUser loads one response, ownership-checked. A response owned by a
// different user is indistinguishable from a nonexistent one.
func (s *Service) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.ESGResponse, error) {
	var record models.ESGResponse
	err := s.DB.WithContext(ctx).Where("response_id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteByIDForUser deletes a caller-owned response. Deleting a nonexistent or
// foreign-owned id fails with ErrNotFound; a delete blocked by referential
// integrity fails with ErrRelatedData.
func (s *Service) DeleteByIDForUser(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.GetByIDForUser(ctx, id, userID); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Where("response_id = ? AND user_id = ?", id, userID).Delete(&models.ESGResponse{}).Error
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") {
			return ErrRelatedData
		}
		return err
	}
	return nil
}
