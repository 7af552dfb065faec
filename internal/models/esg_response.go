package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ESGResponse is one submitted questionnaire. Immutable after create: the API
// exposes create, list, get and delete but never update, so raw and derived
// fields can never drift apart.
//
// Metric fields are pointers: NULL means the value was not supplied ("N/A" in
// exports), which is distinct from a recorded zero.
type ESGResponse struct {
	ResponseID    uuid.UUID `gorm:"column:response_id;type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	FinancialYear string    `gorm:"column:financial_year;not null" json:"financialYear"`

	// Environmental
	TotalElectricityConsumption     *float64 `gorm:"column:total_electricity_consumption" json:"totalElectricityConsumption"`
	RenewableElectricityConsumption *float64 `gorm:"column:renewable_electricity_consumption" json:"renewableElectricityConsumption"`
	TotalFuelConsumption            *float64 `gorm:"column:total_fuel_consumption" json:"totalFuelConsumption"`
	CarbonEmissions                 *float64 `gorm:"column:carbon_emissions" json:"carbonEmissions"`

	// Social
	TotalEmployees              *float64 `gorm:"column:total_employees" json:"totalEmployees"`
	FemaleEmployees             *float64 `gorm:"column:female_employees" json:"femaleEmployees"`
	AvgTrainingHoursPerEmployee *float64 `gorm:"column:avg_training_hours_per_employee" json:"avgTrainingHoursPerEmployee"`
	CommunityInvestmentSpend    *float64 `gorm:"column:community_investment_spend" json:"communityInvestmentSpend"`

	// Governance
	IndependentBoardMembersPercent *float64 `gorm:"column:independent_board_members_percent" json:"independentBoardMembersPercent"`
	HasDataPrivacyPolicy           bool     `gorm:"column:has_data_privacy_policy;not null;default:false" json:"hasDataPrivacyPolicy"`
	TotalRevenue                   *float64 `gorm:"column:total_revenue" json:"totalRevenue"`

	// Derived ratios, stored redundantly at submission time.
	CarbonIntensity           *float64 `gorm:"column:carbon_intensity" json:"carbonIntensity"`
	RenewableElectricityRatio *float64 `gorm:"column:renewable_electricity_ratio" json:"renewableElectricityRatio"`
	DiversityRatio            *float64 `gorm:"column:diversity_ratio" json:"diversityRatio"`
	CommunitySpendRatio       *float64 `gorm:"column:community_spend_ratio" json:"communitySpendRatio"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ESGResponse) TableName() string {
	return "ESGResponses"
}

func (r *ESGResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ResponseID == uuid.Nil {
		r.ResponseID = uuid.New()
	}
	return nil
}
