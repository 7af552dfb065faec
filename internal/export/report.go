package export

import (
	"time"

	"esg-backend/internal/models"
)

// The report builder shapes responses into one logical tabular layout that
// both encoders (xlsx, PDF) consume, so the formatting rules live in exactly
// one place.

// RGB is a section header fill color.
type RGB struct {
	R, G, B int
}

// Section fill colors, one per metric domain.
var (
	colorEnvironmental = RGB{34, 197, 94}
	colorSocial        = RGB{59, 130, 246}
	colorGovernance    = RGB{147, 51, 234}
	colorCalculated    = RGB{107, 114, 128}
)

// Row is one metric line: name, formatted value, unit.
type Row struct {
	Metric string
	Value  string
	Unit   string
}

// Section is one color-coded metric table.
type Section struct {
	Title string
	Color RGB
	Rows  []Row
}

// Header is the title block preceding the tables.
type Header struct {
	Name          string
	Email         string
	GeneratedOn   string
	FinancialYear string
}

// Table is a flat grid, used for the one-row-per-response historical view.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Report is the full logical document.
type Report struct {
	Title      string
	Header     Header
	Sections   []Section
	Historical *Table // nil for single-response exports
}

// BuildSummaryReport shapes the caller's full history: the newest response in
// the fixed section layout plus the historical trend table, newest first.
// Responses are expected ordered by creation time descending.
func BuildSummaryReport(user *models.User, list []models.ESGResponse, generatedAt time.Time) (*Report, error) {
	if len(list) == 0 {
		return nil, ErrEmptyDataset
	}
	r := buildReport("ESG Questionnaire Summary", user, &list[0], generatedAt)
	r.Historical = buildHistoricalTable(list)
	return r, nil
}

// BuildDetailReport shapes a single response, no historical table.
func BuildDetailReport(user *models.User, resp *models.ESGResponse, generatedAt time.Time) (*Report, error) {
	if resp == nil {
		return nil, ErrEmptyDataset
	}
	return buildReport("ESG Response Details", user, resp, generatedAt), nil
}

func buildReport(title string, user *models.User, resp *models.ESGResponse, generatedAt time.Time) *Report {
	return &Report{
		Title: title,
		Header: Header{
			Name:          user.Name,
			Email:         user.Email,
			GeneratedOn:   generatedAt.Format("02/01/2006"),
			FinancialYear: resp.FinancialYear,
		},
		Sections: []Section{
			{
				Title: "Environmental Metrics",
				Color: colorEnvironmental,
				Rows: []Row{
					{"Total Electricity Consumption", formatNumber(resp.TotalElectricityConsumption), "kWh"},
					{"Renewable Electricity Consumption", formatNumber(resp.RenewableElectricityConsumption), "kWh"},
					{"Total Fuel Consumption", formatNumber(resp.TotalFuelConsumption), "liters"},
					{"Carbon Emissions", formatNumber(resp.CarbonEmissions), "T CO2e"},
				},
			},
			{
				Title: "Social Metrics",
				Color: colorSocial,
				Rows: []Row{
					{"Total Employees", formatNumber(resp.TotalEmployees), ""},
					{"Female Employees", formatNumber(resp.FemaleEmployees), ""},
					{"Avg Training Hours per Employee", formatNumber(resp.AvgTrainingHoursPerEmployee), "hours"},
					{"Community Investment Spend", formatMoney(resp.CommunityInvestmentSpend), "INR"},
				},
			},
			{
				Title: "Governance Metrics",
				Color: colorGovernance,
				Rows: []Row{
					{"Independent Board Members", formatPercent(resp.IndependentBoardMembersPercent), ""},
					{"Data Privacy Policy", formatBool(resp.HasDataPrivacyPolicy), ""},
					{"Total Revenue", formatMoney(resp.TotalRevenue), "INR"},
				},
			},
			{
				Title: "Calculated Metrics",
				Color: colorCalculated,
				Rows: []Row{
					{"Carbon Intensity", formatCarbonIntensity(resp.CarbonIntensity), "T CO2e/INR"},
					{"Renewable Electricity Ratio", formatPercent(resp.RenewableElectricityRatio), ""},
					{"Diversity Ratio", formatPercent(resp.DiversityRatio), ""},
					{"Community Spend Ratio", formatPercent(resp.CommunitySpendRatio), ""},
				},
			},
		},
	}
}

var historicalColumns = []string{
	"Financial Year",
	"Created Date",
	"Total Electricity (kWh)",
	"Renewable Electricity (kWh)",
	"Total Fuel (liters)",
	"Carbon Emissions (T CO2e)",
	"Total Employees",
	"Female Employees",
	"Avg Training Hours",
	"Community Investment (INR)",
	"Independent Board Members (%)",
	"Data Privacy Policy",
	"Total Revenue (INR)",
	"Carbon Intensity (T CO2e/INR)",
	"Renewable Electricity Ratio (%)",
	"Diversity Ratio (%)",
	"Community Spend Ratio (%)",
}

func buildHistoricalTable(list []models.ESGResponse) *Table {
	t := &Table{Columns: historicalColumns}
	for i := range list {
		resp := &list[i]
		t.Rows = append(t.Rows, []string{
			resp.FinancialYear,
			resp.CreatedAt.Format("02/01/2006"),
			formatPlain(resp.TotalElectricityConsumption),
			formatPlain(resp.RenewableElectricityConsumption),
			formatPlain(resp.TotalFuelConsumption),
			formatPlain(resp.CarbonEmissions),
			formatPlain(resp.TotalEmployees),
			formatPlain(resp.FemaleEmployees),
			formatPlain(resp.AvgTrainingHoursPerEmployee),
			formatPlain(resp.CommunityInvestmentSpend),
			formatPlain(resp.IndependentBoardMembersPercent),
			formatBool(resp.HasDataPrivacyPolicy),
			formatPlain(resp.TotalRevenue),
			formatCarbonIntensity(resp.CarbonIntensity),
			formatPercentPlain(resp.RenewableElectricityRatio),
			formatPercentPlain(resp.DiversityRatio),
			formatPercentPlain(resp.CommunitySpendRatio),
		})
	}
	return t
}
