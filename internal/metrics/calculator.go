package metrics

// Calculator for the four derived ESG ratios. Pure functions, shared by the
// submission path and the export path so the formulas live in exactly one place.
//
// A zero denominator yields 0, never NaN or +Inf. Inputs are expected to be
// validated non-negative by the caller.

// CarbonIntensity is carbon emissions per unit of revenue (tCO2e/INR).
func CarbonIntensity(carbonEmissions, totalRevenue float64) float64 {
	if totalRevenue <= 0 {
		return 0
	}
	return carbonEmissions / totalRevenue
}

// RenewableElectricityRatio is the renewable share of electricity, in percent.
func RenewableElectricityRatio(renewable, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return (renewable / total) * 100
}

// DiversityRatio is the female share of the workforce, in percent.
func DiversityRatio(female, totalEmployees float64) float64 {
	if totalEmployees <= 0 {
		return 0
	}
	return (female / totalEmployees) * 100
}

// CommunitySpendRatio is community investment as a share of revenue, in percent.
func CommunitySpendRatio(communitySpend, totalRevenue float64) float64 {
	if totalRevenue <= 0 {
		return 0
	}
	return (communitySpend / totalRevenue) * 100
}

// Raw holds the inputs the four ratios are derived from. Absent values are
// treated as zero.
type Raw struct {
	CarbonEmissions                 float64
	TotalRevenue                    float64
	RenewableElectricityConsumption float64
	TotalElectricityConsumption     float64
	FemaleEmployees                 float64
	TotalEmployees                  float64
	CommunityInvestmentSpend        float64
}

// Derived bundles the four computed ratios.
type Derived struct {
	CarbonIntensity           float64
	RenewableElectricityRatio float64
	DiversityRatio            float64
	CommunitySpendRatio       float64
}

// Derive computes all four ratios from the raw inputs.
func Derive(r Raw) Derived {
	return Derived{
		CarbonIntensity:           CarbonIntensity(r.CarbonEmissions, r.TotalRevenue),
		RenewableElectricityRatio: RenewableElectricityRatio(r.RenewableElectricityConsumption, r.TotalElectricityConsumption),
		DiversityRatio:            DiversityRatio(r.FemaleEmployees, r.TotalEmployees),
		CommunitySpendRatio:       CommunitySpendRatio(r.CommunityInvestmentSpend, r.TotalRevenue),
	}
}
