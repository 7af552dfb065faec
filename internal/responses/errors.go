package responses

import "errors"

var (
	ErrFinancialYearRequired = errors.New("Financial year is required")
	ErrNegativeValue         = errors.New("Metric values must be non-negative")
	ErrFemaleExceedsTotal    = errors.New("Female employees cannot exceed total employees")
	ErrRenewableExceedsTotal = errors.New("Renewable electricity cannot exceed total electricity consumption")
	ErrBoardPercentRange     = errors.New("Independent board members percent must be between 0 and 100")
	ErrNotFound              = errors.New("Response not found")
	ErrRelatedData           = errors.New("Cannot delete response due to related data")
)
