package export

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// naValue is the literal rendered for metrics that were never supplied.
// A recorded zero renders as "0"; NULL renders as "N/A".
const naValue = "N/A"

var enPrinter = message.NewPrinter(language.English)

// formatNumber renders a quantity with thousands separators (1,000) and at
// most two fraction digits.
func formatNumber(v *float64) string {
	if v == nil {
		return naValue
	}
	if *v == math.Trunc(*v) {
		return enPrinter.Sprint(number.Decimal(*v, number.MaxFractionDigits(0)))
	}
	return enPrinter.Sprint(number.Decimal(*v, number.MaxFractionDigits(2)))
}

// formatMoney prefixes the rupee sign (INR amounts throughout).
func formatMoney(v *float64) string {
	if v == nil {
		return naValue
	}
	return "₹" + formatNumber(v)
}

// formatPercent renders ratio fields with two decimals and a % suffix.
func formatPercent(v *float64) string {
	if v == nil {
		return naValue
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// formatPercentPlain renders two decimals without the suffix, for columns
// whose header already carries (%).
func formatPercentPlain(v *float64) string {
	if v == nil {
		return naValue
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// formatCarbonIntensity uses six decimals: carbon intensity is tCO2e per rupee
// and collapses to 0.00 at two decimals for any realistic revenue.
func formatCarbonIntensity(v *float64) string {
	if v == nil {
		return naValue
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

// formatPlain renders the value without separators or padding, for the
// historical table where the column header carries the unit.
func formatPlain(v *float64) string {
	if v == nil {
		return naValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
