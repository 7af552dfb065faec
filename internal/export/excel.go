package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the media type for xlsx downloads.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet    = "Summary"
	historicalSheet = "Historical Data"
	detailSheet     = "Response Details"
)

// EncodeXLSX renders the report as a workbook: sheets "Summary" and
// "Historical Data" for the full-history report, a single "Response Details"
// sheet for a one-response report.
func EncodeXLSX(r *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := detailSheet
	if r.Historical != nil {
		sheet = summarySheet
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, sheet, r); err != nil {
		return nil, err
	}

	if r.Historical != nil {
		if _, err := f.NewSheet(historicalSheet); err != nil {
			return nil, err
		}
		if err := writeHistoricalSheet(f, historicalSheet, r.Historical); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, r *Report) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}

	row := 1
	if err := setRow(f, sheet, row, r.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	row += 2
	header := []struct {
		label string
		value string
	}{
		{"Generated for:", r.Header.Name},
		{"Email:", r.Header.Email},
		{"Generated on:", r.Header.GeneratedOn},
	}
	for _, h := range header {
		if err := setRow(f, sheet, row, h.label, h.value); err != nil {
			return err
		}
		row++
	}
	row++
	if err := setRow(f, sheet, row, "Financial Year:", r.Header.FinancialYear); err != nil {
		return err
	}
	row += 2

	for _, section := range r.Sections {
		headerStyle, err := sectionHeaderStyle(f, section.Color)
		if err != nil {
			return err
		}
		if err := setRow(f, sheet, row, section.Title); err != nil {
			return err
		}
		row++
		if err := setRow(f, sheet, row, "Metric", "Value", "Unit"); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), headerStyle); err != nil {
			return err
		}
		row++
		for _, line := range section.Rows {
			if err := setRow(f, sheet, row, line.Metric, line.Value, line.Unit); err != nil {
				return err
			}
			row++
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 36); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "C", 18)
}

func writeHistoricalSheet(f *excelize.File, sheet string, t *Table) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	cols := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c
	}
	if err := setRow(f, sheet, 1, cols...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i, r := range t.Rows {
		vals := make([]interface{}, len(r))
		for j, v := range r {
			vals[j] = v
		}
		if err := setRow(f, sheet, i+2, vals...); err != nil {
			return err
		}
	}
	end, err := excelize.ColumnNumberToName(len(t.Columns))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", end, 22)
}

func sectionHeaderStyle(f *excelize.File, c RGB) (int, error) {
	hex := fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
	})
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
