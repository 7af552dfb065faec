package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDFContentType is the media type for PDF downloads.
const PDFContentType = "application/pdf"

// EncodePDF renders the report as a paginated document: title block, one
// styled table per section with its domain fill color, and (for the
// full-history report) the historical table on a landscape page.
func EncodePDF(r *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, pdfText(r.Title))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, pdfText("Generated for: "+r.Header.Name))
	pdf.Ln(7)
	pdf.Cell(0, 6, pdfText("Email: "+r.Header.Email))
	pdf.Ln(7)
	pdf.Cell(0, 6, pdfText("Generated on: "+r.Header.GeneratedOn))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, pdfText("Financial Year: "+r.Header.FinancialYear))
	pdf.Ln(12)

	for _, section := range r.Sections {
		writePDFSection(pdf, section)
	}

	if r.Historical != nil {
		writePDFHistorical(pdf, r.Historical)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFSection(pdf *fpdf.Fpdf, section Section) {
	// Keep the section heading with at least its header row.
	if pdf.GetY() > 250 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, pdfText(section.Title))
	pdf.Ln(9)

	widths := []float64{95, 55, 40}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(section.Color.R, section.Color.G, section.Color.B)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range []string{"Metric", "Value", "Unit"} {
		pdf.CellFormat(widths[i], 7, pdfText(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range section.Rows {
		for i, v := range []string{row.Metric, row.Value, row.Unit} {
			pdf.CellFormat(widths[i], 7, pdfText(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}

func writePDFHistorical(pdf *fpdf.Fpdf, t *Table) {
	pdf.AddPageFormat("L", fpdf.SizeType{Wd: 210, Ht: 297})

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, "Historical Data")
	pdf.Ln(10)

	width := 277.0 / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 5.5)
	pdf.SetFillColor(colorCalculated.R, colorCalculated.G, colorCalculated.B)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range t.Columns {
		pdf.CellFormat(width, 6, pdfText(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range t.Rows {
		for _, v := range row {
			pdf.CellFormat(width, 6, pdfText(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// pdfText maps cell text onto what the core fonts can draw. The core fonts
// are cp1252: the rupee sign has no glyph there, so money values fall back to
// an "Rs " prefix in the PDF encoding only.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs ")
}
