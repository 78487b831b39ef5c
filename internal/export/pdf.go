package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"simdshare.ubdc.ac.uk/internal/shares"
)

func writePDF(w io.Writer, result *shares.Result) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("SIMD share by council"), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("Deprivation level: %s   Domain rank: %s   Share: %s",
		result.Query.Band, result.Query.Domain, result.Query.Kind)
	pdf.CellFormat(0, 6, tr(summary), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Selected data zones: %d of %d", result.SelectionSize, result.TotalZones)),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{60, 30, 35, 27, 28}
	aligns := []string{"L", "R", "R", "R", "R"}

	printHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 234, 240)
		for i, h := range Header(result) {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	printHeader()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range result.Rows {
		if pdf.GetY()+6 > pageHeight-bottom {
			pdf.AddPage()
			printHeader()
		}
		cells := []string{
			row.Council,
			strconv.Itoa(row.TotalZones),
			strconv.Itoa(row.BandCount),
			formatShare(row.LocalShare),
			formatShare(row.NationalShare),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}
