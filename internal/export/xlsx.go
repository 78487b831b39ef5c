package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"simdshare.ubdc.ac.uk/internal/shares"
)

const (
	sharesSheet = "Shares"
	querySheet  = "Query"
)

func writeXLSX(w io.Writer, result *shares.Result) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", sharesSheet); err != nil {
		return err
	}

	header := Header(result)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sharesSheet, "A1", &headerRow); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sharesSheet, "A1", "E1", bold); err != nil {
		return err
	}

	for i, row := range result.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.Council, row.TotalZones, row.BandCount, row.LocalShare, row.NationalShare}
		if err := f.SetSheetRow(sharesSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sharesSheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sharesSheet, "B", "E", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(querySheet); err != nil {
		return err
	}
	queryRows := [][]interface{}{
		{"band", string(result.Query.Band)},
		{"domain", result.Query.Domain},
		{"share", string(result.Query.Kind)},
		{"selection_size", result.SelectionSize},
		{"total_zones", result.TotalZones},
	}
	for i, values := range queryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(querySheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}
