package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"simdshare.ubdc.ac.uk/internal/shares"
)

func writeCSV(w io.Writer, result *shares.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(result)); err != nil {
		return err
	}
	for _, row := range result.Rows {
		record := []string{
			row.Council,
			strconv.Itoa(row.TotalZones),
			strconv.Itoa(row.BandCount),
			formatShare(row.LocalShare),
			formatShare(row.NationalShare),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
