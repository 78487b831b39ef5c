package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"simdshare.ubdc.ac.uk/internal/shares"
)

// Format is a download format for the computed table.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

var Formats = []Format{CSV, XLSX, PDF}

var ErrUnknownFormat = errors.New("unknown export format")

func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimPrefix(value, ".")))
	for _, f := range Formats {
		if f == format {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

// Filename suggests a download name such as "simd_most-5_SIMD2020_Rank.csv".
func Filename(result *shares.Result, f Format) string {
	return fmt.Sprintf("simd_%s_%s%s", result.Query.Band.ID(), result.Query.Domain, f.Extension())
}

// Write renders the result table in the given format.
func Write(w io.Writer, f Format, result *shares.Result) error {
	switch f {
	case CSV:
		return writeCSV(w, result)
	case XLSX:
		return writeXLSX(w, result)
	case PDF:
		return writePDF(w, result)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Header is the column row shared by every format.
func Header(result *shares.Result) []string {
	return []string{
		"Council_area",
		"Total_datazones",
		string(result.Query.Band),
		string(shares.LocalShare),
		string(shares.NationalShare),
	}
}

func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
