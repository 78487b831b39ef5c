package datazone

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RankSuffix marks the domain rank columns of the zones file.
const RankSuffix = "_Rank"

// Columns names the identifier columns of the zones file.
type Columns struct {
	// ZoneID is optional; rows are numbered from 1 when the column is absent.
	ZoneID  string
	Council string
}

// DefaultColumns matches the SIMD 2020 ranks file.
func DefaultColumns() Columns {
	return Columns{
		ZoneID:  "Data_Zone",
		Council: "Council_area",
	}
}

var ErrMissingCouncilColumn = errors.New("council column not found in header")

// ReadCSV parses a zones file. Every column ending in "_Rank" becomes a domain rank column;
// other columns are ignored. Any missing or non-integer rank is an error.
func ReadCSV(r io.Reader, columns Columns) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	zoneIdx, councilIdx := -1, -1
	var rankCols []string
	var rankIdx []int
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch {
		case name == columns.Council:
			councilIdx = i
		case columns.ZoneID != "" && name == columns.ZoneID:
			zoneIdx = i
		case strings.HasSuffix(name, RankSuffix):
			rankCols = append(rankCols, name)
			rankIdx = append(rankIdx, i)
		}
	}
	if councilIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingCouncilColumn, columns.Council)
	}
	if len(rankCols) == 0 {
		return nil, ErrNoRankColumns
	}

	var records []DataZoneRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		record := DataZoneRecord{
			ZoneID:  strconv.Itoa(line - 1),
			Council: strings.TrimSpace(row[councilIdx]),
			Ranks:   make([]int, len(rankIdx)),
		}
		if zoneIdx >= 0 {
			record.ZoneID = strings.TrimSpace(row[zoneIdx])
		}
		if record.Council == "" {
			return nil, fmt.Errorf("line %d: %w", line, ErrEmptyCouncil)
		}
		for j, idx := range rankIdx {
			rank, err := strconv.Atoi(strings.TrimSpace(row[idx]))
			if err != nil {
				return nil, fmt.Errorf("line %d, column %s: invalid rank %q", line, rankCols[j], row[idx])
			}
			record.Ranks[j] = rank
		}
		records = append(records, record)
	}

	return NewTable(rankCols, records)
}
