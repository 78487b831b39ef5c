package datazone

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DataZoneRecord is one row of the deprivation index: a data zone, the council area it
// belongs to and one rank per deprivation domain. Ranks are aligned with Table.RankColumns.
type DataZoneRecord struct {
	ZoneID  string
	Council string
	Ranks   []int
}

// CouncilTotal is the number of data zones a council area holds in the full dataset.
type CouncilTotal struct {
	Council string `json:"council"`
	Zones   int    `json:"zones"`
}

// Table is the loaded deprivation index. It is built once and never mutated afterwards,
// so it can be shared across goroutines without locking.
type Table struct {
	records       []DataZoneRecord
	rankColumns   []string
	rankIndex     map[string]int
	councilTotals []CouncilTotal
	totalsIndex   map[string]int
}

var (
	ErrNoRankColumns  = errors.New("table has no rank columns")
	ErrDuplicateRank  = errors.New("duplicate rank column")
	ErrEmptyCouncil   = errors.New("data zone has no council area")
	ErrRankMismatch   = errors.New("record rank count does not match rank columns")
	ErrEmptyTable     = errors.New("table has no data zones")
	ErrUnknownCouncil = errors.New("unknown council area")
)

// NewTable validates the records and computes the per-council zone totals.
func NewTable(rankColumns []string, records []DataZoneRecord) (*Table, error) {
	if len(rankColumns) == 0 {
		return nil, ErrNoRankColumns
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	rankIndex := make(map[string]int, len(rankColumns))
	for i, column := range rankColumns {
		if _, exists := rankIndex[column]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRank, column)
		}
		rankIndex[column] = i
	}

	counts := make(map[string]int)
	for i, record := range records {
		if record.Council == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyCouncil)
		}
		if len(record.Ranks) != len(rankColumns) {
			return nil, fmt.Errorf("row %d: %w (got %d, want %d)", i+1, ErrRankMismatch, len(record.Ranks), len(rankColumns))
		}
		counts[record.Council]++
	}

	totals := make([]CouncilTotal, 0, len(counts))
	for council, zones := range counts {
		totals = append(totals, CouncilTotal{Council: council, Zones: zones})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Zones != totals[j].Zones {
			return totals[i].Zones > totals[j].Zones
		}
		return totals[i].Council < totals[j].Council
	})

	totalsIndex := make(map[string]int, len(totals))
	for i, total := range totals {
		totalsIndex[total.Council] = i
	}

	return &Table{
		records:       records,
		rankColumns:   append([]string(nil), rankColumns...),
		rankIndex:     rankIndex,
		councilTotals: totals,
		totalsIndex:   totalsIndex,
	}, nil
}

// Len returns the number of data zones.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the row at index i in file order. The Ranks slice must not be modified.
func (t *Table) Record(i int) DataZoneRecord {
	return t.records[i]
}

// RankColumns returns the domain rank column names in file order.
func (t *Table) RankColumns() []string {
	return append([]string(nil), t.rankColumns...)
}

func (t *Table) RankIndex(column string) (int, bool) {
	i, ok := t.rankIndex[column]
	return i, ok
}

func (t *Table) HasRankColumn(column string) bool {
	_, ok := t.rankIndex[column]
	return ok
}

// Rank returns the rank of row i for the column at rankIdx.
func (t *Table) Rank(i, rankIdx int) int {
	return t.records[i].Ranks[rankIdx]
}

// CouncilTotals returns the zone count of every council, largest first.
func (t *Table) CouncilTotals() []CouncilTotal {
	return append([]CouncilTotal(nil), t.councilTotals...)
}

// Councils returns the distinct council names in alphabetical order.
func (t *Table) Councils() []string {
	names := make([]string, 0, len(t.councilTotals))
	for _, total := range t.councilTotals {
		names = append(names, total.Council)
	}
	sort.Strings(names)
	return names
}

// TotalZones returns the number of data zones in the given council area.
func (t *Table) TotalZones(council string) (int, error) {
	i, ok := t.totalsIndex[council]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCouncil, council)
	}
	return t.councilTotals[i].Zones, nil
}

// DomainLabel turns a rank column name into the label shown in selectors,
// e.g. "SIMD2020_Health_Domain_Rank" becomes "SIMD2020 Health Domain Rank".
func DomainLabel(column string) string {
	return strings.ReplaceAll(column, "_", " ")
}
