package shares

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"simdshare.ubdc.ac.uk/internal/datazone"
)

// ReferenceTotalZones is the number of data zones in SIMD 2020. Band sizes are derived from it,
// so a table loaded from another edition needs its own total.
const ReferenceTotalZones = 6976

var ErrUnknownDomain = errors.New("unknown domain rank column")

// Query is one selector combination from the dashboard.
type Query struct {
	Band   Band      `json:"band"`
	Domain string    `json:"domain"`
	Kind   ShareKind `json:"share"`
}

// CouncilShare is the aggregate for one council area.
type CouncilShare struct {
	Council       string  `json:"council"`
	TotalZones    int     `json:"totalZones"`
	BandCount     int     `json:"bandCount"`
	LocalShare    float64 `json:"localShare"`
	NationalShare float64 `json:"nationalShare"`
}

// Share returns the value of the requested share kind.
func (c CouncilShare) Share(kind ShareKind) float64 {
	if kind == NationalShare {
		return c.NationalShare
	}
	return c.LocalShare
}

// Result holds one row per council of the full dataset, sorted by the requested share.
type Result struct {
	Query Query `json:"query"`
	// SelectionSize is round(totalZones * pct / 100), capped at the table length.
	SelectionSize int            `json:"selectionSize"`
	TotalZones    int            `json:"totalZones"`
	Rows          []CouncilShare `json:"rows"`
}

// Calculator computes council shares over a loaded table. It holds no mutable state.
type Calculator struct {
	table      *datazone.Table
	totalZones int
}

// NewCalculator binds the calculator to a table. A non-positive totalZones falls back to the
// table length.
func NewCalculator(table *datazone.Table, totalZones int) *Calculator {
	if totalZones <= 0 {
		totalZones = table.Len()
	}
	return &Calculator{table: table, totalZones: totalZones}
}

func (c *Calculator) TotalZones() int {
	return c.totalZones
}

// SelectionSize returns how many data zones fall in the band.
func (c *Calculator) SelectionSize(band Band) (int, error) {
	if !band.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBand, band)
	}
	pct, err := band.Percentage()
	if err != nil {
		return 0, err
	}
	n := roundHalfEven(c.totalZones*pct, 100)
	if n > c.table.Len() {
		n = c.table.Len()
	}
	return n, nil
}

// Calculate selects the band's data zones for the domain, counts them per council and derives
// local and national shares.
//
// Zones tied on rank at the cutoff are taken in table row order, so band counts can differ
// slightly from official floor-based figures.
func (c *Calculator) Calculate(query Query) (*Result, error) {
	if _, err := ParseShareKind(string(query.Kind)); err != nil {
		return nil, err
	}
	rankIdx, ok := c.table.RankIndex(query.Domain)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, query.Domain)
	}
	n, err := c.SelectionSize(query.Band)
	if err != nil {
		return nil, err
	}

	selected := c.selectRows(rankIdx, n, query.Band.LeastDeprived())

	counts := make(map[string]int)
	for _, row := range selected {
		counts[c.table.Record(row).Council]++
	}

	totals := c.table.CouncilTotals()
	rows := make([]CouncilShare, 0, len(totals))
	for _, total := range totals {
		bandCount := counts[total.Council]
		rows = append(rows, CouncilShare{
			Council:       total.Council,
			TotalZones:    total.Zones,
			BandCount:     bandCount,
			LocalShare:    percentage(bandCount, total.Zones),
			NationalShare: percentage(bandCount, len(selected)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		si, sj := rows[i].Share(query.Kind), rows[j].Share(query.Kind)
		if si != sj {
			return si > sj
		}
		return rows[i].Council < rows[j].Council
	})

	return &Result{
		Query:         query,
		SelectionSize: len(selected),
		TotalZones:    c.totalZones,
		Rows:          rows,
	}, nil
}

// selectRows returns the row indexes of the n smallest ranks, or the n largest when largest is
// set. The sort is stable so ties keep file order.
func (c *Calculator) selectRows(rankIdx, n int, largest bool) []int {
	order := make([]int, c.table.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ri, rj := c.table.Rank(order[i], rankIdx), c.table.Rank(order[j], rankIdx)
		if largest {
			return ri > rj
		}
		return ri < rj
	})
	return order[:n]
}

// percentage is part/whole*100 rounded half-to-even to one decimal; 0 when whole is 0.
func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.RoundToEven(float64(part)*100/float64(whole)*10) / 10
}

// roundHalfEven divides num by den and rounds the quotient half-to-even using integers only.
func roundHalfEven(num, den int) int {
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		q++
	case 2*r == den && q%2 == 1:
		q++
	}
	return q
}
