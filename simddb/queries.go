package simddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"simdshare.ubdc.ac.uk/internal/datazone"
)

var (
	ErrNotImported = errors.New("no zones imported")
	// ErrCouncilMismatch means the stored council totals differ from the ones expected by an import.
	ErrCouncilMismatch = errors.New("zone database disagrees with loaded table")
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// CouncilZoneCount is the number of stored zones for one council.
type CouncilZoneCount struct {
	Council string
	Zones   int
}

// ZoneRank is one data zone with its rank in a single domain.
type ZoneRank struct {
	RowIndex int    `json:"row"`
	ZoneID   string `json:"zoneId"`
	Council  string `json:"council"`
	Domain   string `json:"domain"`
	Rank     int    `json:"rank"`
}

// ImportMetadata describes the last import.
type ImportMetadata struct {
	Source     string
	ZoneCount  int
	ImportedAt time.Time
}

// CouncilTotals returns zone counts per council, largest first and then by name.
func (c *Client) CouncilTotals(ctx context.Context) ([]CouncilZoneCount, error) {
	return councilTotals(ctx, c.DB)
}

func councilTotals(ctx context.Context, q queryer) ([]CouncilZoneCount, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT council, COUNT(*) AS zones
		FROM data_zones
		GROUP BY council
		ORDER BY zones DESC, council ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying council totals: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var totals []CouncilZoneCount
	for rows.Next() {
		var total CouncilZoneCount
		if err := rows.Scan(&total.Council, &total.Zones); err != nil {
			return nil, fmt.Errorf("error scanning council total: %w", err)
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

func verifyCouncilTotals(stored []CouncilZoneCount, expected []datazone.CouncilTotal) error {
	if len(stored) != len(expected) {
		return fmt.Errorf("%w: %d councils stored, %d loaded", ErrCouncilMismatch, len(stored), len(expected))
	}
	for i := range expected {
		if stored[i].Council != expected[i].Council || stored[i].Zones != expected[i].Zones {
			return fmt.Errorf("%w: council %q", ErrCouncilMismatch, expected[i].Council)
		}
	}
	return nil
}

// CouncilExists matches the council name exactly.
func (c *Client) CouncilExists(ctx context.Context, council string) (bool, error) {
	var exists int
	err := c.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM data_zones WHERE council = ?)`, council).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking council: %w", err)
	}
	return exists == 1, nil
}

// ZonesForCouncil lists a council's zones ordered by rank in the domain, ties in file order.
func (c *Client) ZonesForCouncil(ctx context.Context, council, domain string) ([]ZoneRank, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT z.row_index, z.zone_id, z.council, r.domain, r.domain_rank
		FROM data_zones z
		JOIN zone_ranks r ON r.row_index = z.row_index
		WHERE z.council = ? AND r.domain = ?
		ORDER BY r.domain_rank ASC, z.row_index ASC
	`, council, domain)
	if err != nil {
		return nil, fmt.Errorf("error querying zones for council: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	zones := []ZoneRank{}
	for rows.Next() {
		var zone ZoneRank
		if err := rows.Scan(&zone.RowIndex, &zone.ZoneID, &zone.Council, &zone.Domain, &zone.Rank); err != nil {
			return nil, fmt.Errorf("error scanning zone: %w", err)
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

// LastImport returns ErrNotImported when the database is empty.
func (c *Client) LastImport(ctx context.Context) (*ImportMetadata, error) {
	var meta ImportMetadata
	var importedAt int64
	err := c.DB.QueryRowContext(ctx,
		`SELECT source, zone_count, imported_at FROM import_metadata WHERE id = 1`).
		Scan(&meta.Source, &meta.ZoneCount, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotImported
	}
	if err != nil {
		return nil, fmt.Errorf("error reading import metadata: %w", err)
	}
	meta.ImportedAt = time.Unix(importedAt, 0)
	return &meta, nil
}
