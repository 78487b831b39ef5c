package simddb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/logging"
)

// ImportTable replaces the stored zones with the contents of table in a single transaction. The
// stored council totals are compared with expected before committing; on a mismatch the
// transaction is rolled back and the previous import stays in place.
func (c *Client) ImportTable(ctx context.Context, table *datazone.Table, source string, expected []datazone.CouncilTotal) error {
	startTime := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "import_table")

	for _, stmt := range []string{"DELETE FROM zone_ranks", "DELETE FROM data_zones", "DELETE FROM import_metadata"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error clearing previous import: %w", err)
		}
	}

	zoneStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO data_zones (row_index, zone_id, council) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer logging.SafeCloseWithLogging(zoneStmt, c.logger, "close_zone_statement")

	rankStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO zone_ranks (row_index, domain, domain_rank) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer logging.SafeCloseWithLogging(rankStmt, c.logger, "close_rank_statement")

	domains := table.RankColumns()
	for i := 0; i < table.Len(); i++ {
		record := table.Record(i)
		if _, err := zoneStmt.ExecContext(ctx, i, record.ZoneID, record.Council); err != nil {
			return fmt.Errorf("error inserting zone %s: %w", record.ZoneID, err)
		}
		for j, domain := range domains {
			if _, err := rankStmt.ExecContext(ctx, i, domain, record.Ranks[j]); err != nil {
				return fmt.Errorf("error inserting rank %s for zone %s: %w", domain, record.ZoneID, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO import_metadata (id, source, zone_count, imported_at) VALUES (1, ?, ?, ?)`,
		source, table.Len(), time.Now().Unix()); err != nil {
		return fmt.Errorf("error recording import metadata: %w", err)
	}

	stored, err := councilTotals(ctx, tx)
	if err != nil {
		return err
	}
	if err := verifyCouncilTotals(stored, expected); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	runtime := time.Since(startTime)
	c.importRuntime.Store(int64(runtime))
	if c.config.verbose {
		logging.LogOperation(c.logger, "zones_imported",
			slog.String("source", source),
			slog.Int("zones", table.Len()),
			slog.Int("domains", len(domains)),
			slog.Duration("duration", runtime))
	}

	return nil
}
