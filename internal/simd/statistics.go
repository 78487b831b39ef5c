package simd

import (
	"context"
	"log/slog"
	"time"

	"simdshare.ubdc.ac.uk/internal/logging"
)

// Statistics summarises the loaded dataset.
type Statistics struct {
	Source           string         `json:"source"`
	RemoteSource     bool           `json:"remoteSource"`
	BoundariesSource string         `json:"boundariesSource,omitempty"`
	LastUpdated      time.Time      `json:"lastUpdated"`
	Zones            int            `json:"zones"`
	TotalZones       int            `json:"totalZones"`
	Councils         int            `json:"councils"`
	Domains          []string       `json:"domains"`
	Mapped           int            `json:"mappedCouncils"`
	Unmapped         []string       `json:"unmappedCouncils"`
	BoundaryOnly     []string       `json:"boundaryOnlyCouncils"`
	CachedResults    int            `json:"cachedResults"`
	ImportRuntime    time.Duration  `json:"importRuntimeNs"`
	TableCounts      map[string]int `json:"tableCounts,omitempty"`
	// ImportedZones is the row count recorded by the last SQLite import.
	ImportedZones int `json:"importedZones"`
}

func (manager *Manager) Statistics(ctx context.Context) Statistics {
	data := manager.current()

	stats := Statistics{
		Source:           manager.config.ZonesPath,
		RemoteSource:     isRemote(manager.config.ZonesPath),
		BoundariesSource: manager.config.BoundariesPath,
		LastUpdated:      data.lastUpdated,
		Zones:            data.table.Len(),
		TotalZones:       data.calculator.TotalZones(),
		Councils:         len(data.table.CouncilTotals()),
		Domains:          data.table.RankColumns(),
		Mapped:           len(data.join.Matched),
		Unmapped:         data.join.Unmapped,
		BoundaryOnly:     data.join.BoundaryOnly,
		CachedResults:    manager.results.ItemCount(),
		ImportRuntime:    manager.ZoneDB.ImportRuntime(),
	}

	counts, err := manager.ZoneDB.TableCounts(ctx)
	if err != nil {
		logging.LogError(manager.logger, "failed to count zone database tables", err)
	} else {
		stats.TableCounts = counts
	}

	if meta, err := manager.ZoneDB.LastImport(ctx); err == nil {
		stats.ImportedZones = meta.ZoneCount
	} else {
		logging.LogError(manager.logger, "failed to read import metadata", err)
	}

	return stats
}

// PrintStatistics logs the dataset summary.
func (manager *Manager) PrintStatistics(ctx context.Context) {
	stats := manager.Statistics(ctx)
	logging.LogOperation(manager.logger, "dataset_statistics",
		slog.String("source", stats.Source),
		slog.Bool("remote_source", stats.RemoteSource),
		slog.Time("last_updated", stats.LastUpdated),
		slog.Int("zones", stats.Zones),
		slog.Int("total_zones", stats.TotalZones),
		slog.Int("councils", stats.Councils),
		slog.Any("domains", stats.Domains),
		slog.Int("mapped_councils", stats.Mapped),
		slog.Any("unmapped_councils", stats.Unmapped),
		slog.Duration("import_runtime", stats.ImportRuntime))
}
