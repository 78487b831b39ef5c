package simd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"simdshare.ubdc.ac.uk/internal/boundaries"
	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/logging"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/simddb"
)

// dataset is one immutable load of the zones table and boundaries.
type dataset struct {
	table       *datazone.Table
	calculator  *shares.Calculator
	boundaries  *boundaries.Set
	join        boundaries.JoinResult
	lastUpdated time.Time
	// generation is set by setDataset and scopes cached results to this load.
	generation uint64
}

// Manager owns the loaded zones table, boundaries and SQLite mirror, and serves share results.
type Manager struct {
	config       Config
	logger       *slog.Logger
	dataMutex    sync.RWMutex
	data         *dataset
	generation   uint64
	ZoneDB       *simddb.Client
	results      *cache.Cache
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the zones source (file or URL) and the optional boundaries, mirrors the
// table into SQLite and prepares the calculator.
func InitManager(ctx context.Context, config Config, logger *slog.Logger) (*Manager, error) {
	config = config.withDefaults()
	baseLogger := logger
	logger = logging.ForComponent(logger, "simd_manager")

	manager := &Manager{
		config:       config,
		logger:       logger,
		results:      cache.New(config.CacheTTL, 2*config.CacheTTL),
		shutdownChan: make(chan struct{}),
	}

	zoneDB, err := simddb.NewClient(simddb.NewConfig(config.DataPath, config.Env, config.Verbose), baseLogger)
	if err != nil {
		return nil, fmt.Errorf("error building zone database: %w", err)
	}
	manager.ZoneDB = zoneDB

	data, err := manager.load(ctx)
	if err != nil {
		_ = zoneDB.Close()
		return nil, err
	}
	manager.setDataset(data)

	if config.refreshEnabled() {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

func (manager *Manager) load(ctx context.Context) (*dataset, error) {
	config := manager.config

	table, err := LoadTable(ctx, config)
	if err != nil {
		return nil, err
	}

	set, err := loadBoundaries(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := manager.ZoneDB.ImportTable(ctx, table, config.ZonesPath, table.CouncilTotals()); err != nil {
		return nil, fmt.Errorf("error importing zones: %w", err)
	}

	if config.TotalZones > 0 && config.TotalZones != table.Len() {
		manager.logger.Warn("total zones differs from rows loaded",
			slog.Int("total_zones", config.TotalZones),
			slog.Int("rows", table.Len()))
	}

	join := boundaries.Join(set, table.Councils())
	if len(join.Unmapped) > 0 {
		manager.logger.Warn("councils without a boundary will not be drawn",
			slog.Any("councils", join.Unmapped))
	}

	return &dataset{
		table:       table,
		calculator:  shares.NewCalculator(table, config.TotalZones),
		boundaries:  set,
		join:        join,
		lastUpdated: time.Now(),
	}, nil
}

func (manager *Manager) setDataset(data *dataset) {
	manager.dataMutex.Lock()
	manager.generation++
	data.generation = manager.generation
	manager.data = data
	manager.dataMutex.Unlock()

	manager.results.Flush()
	zonesLoaded.Set(float64(data.table.Len()))
	unmappedCouncils.Set(float64(len(data.join.Unmapped)))

	if manager.config.Verbose {
		logging.LogOperation(manager.logger, "dataset_updated",
			slog.String("source", manager.config.ZonesPath),
			slog.Int("zones", data.table.Len()))
	}
}

func (manager *Manager) current() *dataset {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.data
}

// Shutdown stops the refresh loop and closes the zone database.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.ZoneDB != nil {
			logging.SafeCloseWithLogging(manager.ZoneDB, manager.logger, "close_zone_database")
		}
	})
}

func (manager *Manager) Config() Config {
	return manager.config
}

func (manager *Manager) Table() *datazone.Table {
	return manager.current().table
}

func (manager *Manager) Calculator() *shares.Calculator {
	return manager.current().calculator
}

// Boundaries returns nil when no boundaries file is configured.
func (manager *Manager) Boundaries() *boundaries.Set {
	return manager.current().boundaries
}

func (manager *Manager) Join() boundaries.JoinResult {
	return manager.current().join
}

// Shares returns the calculator result for query, memoised per selector combination.
func (manager *Manager) Shares(query shares.Query) (*shares.Result, error) {
	return manager.sharesFor(manager.current(), query)
}

// sharesFor computes against data. Cache keys carry the dataset generation, so a result
// stored after a concurrent Reload is never served for the newer dataset.
func (manager *Manager) sharesFor(data *dataset, query shares.Query) (*shares.Result, error) {
	key := fmt.Sprintf("%d|%s|%s|%s", data.generation, query.Band, query.Domain, query.Kind)

	if cached, found := manager.results.Get(key); found {
		calculationsTotal.WithLabelValues(string(query.Band), query.Domain, "hit").Inc()
		return cached.(*shares.Result), nil
	}

	start := time.Now()
	result, err := data.calculator.Calculate(query)
	if err != nil {
		return nil, err
	}
	calculationDuration.Observe(time.Since(start).Seconds())
	calculationsTotal.WithLabelValues(string(query.Band), query.Domain, "miss").Inc()

	manager.results.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

// ZonesForCouncil lists a council's zones from the SQLite mirror ordered by domain rank.
func (manager *Manager) ZonesForCouncil(ctx context.Context, council, domain string) ([]simddb.ZoneRank, error) {
	table := manager.Table()
	if !table.HasRankColumn(domain) {
		return nil, fmt.Errorf("%w: %q", shares.ErrUnknownDomain, domain)
	}
	exists, err := manager.ZoneDB.CouncilExists(ctx, council)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", datazone.ErrUnknownCouncil, council)
	}
	return manager.ZoneDB.ZonesForCouncil(ctx, council, domain)
}
