package simd

import (
	"context"
	"log/slog"
	"time"

	"simdshare.ubdc.ac.uk/internal/logging"
)

// refreshPeriodically reloads a remote zones source until Shutdown.
func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			err := manager.Reload(ctx)
			cancel()
			if err != nil {
				// Keep serving the previous dataset.
				logging.LogError(manager.logger, "error reloading zones data", err,
					slog.String("source", manager.config.ZonesPath))
			}
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "stopping zones refresh")
			return
		}
	}
}

// Reload loads the sources again and swaps them in. Results computed from the previous
// dataset are dropped from the cache.
func (manager *Manager) Reload(ctx context.Context) error {
	data, err := manager.load(ctx)
	if err != nil {
		datasetReloads.WithLabelValues("error").Inc()
		return err
	}
	manager.setDataset(data)
	datasetReloads.WithLabelValues("ok").Inc()
	return nil
}
