package simd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"simdshare.ubdc.ac.uk/internal/boundaries"
	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/logging"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

func rawSourceData(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", source, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, slog.Default(), "close_download_body")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading %s: unexpected status %s", source, resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}
	return b, nil
}

// LoadTable reads and parses the zones file named by config.
func LoadTable(ctx context.Context, config Config) (*datazone.Table, error) {
	config = config.withDefaults()

	b, err := rawSourceData(ctx, config.ZonesPath)
	if err != nil {
		return nil, fmt.Errorf("error reading zones data: %w", err)
	}

	table, err := datazone.ReadCSV(bytes.NewReader(b), config.Columns)
	if err != nil {
		return nil, fmt.Errorf("error parsing zones data %s: %w", config.ZonesPath, err)
	}
	return table, nil
}

func loadBoundaries(ctx context.Context, config Config) (*boundaries.Set, error) {
	if config.BoundariesPath == "" {
		return nil, nil
	}

	b, err := rawSourceData(ctx, config.BoundariesPath)
	if err != nil {
		return nil, fmt.Errorf("error reading boundaries: %w", err)
	}

	set, err := boundaries.Load(bytes.NewReader(b), config.NameProperty)
	if err != nil {
		return nil, fmt.Errorf("error parsing boundaries %s: %w", config.BoundariesPath, err)
	}
	return set, nil
}
