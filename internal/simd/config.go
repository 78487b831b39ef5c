package simd

import (
	"strings"
	"time"

	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/datazone"
)

type Config struct {
	// ZonesPath is a local file or an http(s) URL.
	ZonesPath string
	// BoundariesPath is optional; without it every council is unmapped.
	BoundariesPath string
	NameProperty   string
	Columns        datazone.Columns
	// TotalZones sizes the bands. 0 uses the number of rows loaded.
	TotalZones int
	// DataPath is the SQLite mirror, ":memory:" by default.
	DataPath string
	Env      appconf.Environment
	Verbose  bool
	CacheTTL time.Duration
	// RefreshInterval reloads a URL zones source periodically. Local files are never reloaded.
	RefreshInterval time.Duration
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func (config Config) withDefaults() Config {
	if config.Columns.Council == "" {
		config.Columns = datazone.DefaultColumns()
	}
	if config.DataPath == "" {
		config.DataPath = ":memory:"
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = 10 * time.Minute
	}
	return config
}

func (config Config) refreshEnabled() bool {
	return isRemote(config.ZonesPath) && config.RefreshInterval > 0
}
