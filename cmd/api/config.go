package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/internal/simd"
)

// flagValues holds the raw command-line values before they are split into the server and data
// configs.
type flagValues struct {
	configPath     string
	port           int
	env            string
	apiKeys        string
	exemptApiKeys  string
	rateLimit      int
	allowedOrigins string
	verbose        bool

	zonesPath      string
	boundariesPath string
	nameProperty   string
	zoneIDColumn   string
	councilColumn  string
	totalZones     int
	dataPath       string
	cacheTTL       time.Duration
	refresh        time.Duration
}

func parseFlags(args []string, output io.Writer) (appconf.Config, simd.Config, error) {
	var fv flagValues
	fs := flag.NewFlagSet("simdshare-api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&fv.configPath, "config", "", "Optional YAML config file; explicitly set flags take precedence")
	fs.IntVar(&fv.port, "port", 4000, "API server port")
	fs.StringVar(&fv.env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&fv.apiKeys, "api-keys", "test", "Comma Separated API Keys (test, etc). Empty leaves the API open")
	fs.StringVar(&fv.exemptApiKeys, "exempt-api-keys", "", "Comma Separated API Keys that are never rate limited")
	fs.IntVar(&fv.rateLimit, "rate-limit", 100, "Requests per second per API key or client (-1 disables)")
	fs.StringVar(&fv.allowedOrigins, "allowed-origins", "", "Comma Separated CORS origins (default any)")
	fs.BoolVar(&fv.verbose, "verbose", false, "Log dataset and request details")

	fs.StringVar(&fv.zonesPath, "zones", "./Derived_Data/SIMD_2020_Ranks_and_Domain_Ranks.csv", "Data zone ranks CSV, local path or URL")
	fs.StringVar(&fv.boundariesPath, "boundaries", "./GIS_data/Scotland_Councils_wgs84_1.json", "Council boundaries GeoJSON (empty disables the map)")
	fs.StringVar(&fv.nameProperty, "name-property", "Name", "GeoJSON property holding the council name")
	fs.StringVar(&fv.zoneIDColumn, "zone-id-column", datazone.DefaultColumns().ZoneID, "CSV column holding the data zone code")
	fs.StringVar(&fv.councilColumn, "council-column", datazone.DefaultColumns().Council, "CSV column holding the council area")
	fs.IntVar(&fv.totalZones, "total-zones", shares.ReferenceTotalZones, "Data zones the bands are sized from (0 uses the rows loaded)")
	fs.StringVar(&fv.dataPath, "data-path", ":memory:", "SQLite file mirroring the zones table")
	fs.DurationVar(&fv.cacheTTL, "cache-ttl", 10*time.Minute, "How long computed shares are cached")
	fs.DurationVar(&fv.refresh, "refresh", 0, "Reload interval for a URL zones source (0 disables)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, simd.Config{}, err
	}

	if fv.configPath != "" {
		fileConfig, err := appconf.LoadFile(fv.configPath)
		if err != nil {
			return appconf.Config{}, simd.Config{}, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fv.overlay(fileConfig, set)

		cfg, simdCfg := fv.build()
		if fileConfig.Dashboard != nil {
			cfg.Dashboard = *fileConfig.Dashboard
		}
		return cfg, simdCfg, validate(cfg, simdCfg)
	}

	cfg, simdCfg := fv.build()
	return cfg, simdCfg, validate(cfg, simdCfg)
}

// overlay copies every value the file sets unless the same setting was given as a flag.
func (fv *flagValues) overlay(file *appconf.FileConfig, set map[string]bool) {
	server := file.Server
	data := file.Data

	if server.Port != 0 && !set["port"] {
		fv.port = server.Port
	}
	if server.Env != "" && !set["env"] {
		fv.env = server.Env
	}
	if len(server.ApiKeys) > 0 && !set["api-keys"] {
		fv.apiKeys = strings.Join(server.ApiKeys, ",")
	}
	if len(server.ExemptApiKeys) > 0 && !set["exempt-api-keys"] {
		fv.exemptApiKeys = strings.Join(server.ExemptApiKeys, ",")
	}
	if server.RateLimit != 0 && !set["rate-limit"] {
		fv.rateLimit = server.RateLimit
	}
	if len(server.AllowedOrigins) > 0 && !set["allowed-origins"] {
		fv.allowedOrigins = strings.Join(server.AllowedOrigins, ",")
	}
	if server.Verbose && !set["verbose"] {
		fv.verbose = true
	}

	if data.ZonesPath != "" && !set["zones"] {
		fv.zonesPath = data.ZonesPath
	}
	if data.BoundariesPath != "" && !set["boundaries"] {
		fv.boundariesPath = data.BoundariesPath
	}
	if data.NameProperty != "" && !set["name-property"] {
		fv.nameProperty = data.NameProperty
	}
	if data.ZoneIDColumn != "" && !set["zone-id-column"] {
		fv.zoneIDColumn = data.ZoneIDColumn
	}
	if data.CouncilColumn != "" && !set["council-column"] {
		fv.councilColumn = data.CouncilColumn
	}
	if data.TotalZones != nil && !set["total-zones"] {
		fv.totalZones = *data.TotalZones
	}
	if data.DataPath != "" && !set["data-path"] {
		fv.dataPath = data.DataPath
	}
	if data.CacheTTLSeconds > 0 && !set["cache-ttl"] {
		fv.cacheTTL = time.Duration(data.CacheTTLSeconds) * time.Second
	}
	if data.RefreshMinutes > 0 && !set["refresh"] {
		fv.refresh = time.Duration(data.RefreshMinutes) * time.Minute
	}
}

func (fv *flagValues) build() (appconf.Config, simd.Config) {
	env := appconf.EnvFlagToEnvironment(fv.env)

	cfg := appconf.Config{
		Port:           fv.port,
		Env:            env,
		ApiKeys:        splitList(fv.apiKeys),
		ExemptApiKeys:  splitList(fv.exemptApiKeys),
		RateLimit:      fv.rateLimit,
		AllowedOrigins: splitList(fv.allowedOrigins),
		Verbose:        fv.verbose,
		Dashboard:      appconf.DefaultDashboardConfig(),
	}

	simdCfg := simd.Config{
		ZonesPath:      fv.zonesPath,
		BoundariesPath: fv.boundariesPath,
		NameProperty:   fv.nameProperty,
		Columns: datazone.Columns{
			ZoneID:  fv.zoneIDColumn,
			Council: fv.councilColumn,
		},
		TotalZones:      fv.totalZones,
		DataPath:        fv.dataPath,
		Env:             env,
		Verbose:         fv.verbose,
		CacheTTL:        fv.cacheTTL,
		RefreshInterval: fv.refresh,
	}

	return cfg, simdCfg
}

func validate(cfg appconf.Config, simdCfg simd.Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if simdCfg.ZonesPath == "" {
		return fmt.Errorf("a zones file is required")
	}
	if simdCfg.TotalZones < 0 {
		return fmt.Errorf("total zones must not be negative, got %d", simdCfg.TotalZones)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
