package appconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML config file. Zero values mean "not set".
type FileConfig struct {
	Server struct {
		Port           int      `yaml:"port"`
		Env            string   `yaml:"env"`
		ApiKeys        []string `yaml:"api_keys"`
		ExemptApiKeys  []string `yaml:"exempt_api_keys"`
		RateLimit      int      `yaml:"rate_limit"`
		AllowedOrigins []string `yaml:"allowed_origins"`
		Verbose        bool     `yaml:"verbose"`
	} `yaml:"server"`
	Data      DataConfig       `yaml:"data"`
	Dashboard *DashboardConfig `yaml:"dashboard"`
}

// DataConfig locates the zones table and boundaries.
type DataConfig struct {
	ZonesPath      string `yaml:"zones_path"`
	BoundariesPath string `yaml:"boundaries_path"`
	NameProperty   string `yaml:"name_property"`
	ZoneIDColumn   string `yaml:"zone_id_column"`
	CouncilColumn  string `yaml:"council_column"`
	// TotalZones is nil when the key is absent. An explicit 0 means the rows loaded.
	TotalZones      *int   `yaml:"total_zones"`
	DataPath        string `yaml:"data_path"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	RefreshMinutes  int    `yaml:"refresh_minutes"`
}

func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.Dashboard != nil {
		cfg.Dashboard.fillDefaults()
	}
	return &cfg, nil
}

// fillDefaults keeps the default for every dashboard field the file leaves out.
func (d *DashboardConfig) fillDefaults() {
	def := DefaultDashboardConfig()
	if d.Title == "" {
		d.Title = def.Title
	}
	if d.DefaultBand == "" {
		d.DefaultBand = def.DefaultBand
	}
	if d.DefaultRank == "" {
		d.DefaultRank = def.DefaultRank
	}
	if d.DefaultShare == "" {
		d.DefaultShare = def.DefaultShare
	}
	if d.CenterLat == 0 && d.CenterLon == 0 {
		d.CenterLat, d.CenterLon = def.CenterLat, def.CenterLon
	}
	if d.Zoom == 0 {
		d.Zoom = def.Zoom
	}
	if d.MapStyle == "" {
		d.MapStyle = def.MapStyle
	}
	if d.ColorScale == "" {
		d.ColorScale = def.ColorScale
	}
	if d.Opacity == 0 {
		d.Opacity = def.Opacity
	}
	if d.FontColor == "" {
		d.FontColor = def.FontColor
	}
	if d.Background == "" {
		d.Background = def.Background
	}
	if d.MapPaper == "" {
		d.MapPaper = def.MapPaper
	}
}
