package appconf

import "strings"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment. Unknown values fall back to
// Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds the server settings read from flags or the config file.
type Config struct {
	Port           int
	Env            Environment
	ApiKeys        []string
	ExemptApiKeys  []string
	RateLimit      int // requests per second per API key
	AllowedOrigins []string
	Verbose        bool
	Dashboard      DashboardConfig
}

// DashboardConfig carries the figure defaults shown before any selector is changed.
type DashboardConfig struct {
	Title        string  `json:"title" yaml:"title"`
	DefaultBand  string  `json:"defaultBand" yaml:"default_band"`
	DefaultRank  string  `json:"defaultDomain" yaml:"default_domain"`
	DefaultShare string  `json:"defaultShare" yaml:"default_share"`
	CenterLat    float64 `json:"centerLat" yaml:"center_lat"`
	CenterLon    float64 `json:"centerLon" yaml:"center_lon"`
	Zoom         float64 `json:"zoom" yaml:"zoom"`
	MapStyle     string  `json:"mapStyle" yaml:"map_style"`
	ColorScale   string  `json:"colorScale" yaml:"color_scale"`
	Opacity      float64 `json:"opacity" yaml:"opacity"`
	FontColor    string  `json:"fontColor" yaml:"font_color"`
	Background   string  `json:"background" yaml:"background"`
	MapPaper     string  `json:"mapPaper" yaml:"map_paper"`
}

func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Title:        "SIMD 2020 - local and national share by Council",
		DefaultBand:  "5% most deprived",
		DefaultRank:  "SIMD2020_Rank",
		DefaultShare: "local_share",
		CenterLat:    57.834,
		CenterLon:    -5.0,
		Zoom:         5.6,
		MapStyle:     "open-street-map",
		ColorScale:   "Viridis",
		Opacity:      0.6,
		FontColor:    "#a5b1bf",
		Background:   "#282b38",
		MapPaper:     "#aad3df",
	}
}
