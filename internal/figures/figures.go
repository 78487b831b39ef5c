package figures

import (
	"fmt"
	"strings"

	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/boundaries"
	"simdshare.ubdc.ac.uk/internal/shares"
)

// TitleText is the heading and the selector summary shown above the bar chart.
type TitleText struct {
	Text     string `json:"text"`
	Subtitle string `json:"subtitle"`
}

// HTML renders the title the way plotly expects it, with the subtitle in a <sub> block.
func (t TitleText) HTML(query shares.Query) string {
	return fmt.Sprintf("%s<br><sub><b>Deprivation level:</b> %s <b>Domain rank:</b> %s <b>Share:</b> %s</sub>",
		t.Text, query.Band, query.Domain, query.Kind)
}

// Title describes the query under a heading.
func Title(prefix string, query shares.Query) TitleText {
	return TitleText{
		Text: prefix,
		Subtitle: fmt.Sprintf("Deprivation level: %s Domain rank: %s Share: %s",
			query.Band, query.Domain, query.Kind),
	}
}

// BarSeries is one bar trace, councils on x in result order.
type BarSeries struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

// BarSeriesFor returns one series for the queried share, or both shares (national first) when
// grouped is set. Grouped series are named for the legend, "National share" and "Local share".
func BarSeriesFor(result *shares.Result, grouped bool) []BarSeries {
	kinds := []shares.ShareKind{result.Query.Kind}
	if grouped {
		kinds = []shares.ShareKind{shares.NationalShare, shares.LocalShare}
	}

	series := make([]BarSeries, 0, len(kinds))
	for _, kind := range kinds {
		name := kind.Label()
		if grouped {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		s := BarSeries{
			Name: name,
			X:    make([]string, len(result.Rows)),
			Y:    make([]float64, len(result.Rows)),
		}
		for i, row := range result.Rows {
			s.X[i] = row.Council
			s.Y[i] = row.Share(kind)
		}
		series = append(series, s)
	}
	return series
}

// ChoroplethSeries colours council boundaries by share.
type ChoroplethSeries struct {
	Locations    []string  `json:"locations"`
	Z            []float64 `json:"z"`
	FeatureIDKey string    `json:"featureidkey"`
	ColorScale   string    `json:"colorscale"`
	Opacity      float64   `json:"marker_opacity"`
	// Unmapped lists councils with data that have no boundary to draw.
	Unmapped []string `json:"unmapped"`
}

// ChoroplethFor maps every council that has a boundary. Councils with data but no boundary are
// listed as unmapped; boundaries with no data are drawn at 0.
func ChoroplethFor(result *shares.Result, set *boundaries.Set, dash appconf.DashboardConfig) ChoroplethSeries {
	series := ChoroplethSeries{
		Locations:    []string{},
		Z:            []float64{},
		FeatureIDKey: "properties." + boundaries.DefaultNameProperty,
		ColorScale:   dash.ColorScale,
		Opacity:      dash.Opacity,
		Unmapped:     []string{},
	}
	if set != nil {
		series.FeatureIDKey = "properties." + set.NameProperty()
	}

	councils := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		councils[i] = row.Council
		if set == nil {
			continue
		}
		if _, ok := set.Lookup(row.Council); ok {
			series.Locations = append(series.Locations, row.Council)
			series.Z = append(series.Z, row.Share(result.Query.Kind))
		}
	}

	join := boundaries.Join(set, councils)
	series.Unmapped = join.Unmapped
	for _, name := range join.BoundaryOnly {
		series.Locations = append(series.Locations, name)
		series.Z = append(series.Z, 0)
	}
	return series
}

// MapLayout positions the map.
type MapLayout struct {
	Style     string  `json:"mapbox_style"`
	Zoom      float64 `json:"mapbox_zoom"`
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	Paper     string  `json:"paper_bgcolor"`
}

// BarLayout styles the bar chart.
type BarLayout struct {
	Title      string `json:"title"`
	TickSuffix string `json:"ticksuffix"`
	FontColor  string `json:"fontColor"`
	Background string `json:"plot_bgcolor"`
}

// Figures is the pair of figures the dashboard shows for one query.
type Figures struct {
	Title     TitleText        `json:"title"`
	Bars      []BarSeries      `json:"bars"`
	BarLayout BarLayout        `json:"barLayout"`
	Map       ChoroplethSeries `json:"map"`
	MapLayout MapLayout        `json:"mapLayout"`
}

// Build assembles both figures for a computed result.
func Build(result *shares.Result, set *boundaries.Set, dash appconf.DashboardConfig, grouped bool) Figures {
	title := Title(dash.Title, result.Query)
	return Figures{
		Title: title,
		Bars:  BarSeriesFor(result, grouped),
		BarLayout: BarLayout{
			Title:      title.HTML(result.Query),
			TickSuffix: "%",
			FontColor:  dash.FontColor,
			Background: dash.Background,
		},
		Map: ChoroplethFor(result, set, dash),
		MapLayout: MapLayout{
			Style:     dash.MapStyle,
			Zoom:      dash.Zoom,
			CenterLat: dash.CenterLat,
			CenterLon: dash.CenterLon,
			Paper:     dash.MapPaper,
		},
	}
}
