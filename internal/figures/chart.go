package figures

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"simdshare.ubdc.ac.uk/internal/shares"
)

// ChartOptions sizes the rendered bar chart. Zero values use the defaults.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
}

var ErrNoRows = errors.New("no councils to chart")

// RenderBarPNG draws the queried share per council as a PNG bar chart.
func RenderBarPNG(w io.Writer, result *shares.Result, opts ChartOptions) error {
	if len(result.Rows) == 0 {
		return ErrNoRows
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}

	kind := result.Query.Kind
	bars := make([]chart.Value, len(result.Rows))
	maxShare := 0.0
	for i, row := range result.Rows {
		value := row.Share(kind)
		bars[i] = chart.Value{
			Label: row.Council,
			Value: value,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("1f77b4"),
				StrokeColor: drawing.ColorFromHex("1f77b4"),
			},
		}
		maxShare = math.Max(maxShare, value)
	}

	// An all-zero chart still needs a non-empty range.
	yMax := math.Max(10, math.Ceil(maxShare/10)*10)
	var ticks []chart.Tick
	for v := 0.0; v <= yMax; v += yMax / 5 {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f%%", v)})
	}

	barWidth := (opts.Width - 120) / len(bars)
	if barWidth < 4 {
		barWidth = 4
	}

	graph := chart.BarChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth * 3 / 4,
		BarSpacing: barWidth / 4,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 160},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 90,
			FontSize:            8,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: ticks,
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}
