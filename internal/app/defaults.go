package app

import (
	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/shares"
)

// DefaultQuery is the selector combination shown before the user picks anything. Configured
// defaults that the table cannot serve fall back to the first band and rank column.
func (app *Application) DefaultQuery(table *datazone.Table) shares.Query {
	dash := app.Config.Dashboard

	query := shares.Query{
		Band:   shares.MostDeprived5,
		Domain: dash.DefaultRank,
		Kind:   shares.LocalShare,
	}
	if band, err := shares.ParseBand(dash.DefaultBand); err == nil {
		query.Band = band
	}
	if kind, err := shares.ParseShareKind(dash.DefaultShare); err == nil {
		query.Kind = kind
	}
	if !table.HasRankColumn(query.Domain) {
		query.Domain = table.RankColumns()[0]
	}
	return query
}
