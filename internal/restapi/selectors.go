package restapi

import (
	"errors"
	"net/http"

	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/models"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/internal/utils"
)

// parseQuery reads the selectors and writes a 400 response when any of them is invalid.
func (api *RestAPI) parseQuery(w http.ResponseWriter, r *http.Request) (shares.Query, bool) {
	table := api.SimdManager.Table()
	query, fieldErrors := utils.ParseQuery(r.URL.Query(), api.DefaultQuery(table), table.RankColumns())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return query, false
	}
	return query, true
}

// computeShares runs the query and reports calculator errors on w.
func (api *RestAPI) computeShares(w http.ResponseWriter, r *http.Request, query shares.Query) (*shares.Result, bool) {
	if ctx := r.Context(); ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return nil, false
	}

	result, err := api.SimdManager.Shares(query)
	switch {
	case err == nil:
		return result, true
	case errors.Is(err, shares.ErrUnknownDomain):
		api.validationErrorResponse(w, r, map[string][]string{"domain": {err.Error()}})
	case errors.Is(err, shares.ErrInvalidBand):
		api.validationErrorResponse(w, r, map[string][]string{"band": {err.Error()}})
	default:
		api.serverErrorResponse(w, r, err)
	}
	return nil, false
}

func (api *RestAPI) domainOptions(table *datazone.Table) []models.SelectOption {
	columns := table.RankColumns()
	options := make([]models.SelectOption, 0, len(columns))
	for _, column := range columns {
		options = append(options, models.SelectOption{Label: datazone.DomainLabel(column), Value: column})
	}
	return options
}

// buildReferences describes the councils an entry mentions, in the order given.
func (api *RestAPI) buildReferences(councils []string) models.ReferencesModel {
	table := api.SimdManager.Table()
	set := api.SimdManager.Boundaries()

	references := models.NewEmptyReferences()
	references.Domains = api.domainOptions(table)
	for _, name := range councils {
		total, err := table.TotalZones(name)
		if err != nil {
			continue
		}
		hasBoundary := false
		if set != nil {
			_, hasBoundary = set.Lookup(name)
		}
		references.Councils = append(references.Councils, models.CouncilReference{
			Name:        name,
			TotalZones:  total,
			HasBoundary: hasBoundary,
		})
	}
	return references
}

func resultCouncils(result *shares.Result) []string {
	names := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		names[i] = row.Council
	}
	return names
}
