package restapi

import (
	"errors"
	"net/http"

	"simdshare.ubdc.ac.uk/internal/datazone"
	"simdshare.ubdc.ac.uk/internal/models"
	"simdshare.ubdc.ac.uk/internal/shares"
	"simdshare.ubdc.ac.uk/internal/utils"
)

func (api *RestAPI) zonesForCouncilHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	council, err := utils.ValidateAndSanitizeCouncil(utils.ExtractIDFromParams(r, "council"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"council": {err.Error()}})
		return
	}

	table := api.SimdManager.Table()
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		domain = api.DefaultQuery(table).Domain
	} else if err := utils.ValidateDomain(domain); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"domain": {err.Error()}})
		return
	}

	zones, err := api.SimdManager.ZonesForCouncil(ctx, council, domain)
	switch {
	case errors.Is(err, datazone.ErrUnknownCouncil):
		api.sendNotFound(w, r)
		return
	case errors.Is(err, shares.ErrUnknownDomain):
		api.validationErrorResponse(w, r, map[string][]string{"domain": {err.Error()}})
		return
	case err != nil:
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(zones, api.buildReferences([]string{council})))
}
