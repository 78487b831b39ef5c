package restapi

import (
	"net/http"

	"simdshare.ubdc.ac.uk/internal/models"
)

func (api *RestAPI) sharesHandler(w http.ResponseWriter, r *http.Request) {
	query, ok := api.parseQuery(w, r)
	if !ok {
		return
	}

	result, ok := api.computeShares(w, r, query)
	if !ok {
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(result, api.buildReferences(resultCouncils(result))))
}
