package restapi

import (
	"net/http"

	"simdshare.ubdc.ac.uk/internal/figures"
	"simdshare.ubdc.ac.uk/internal/models"
	"simdshare.ubdc.ac.uk/internal/utils"
)

func (api *RestAPI) figuresHandler(w http.ResponseWriter, r *http.Request) {
	layout, fieldErrors := utils.ParseLayoutParam(r.URL.Query(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	query, ok := api.parseQuery(w, r)
	if !ok {
		return
	}

	result, ok := api.computeShares(w, r, query)
	if !ok {
		return
	}

	entry := figures.Build(result, api.SimdManager.Boundaries(), api.Config.Dashboard, layout == utils.LayoutGrouped)
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(resultCouncils(result))))
}
