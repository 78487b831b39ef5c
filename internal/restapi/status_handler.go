package restapi

import (
	"net/http"

	"simdshare.ubdc.ac.uk/internal/models"
)

func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	stats := api.SimdManager.Statistics(r.Context())
	api.sendResponse(w, r, models.NewEntryResponse(stats, models.NewEmptyReferences()))
}
