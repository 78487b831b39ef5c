package restapi

import (
	"net/http"
	"time"

	"simdshare.ubdc.ac.uk/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	data := models.NewCurrentTimeData(time.Now())
	api.sendResponse(w, r, models.NewOKResponse(data))
}
