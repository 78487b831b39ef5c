package restapi

import (
	"bytes"
	"net/http"

	"simdshare.ubdc.ac.uk/internal/export"
	"simdshare.ubdc.ac.uk/internal/utils"
)

func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(utils.ExtractIDFromParams(r, "format"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"format": {err.Error()}})
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

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendFile(w, r, format.ContentType(), export.Filename(result, format), buf.Bytes())
}
