package restapi

import (
	"bytes"
	"net/http"
	"strconv"

	"simdshare.ubdc.ac.uk/internal/figures"
)

const maxChartDimension = 4000

func (api *RestAPI) sharesChartHandler(w http.ResponseWriter, r *http.Request) {
	opts, fieldErrors := parseChartOptions(r)
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

	opts.Title = figures.Title(api.Config.Dashboard.Title, query).Text

	var buf bytes.Buffer
	if err := figures.RenderBarPNG(&buf, result, opts); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendFile(w, r, "image/png", "", buf.Bytes())
}

func parseChartOptions(r *http.Request) (figures.ChartOptions, map[string][]string) {
	fieldErrors := make(map[string][]string)
	var opts figures.ChartOptions

	for _, field := range []struct {
		key   string
		value *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
	} {
		raw := r.URL.Query().Get(field.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 100 || n > maxChartDimension {
			fieldErrors[field.key] = append(fieldErrors[field.key], "must be an integer between 100 and 4000")
			continue
		}
		*field.value = n
	}

	return opts, fieldErrors
}
