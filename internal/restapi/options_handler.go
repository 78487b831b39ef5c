package restapi

import (
	"net/http"

	"simdshare.ubdc.ac.uk/internal/models"
	"simdshare.ubdc.ac.uk/internal/shares"
)

func (api *RestAPI) optionsHandler(w http.ResponseWriter, r *http.Request) {
	table := api.SimdManager.Table()
	defaults := api.DefaultQuery(table)

	bands := make([]models.SelectOption, 0, len(shares.Bands))
	for _, band := range shares.Bands {
		bands = append(bands, models.SelectOption{Label: string(band), Value: band.ID()})
	}

	kinds := make([]models.SelectOption, 0, len(shares.ShareKinds))
	for _, kind := range shares.ShareKinds {
		kinds = append(kinds, models.SelectOption{Label: kind.Label(), Value: string(kind)})
	}

	entry := models.OptionsEntry{
		Bands:   bands,
		Domains: api.domainOptions(table),
		Shares:  kinds,
		Defaults: models.SelectorDefaults{
			Band:   defaults.Band.ID(),
			Domain: defaults.Domain,
			Share:  string(defaults.Kind),
		},
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(table.Councils())))
}
