package restapi

import (
	"net/http"

	"simdshare.ubdc.ac.uk/internal/boundaries"
	"simdshare.ubdc.ac.uk/internal/models"
)

// boundariesEntry is the map payload: one outline per council plus the overall extent.
type boundariesEntry struct {
	NameProperty string               `json:"nameProperty"`
	Center       [2]float64           `json:"center"`
	BBox         [4]float64           `json:"bbox"`
	Outlines     []boundaries.Outline `json:"outlines"`
	Unmapped     []string             `json:"unmapped"`
}

func (api *RestAPI) boundariesHandler(w http.ResponseWriter, r *http.Request) {
	set := api.SimdManager.Boundaries()
	join := api.SimdManager.Join()

	if set == nil {
		api.sendNotFound(w, r)
		return
	}

	lat, lon := set.Center()
	bounds := set.Bounds()
	entry := boundariesEntry{
		NameProperty: set.NameProperty(),
		Center:       [2]float64{lat, lon},
		BBox:         [4]float64{bounds.Min(1), bounds.Min(0), bounds.Max(1), bounds.Max(0)},
		Outlines:     set.EncodeOutlines(),
		Unmapped:     join.Unmapped,
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(join.Matched)))
}
