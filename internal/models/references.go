package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Councils []CouncilReference `json:"councils"`
	Domains  []SelectOption     `json:"domains"`
}

// CouncilReference describes a council area mentioned by an entry.
type CouncilReference struct {
	Name       string `json:"name"`
	TotalZones int    `json:"totalZones"`
	// HasBoundary is false for councils that cannot be drawn on the map.
	HasBoundary bool `json:"hasBoundary"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Councils: []CouncilReference{},
		Domains:  []SelectOption{},
	}
}
