package utils

import (
	"fmt"
	"net/url"
	"strings"

	"simdshare.ubdc.ac.uk/internal/shares"
)

const (
	LayoutSingle  = "single"
	LayoutGrouped = "grouped"
)

func invalidFieldMessage(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

// ParseQuery reads the band, domain and share selectors from the URL query. Missing selectors
// take the value from defaults. Invalid values are reported in the returned fieldErrors map,
// which is empty when the query is usable.
func ParseQuery(params url.Values, defaults shares.Query, domains []string) (shares.Query, map[string][]string) {
	fieldErrors := make(map[string][]string)
	query := defaults

	if val := strings.TrimSpace(params.Get("band")); val != "" {
		band, err := shares.ParseBand(val)
		if err != nil {
			fieldErrors["band"] = append(fieldErrors["band"], invalidFieldMessage("band"))
		} else {
			query.Band = band
		}
	}

	if val := strings.TrimSpace(params.Get("domain")); val != "" {
		if err := ValidateDomain(val); err != nil {
			fieldErrors["domain"] = append(fieldErrors["domain"], err.Error())
		} else if !contains(domains, val) {
			fieldErrors["domain"] = append(fieldErrors["domain"], invalidFieldMessage("domain"))
		} else {
			query.Domain = val
		}
	}

	if val := strings.TrimSpace(params.Get("share")); val != "" {
		kind, err := shares.ParseShareKind(val)
		if err != nil {
			fieldErrors["share"] = append(fieldErrors["share"], invalidFieldMessage("share"))
		} else {
			query.Kind = kind
		}
	}

	return query, fieldErrors
}

// ParseLayoutParam returns "single" when layout is absent.
func ParseLayoutParam(params url.Values, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	switch val := strings.TrimSpace(params.Get("layout")); val {
	case "", LayoutSingle:
		return LayoutSingle, fieldErrors
	case LayoutGrouped:
		return LayoutGrouped, fieldErrors
	default:
		fieldErrors["layout"] = append(fieldErrors["layout"], invalidFieldMessage("layout"))
		return LayoutSingle, fieldErrors
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
