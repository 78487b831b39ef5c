package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(t *testing.T, entry map[string]interface{}) []map[string]interface{} {
	raw, ok := entry["rows"].([]interface{})
	require.True(t, ok)
	rows := make([]map[string]interface{}, len(raw))
	for i, r := range raw {
		rows[i] = r.(map[string]interface{})
	}
	return rows
}

func TestSharesHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/shares.json")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestSharesHandler_Defaults(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/shares.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry, refs := entryOf(t, model)
	assert.EqualValues(t, 1, entry["selectionSize"])
	assert.EqualValues(t, 20, entry["totalZones"])

	query := entry["query"].(map[string]interface{})
	assert.Equal(t, "5% most deprived", query["band"])
	assert.Equal(t, "SIMD2020_Rank", query["domain"])
	assert.Equal(t, "local_share", query["share"])

	rows := rowsOf(t, entry)
	require.Len(t, rows, 4)
	assert.Equal(t, "Dundee City", rows[0]["council"])
	assert.InDelta(t, 25.0, rows[0]["localShare"], 1e-9)
	assert.InDelta(t, 100.0, rows[0]["nationalShare"], 1e-9)
	assert.Equal(t, "Aberdeen City", rows[1]["council"])
	assert.Equal(t, "Glasgow City", rows[2]["council"])
	assert.Equal(t, "Na h-Eileanan Siar", rows[3]["council"])

	councils := refs["councils"].([]interface{})
	require.Len(t, councils, 4)
	siar := councils[3].(map[string]interface{})
	assert.Equal(t, "Na h-Eileanan Siar", siar["name"])
	assert.EqualValues(t, 4, siar["totalZones"])
	assert.Equal(t, false, siar["hasBoundary"])
	assert.Equal(t, true, councils[0].(map[string]interface{})["hasBoundary"])
}

func TestSharesHandler_SelectorCombinations(t *testing.T) {
	testCases := []struct {
		name      string
		params    url.Values
		wantOrder []string
		wantLocal []float64
	}{
		{
			name:      "20% most deprived by label",
			params:    url.Values{"band": {"20% most deprived"}},
			wantOrder: []string{"Dundee City", "Aberdeen City", "Glasgow City", "Na h-Eileanan Siar"},
			wantLocal: []float64{50.0, 20.0, 14.3, 0},
		},
		{
			name:      "20% least deprived by id",
			params:    url.Values{"band": {"least-20"}},
			wantOrder: []string{"Na h-Eileanan Siar", "Aberdeen City", "Dundee City", "Glasgow City"},
			wantLocal: []float64{50.0, 40.0, 0, 0},
		},
		{
			name:      "national share on the health domain",
			params:    url.Values{"band": {"most-5"}, "domain": {"SIMD2020_Health_Domain_Rank"}, "share": {"national_share"}},
			wantOrder: []string{"Aberdeen City", "Dundee City", "Glasgow City", "Na h-Eileanan Siar"},
			wantLocal: []float64{20.0, 0, 0, 0},
		},
	}

	api := createTestApi(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.params.Set("key", "TEST")
			resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/simd/shares.json?"+tc.params.Encode())
			require.Equal(t, http.StatusOK, resp.StatusCode)

			entry, _ := entryOf(t, model)
			rows := rowsOf(t, entry)
			require.Len(t, rows, len(tc.wantOrder))
			for i, row := range rows {
				assert.Equal(t, tc.wantOrder[i], row["council"])
				assert.InDelta(t, tc.wantLocal[i], row["localShare"], 1e-9)
			}
		})
	}
}

func TestSharesHandler_InvalidSelectors(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiAndRetrieveRaw(t, api, "/api/simd/shares.json?key=TEST&band=most-25&share=regional")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	fieldErrors := decodeFieldErrors(t, body)
	assert.Contains(t, fieldErrors, "band")
	assert.Contains(t, fieldErrors, "share")
	assert.NotContains(t, fieldErrors, "domain")

	resp, body = serveApiAndRetrieveRaw(t, api, "/api/simd/shares.json?key=TEST&domain=SIMD2020_Crime_Domain_Rank")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeFieldErrors(t, body), "domain")
}

func TestSharesHandler_OpenWithoutKeys(t *testing.T) {
	api := createTestApi(t)
	api.Config.ApiKeys = nil

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/simd/shares.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
}
