package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/status.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry, _ := entryOf(t, model)
	assert.EqualValues(t, 20, entry["zones"])
	assert.EqualValues(t, 20, entry["totalZones"])
	assert.EqualValues(t, 4, entry["councils"])
	assert.EqualValues(t, 3, entry["mappedCouncils"])
	assert.Equal(t, false, entry["remoteSource"])
	assert.Equal(t, []interface{}{"SIMD2020_Rank", "SIMD2020_Health_Domain_Rank"}, entry["domains"])

	counts := entry["tableCounts"].(map[string]interface{})
	assert.EqualValues(t, 20, counts["data_zones"])
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/nothing-here.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestMetricsEndpoint(t *testing.T) {
	api := createTestApi(t)
	server := newTestServer(t, api)

	sharesResp, err := http.Get(server.URL + "/api/simd/shares.json?key=TEST")
	require.NoError(t, err)
	_ = sharesResp.Body.Close()

	resp, body := serveApiAndRetrieveRaw(t, api, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `simdshare_http_requests_total{route="shares",status="200"}`)
	assert.Contains(t, string(body), "simdshare_share_calculations_total")
}
