package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonesForCouncilHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/simd/zones-for-council/Aberdeen%20City.json?key=TEST&domain=SIMD2020_Health_Domain_Rank")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	list := data["list"].([]interface{})
	require.Len(t, list, 5)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "S01006509", first["zoneId"])
	assert.EqualValues(t, 1, first["rank"])
	assert.Equal(t, "SIMD2020_Health_Domain_Rank", first["domain"])
	assert.EqualValues(t, 19, list[4].(map[string]interface{})["rank"])
	assert.Equal(t, false, data["limitExceeded"])

	refs := data["references"].(map[string]interface{})
	councils := refs["councils"].([]interface{})
	require.Len(t, councils, 1)
	assert.Equal(t, "Aberdeen City", councils[0].(map[string]interface{})["name"])
}

func TestZonesForCouncilHandler_DefaultDomain(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/zones-for-council/Dundee%20City?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := model.Data.(map[string]interface{})["list"].([]interface{})
	require.Len(t, list, 4)
	assert.Equal(t, "SIMD2020_Rank", list[0].(map[string]interface{})["domain"])
	assert.EqualValues(t, 1, list[0].(map[string]interface{})["rank"])
}

func TestZonesForCouncilHandler_Errors(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/simd/zones-for-council/Atlantis?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)

	resp, body := serveApiAndRetrieveRaw(t, api, "/api/simd/zones-for-council/Fife%3B%20DROP?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeFieldErrors(t, body), "council")

	resp, body = serveApiAndRetrieveRaw(t, api, "/api/simd/zones-for-council/Fife?key=TEST&domain=SIMD2020_Crime_Domain_Rank")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeFieldErrors(t, body), "domain")
}
