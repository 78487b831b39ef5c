package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/options.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}

func TestOptionsHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/options.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	entry, refs := entryOf(t, model)

	bands, ok := entry["bands"].([]interface{})
	require.True(t, ok)
	require.Len(t, bands, 7)
	first := bands[0].(map[string]interface{})
	assert.Equal(t, "20% least deprived", first["label"])
	assert.Equal(t, "least-20", first["value"])

	domains := entry["domains"].([]interface{})
	require.Len(t, domains, 2)
	health := domains[1].(map[string]interface{})
	assert.Equal(t, "SIMD2020_Health_Domain_Rank", health["value"])
	assert.Equal(t, "SIMD2020 Health Domain Rank", health["label"])

	kinds := entry["shares"].([]interface{})
	require.Len(t, kinds, 2)
	assert.Equal(t, "local share", kinds[0].(map[string]interface{})["label"])

	defaults := entry["defaults"].(map[string]interface{})
	assert.Equal(t, "most-5", defaults["band"])
	assert.Equal(t, "SIMD2020_Rank", defaults["domain"])
	assert.Equal(t, "local_share", defaults["share"])

	councils := refs["councils"].([]interface{})
	assert.Len(t, councils, 4)
}

func TestOptionsHandler_DefaultsFollowTheTable(t *testing.T) {
	api := createTestApi(t)
	api.Config.Dashboard.DefaultRank = "SIMD2016_Rank"
	api.Config.Dashboard.DefaultBand = "least-20"
	api.Config.Dashboard.DefaultShare = "national_share"

	_, model := serveApiAndRetrieveEndpoint(t, api, "/api/simd/options.json?key=TEST")
	entry, _ := entryOf(t, model)

	defaults := entry["defaults"].(map[string]interface{})
	assert.Equal(t, "least-20", defaults["band"])
	assert.Equal(t, "SIMD2020_Rank", defaults["domain"], "an unknown configured domain falls back to the first column")
	assert.Equal(t, "national_share", defaults["share"])
}
