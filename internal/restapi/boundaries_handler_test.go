package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundariesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/boundaries.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry, refs := entryOf(t, model)
	assert.Equal(t, "Name", entry["nameProperty"])

	center := entry["center"].([]interface{})
	assert.InDelta(t, 57.55, center[0], 1e-9)
	assert.InDelta(t, -3.2, center[1], 1e-9)

	bbox := entry["bbox"].([]interface{})
	assert.InDelta(t, 55.8, bbox[0], 1e-9)
	assert.InDelta(t, -4.4, bbox[1], 1e-9)
	assert.InDelta(t, 59.3, bbox[2], 1e-9)
	assert.InDelta(t, -2.0, bbox[3], 1e-9)

	outlines := entry["outlines"].([]interface{})
	require.Len(t, outlines, 4)
	orkney := outlines[3].(map[string]interface{})
	assert.Equal(t, "Orkney Islands", orkney["council"])
	assert.Len(t, orkney["polylines"], 2)

	assert.Equal(t, []interface{}{"Na h-Eileanan Siar"}, entry["unmapped"])
	assert.Len(t, refs["councils"], 3)
}

func TestBoundariesHandler_NoBoundaries(t *testing.T) {
	config := testSimdConfig(t)
	config.BoundariesPath = ""
	api := createTestApiWithConfig(t, config)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/simd/boundaries.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
}
