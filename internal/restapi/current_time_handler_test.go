package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/current-time.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	now := time.Now().UnixMilli()
	assert.InDelta(t, now, model.CurrentTime, 5000)

	entry, refs := entryOf(t, model)
	readable, ok := entry["readableTime"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, readable)
	require.NoError(t, err)
	assert.WithinDuration(t, time.UnixMilli(now), parsed, 5*time.Second)

	ts, ok := entry["time"].(float64)
	require.True(t, ok)
	assert.InDelta(t, float64(now), ts, 5000)

	for _, field := range []string{"councils", "domains"} {
		list, ok := refs[field].([]interface{})
		require.True(t, ok, field)
		assert.Empty(t, list, field)
	}
}

func TestCurrentTimeHandlerCalledDirectly(t *testing.T) {
	api := createTestApi(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/simd/current-time.json", nil)
	api.currentTimeHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"readableTime"`)
}

func TestCurrentTimeHandlerInvalidKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/simd/current-time.json?key=invalid_key")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}
