package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"simdshare.ubdc.ac.uk/internal/app"
	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/logging"
	"simdshare.ubdc.ac.uk/internal/models"
	"simdshare.ubdc.ac.uk/internal/simd"
)

func testSimdConfig(t *testing.T) simd.Config {
	return simd.Config{
		ZonesPath:      models.GetFixturePath(t, "simd_zones.csv"),
		BoundariesPath: models.GetFixturePath(t, "councils.geojson"),
		TotalZones:     20,
		DataPath:       ":memory:",
		Env:            appconf.Test,
	}
}

// createTestApi creates a new restAPI instance with a SIMD manager loaded from the fixtures.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, testSimdConfig(t))
}

func createTestApiWithConfig(t *testing.T, simdConfig simd.Config) *RestAPI {
	simdManager, err := simd.InitManager(context.Background(), simdConfig, nil)
	require.NoError(t, err)
	t.Cleanup(simdManager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			Dashboard: appconf.DefaultDashboardConfig(),
		},
		SimdConfig:  simdConfig,
		Logger:      slog.Default(),
		SimdManager: simdManager,
	}

	return &RestAPI{Application: app}
}

func newTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveRaw(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

// serveApiAndRetrieveRaw returns the undecoded body, for binary endpoints and error payloads.
func serveApiAndRetrieveRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := newTestServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

type fieldErrorsBody struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func decodeFieldErrors(t *testing.T, body []byte) map[string][]string {
	var decoded fieldErrorsBody
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded.FieldErrors
}

func entryOf(t *testing.T, model models.ResponseModel) (map[string]interface{}, map[string]interface{}) {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	return entry, refs
}
