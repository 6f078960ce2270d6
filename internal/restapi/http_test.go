package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"bikeflow.urbandata.org/internal/app"
	"bikeflow.urbandata.org/internal/bikeshare"
	"bikeflow.urbandata.org/internal/logging"
	"bikeflow.urbandata.org/internal/metrics"
	"bikeflow.urbandata.org/internal/models"
)

// createTestAPI builds a RestAPI over the fixture datasets in testdata.
func createTestAPI(t *testing.T) *RestAPI {
	t.Helper()

	dataConfig := bikeshare.Config{
		StationsURL: filepath.Join("../../testdata", "stations.json"),
		TripsURL:    filepath.Join("../../testdata", "trips.csv"),
	}
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	manager, err := bikeshare.InitManager(dataConfig, logger, nil)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: app.Config{
			Env:       "test",
			APIKeys:   []string{"TEST"},
			RateLimit: -1,
		},
		Logger:  logger,
		Manager: manager,
	}

	return NewRestAPI(application, metrics.NewCollector())
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	api := createTestAPI(t)
	return serveAPIAndRetrieveEndpoint(t, api, endpoint)
}

// serveAPI starts a test server for the given RestAPI and registers its
// shutdown with the test cleanup.
func serveAPI(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)
	return server
}

func serveAPIAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// dataMap casts the decoded response data to the generic JSON object shape.
func dataMap(t *testing.T, response models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "could not cast data to expected type")
	return data
}
