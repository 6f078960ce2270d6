package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollectorObservations(t *testing.T) {
	c := NewCollector()

	c.ObserveRequest("/api/where/station-traffic.json", "200", 3*time.Millisecond)
	c.ObserveAggregation(time.Millisecond)
	c.SetDatasetSize(12, 3400)
	c.RefreshSucceeded()
	c.RefreshFailed()

	body := scrape(t, c)

	assert.Contains(t, body, `bikeflow_http_requests_total{path="/api/where/station-traffic.json",status="200"} 1`)
	assert.Contains(t, body, "bikeflow_stations_loaded 12")
	assert.Contains(t, body, "bikeflow_trips_loaded 3400")
	assert.Contains(t, body, `bikeflow_dataset_refreshes_total{result="success"} 1`)
	assert.Contains(t, body, `bikeflow_dataset_refreshes_total{result="failure"} 1`)
	assert.True(t, strings.Contains(body, "bikeflow_aggregation_duration_seconds_count 1"))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()

	a.SetDatasetSize(5, 10)

	assert.Contains(t, scrape(t, a), "bikeflow_stations_loaded 5")
	assert.Contains(t, scrape(t, b), "bikeflow_stations_loaded 0")
}
