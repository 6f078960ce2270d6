package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build collectors without
// colliding with the default one.
type Collector struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec // labels: path, status
	RequestDuration prometheus.Histogram

	AggregationDuration prometheus.Histogram

	StationsLoaded prometheus.Gauge
	TripsLoaded    prometheus.Gauge

	DatasetRefreshes *prometheus.CounterVec // label: result (success|failure)
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeflow_http_requests_total",
			Help: "Total HTTP requests served.",
		}, []string{"path", "status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bikeflow_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bikeflow_aggregation_duration_seconds",
			Help:    "Duration of one filter-and-aggregate pass over the trip set.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		StationsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bikeflow_stations_loaded",
			Help: "Number of stations in the current snapshot.",
		}),
		TripsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bikeflow_trips_loaded",
			Help: "Number of trips in the current snapshot.",
		}),
		DatasetRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeflow_dataset_refreshes_total",
			Help: "Background dataset refresh attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.RequestsTotal, c.RequestDuration,
		c.AggregationDuration,
		c.StationsLoaded, c.TripsLoaded,
		c.DatasetRefreshes,
	)

	return c
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(path, status string, d time.Duration) {
	c.RequestsTotal.WithLabelValues(path, status).Inc()
	c.RequestDuration.Observe(d.Seconds())
}

// ObserveAggregation records one filter-and-aggregate pass.
func (c *Collector) ObserveAggregation(d time.Duration) {
	c.AggregationDuration.Observe(d.Seconds())
}

// SetDatasetSize updates the snapshot gauges.
func (c *Collector) SetDatasetSize(stations, trips int) {
	c.StationsLoaded.Set(float64(stations))
	c.TripsLoaded.Set(float64(trips))
}

// RefreshSucceeded counts a successful background refresh.
func (c *Collector) RefreshSucceeded() {
	c.DatasetRefreshes.WithLabelValues("success").Inc()
}

// RefreshFailed counts a failed background refresh.
func (c *Collector) RefreshFailed() {
	c.DatasetRefreshes.WithLabelValues("failure").Inc()
}

// Handler exposes the registry in Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
