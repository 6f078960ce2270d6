package restapi

import (
	"net/http"
	"time"

	"bikeflow.urbandata.org/internal/app"
	"bikeflow.urbandata.org/internal/metrics"
)

type RestAPI struct {
	*app.Application
	collector   *metrics.Collector
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter.
// collector may be nil; instrumentation is then disabled.
func NewRestAPI(app *app.Application, collector *metrics.Collector) *RestAPI {
	return &RestAPI{
		Application: app,
		collector:   collector,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}
