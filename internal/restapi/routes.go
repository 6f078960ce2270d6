package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	}
}

// Routes builds the full handler chain: router, per-key rate limiting, then
// request logging on the outside so rejected requests are logged too.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/where/station-traffic.json", validateAPIKey(api, api.stationTrafficHandler))
	router.HandlerFunc(http.MethodGet, "/api/where/station/:id", validateAPIKey(api, api.stationHandler))
	router.HandlerFunc(http.MethodGet, "/api/where/trips-for-window.json", validateAPIKey(api, api.tripsForWindowHandler))
	router.HandlerFunc(http.MethodGet, "/api/where/stations-for-location.json", validateAPIKey(api, api.stationsForLocationHandler))
	router.HandlerFunc(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))

	// Scrape endpoint; no API key.
	if api.collector != nil {
		router.Handler(http.MethodGet, "/metrics", api.collector.Handler())
	}

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.collector)(handler)
	return handler
}
