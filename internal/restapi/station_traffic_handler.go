package restapi

import (
	"net/http"
	"time"

	"bikeflow.urbandata.org/internal/models"
	"bikeflow.urbandata.org/internal/traffic"
	"bikeflow.urbandata.org/internal/utils"
)

// stationTrafficHandler returns every station enriched with arrival and
// departure counts over the trips selected by the optional minutes filter,
// plus the display hints the map layer consumes directly.
func (api *RestAPI) stationTrafficHandler(w http.ResponseWriter, r *http.Request) {
	center, fieldErrors := utils.ParseMinutesParam(r.URL.Query(), "minutes", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	data := api.buildStationTraffic(center)
	api.sendResponse(w, r, models.NewOKResponse(data))
}

// buildStationTraffic runs one full filter-and-aggregate pass. Each call
// starts from the identity records, so derived counts never carry over from
// a previous filter value.
func (api *RestAPI) buildStationTraffic(center traffic.Minutes) models.StationTrafficData {
	stations := api.Manager.GetStations()
	trips := api.Manager.GetTrips()

	start := time.Now()
	filtered := traffic.FilterByTime(trips, center)
	enriched := traffic.Aggregate(stations, filtered)

	maxTotal := traffic.MaxTotalTraffic(enriched)
	scale := traffic.NewRadiusScale(maxTotal, center.Active())
	for i := range enriched {
		enriched[i].Radius = scale.Radius(enriched[i].TotalTraffic)
		enriched[i].FlowBucket = traffic.FlowBucket(enriched[i].Departures, enriched[i].TotalTraffic)
	}
	if api.collector != nil {
		api.collector.ObserveAggregation(time.Since(start))
	}

	return models.StationTrafficData{
		List:            enriched,
		MaxTotalTraffic: maxTotal,
		FilterMinutes:   int(center),
		FilterLabel:     center.Format(),
	}
}
