package traffic

import (
	"bikeflow.urbandata.org/internal/models"
)

// Aggregate computes per-station arrival and departure counts over the given
// trips. It returns fresh StationTraffic records in station input order and
// never mutates its inputs, so repeated calls with different trip subsets
// always start from clean counts. A trip referencing a station id absent
// from stations contributes nothing on that side; that is not an error.
func Aggregate(stations []models.Station, trips []models.Trip) []models.StationTraffic {
	departures := make(map[string]int, len(stations))
	arrivals := make(map[string]int, len(stations))
	for _, trip := range trips {
		departures[trip.StartStationID]++
		arrivals[trip.EndStationID]++
	}

	enriched := make([]models.StationTraffic, 0, len(stations))
	for _, station := range stations {
		arr := arrivals[station.ID]
		dep := departures[station.ID]
		enriched = append(enriched, models.StationTraffic{
			Station:      station,
			Arrivals:     arr,
			Departures:   dep,
			TotalTraffic: arr + dep,
		})
	}
	return enriched
}

// MaxTotalTraffic returns the largest TotalTraffic in the set, or 0 for an
// empty set. It is recomputed per aggregation so the radius scale always
// tracks the currently filtered data.
func MaxTotalTraffic(stations []models.StationTraffic) int {
	max := 0
	for _, station := range stations {
		if station.TotalTraffic > max {
			max = station.TotalTraffic
		}
	}
	return max
}
