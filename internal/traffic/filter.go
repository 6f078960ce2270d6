package traffic

import (
	"bikeflow.urbandata.org/internal/models"
)

// FilterByTime returns the trips whose start or end time of day falls within
// 60 minutes of center. NoFilter returns the input slice itself; callers
// must treat that result as read-only.
//
// Distance is absolute, not circular: a center of 1439 and a trip at minute
// 0 are 1439 minutes apart. A window near midnight therefore does not wrap
// to the other end of the day.
func FilterByTime(trips []models.Trip, center Minutes) []models.Trip {
	if center == NoFilter {
		return trips
	}

	filtered := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		started := MinutesOfDay(trip.StartedAt)
		ended := MinutesOfDay(trip.EndedAt)
		if absDelta(started, center) <= window || absDelta(ended, center) <= window {
			filtered = append(filtered, trip)
		}
	}
	return filtered
}

func absDelta(a, b Minutes) Minutes {
	if a < b {
		return b - a
	}
	return a - b
}
