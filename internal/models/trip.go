package models

import "time"

// Trip is a single rental: the stations it connects and when it happened.
// Trips are immutable once loaded; filtering only ever reads the time-of-day
// component of the two timestamps.
type Trip struct {
	ID             string    `json:"id"`
	StartStationID string    `json:"startStationId"`
	EndStationID   string    `json:"endStationId"`
	StartedAt      time.Time `json:"startedAt"`
	EndedAt        time.Time `json:"endedAt"`
}

func NewTrip(id, startStationID, endStationID string, startedAt, endedAt time.Time) Trip {
	return Trip{
		ID:             id,
		StartStationID: startStationID,
		EndStationID:   endStationID,
		StartedAt:      startedAt,
		EndedAt:        endedAt,
	}
}

// TripListData is the payload of the trips-for-window endpoint.
type TripListData struct {
	List          []Trip `json:"list"`
	FilterMinutes int    `json:"filterMinutes"`
	FilterLabel   string `json:"filterLabel"`
}
