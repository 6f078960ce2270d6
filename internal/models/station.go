package models

// Station is the identity record for a dock: id, name, and position. Derived
// traffic counts never live here; they belong to StationTraffic so that a
// re-aggregation always starts from clean records.
type Station struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Capacity int     `json:"capacity"`
}

func NewStation(id, name string, lat, lon float64, capacity int) Station {
	return Station{
		ID:       id,
		Name:     name,
		Lat:      lat,
		Lon:      lon,
		Capacity: capacity,
	}
}

// StationTraffic is a Station enriched with the counts derived from one trip
// subset, plus the display hints computed from them.
type StationTraffic struct {
	Station
	Arrivals     int     `json:"arrivals"`
	Departures   int     `json:"departures"`
	TotalTraffic int     `json:"totalTraffic"`
	FlowBucket   float64 `json:"flowBucket"`
	Radius       float64 `json:"radius"`
}

// StationTrafficData is the payload of the station-traffic endpoint.
type StationTrafficData struct {
	List            []StationTraffic `json:"list"`
	MaxTotalTraffic int              `json:"maxTotalTraffic"`
	FilterMinutes   int              `json:"filterMinutes"`
	FilterLabel     string           `json:"filterLabel"`
}
