package bikeshare

import (
	"encoding/json"
	"errors"
	"fmt"

	"bikeflow.urbandata.org/internal/models"
)

// stationRecord matches one station object in the metadata feed. Operators
// publish either a bare JSON array of these or a GBFS-style wrapper with the
// array under data.stations.
type stationRecord struct {
	StationID string  `json:"station_id"`
	ShortName string  `json:"short_name"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Capacity  int     `json:"capacity"`
}

type stationFeed struct {
	Data struct {
		Stations []stationRecord `json:"stations"`
	} `json:"data"`
}

func loadStations(source string) ([]models.Station, error) {
	b, err := rawData(source)
	if err != nil {
		return nil, err
	}
	return parseStations(b)
}

// parseStations decodes station metadata from either supported shape.
func parseStations(b []byte) ([]models.Station, error) {
	var records []stationRecord
	if err := json.Unmarshal(b, &records); err != nil {
		var feed stationFeed
		if err := json.Unmarshal(b, &feed); err != nil {
			return nil, fmt.Errorf("error parsing station metadata: %w", err)
		}
		records = feed.Data.Stations
	}

	stations := make([]models.Station, 0, len(records))
	for i, record := range records {
		id := record.StationID
		if id == "" {
			id = record.ShortName
		}
		if id == "" {
			return nil, fmt.Errorf("station record %d has no station_id or short_name", i)
		}
		stations = append(stations, models.NewStation(id, record.Name, record.Lat, record.Lon, record.Capacity))
	}

	if len(stations) == 0 {
		return nil, errors.New("station metadata contains no stations")
	}
	return stations, nil
}
