package bikeshare

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"bikeflow.urbandata.org/internal/models"
)

// tripTimeLayout is the timestamp format used in operator trip exports.
const tripTimeLayout = "2006-01-02 15:04:05"

// Required trip CSV columns. ride_id is optional; rows without one still
// count toward traffic.
var requiredTripColumns = []string{
	"started_at",
	"ended_at",
	"start_station_id",
	"end_station_id",
}

func loadTrips(source string) ([]models.Trip, int, error) {
	b, err := rawData(source)
	if err != nil {
		return nil, 0, err
	}
	return parseTrips(bytes.NewReader(b))
}

// parseTrips reads a trip CSV. Header order is free; rows with missing
// fields or unparseable timestamps are skipped, not fatal, and the skip
// count is returned so the caller can log it.
func parseTrips(r io.Reader) ([]models.Trip, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("error reading trip CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredTripColumns {
		if _, ok := columns[name]; !ok {
			return nil, 0, fmt.Errorf("trip CSV missing required column %q", name)
		}
	}

	var trips []models.Trip
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("error reading trip CSV row: %w", err)
		}

		trip, ok := tripFromRow(row, columns)
		if !ok {
			skipped++
			continue
		}
		trips = append(trips, trip)
	}

	return trips, skipped, nil
}

func tripFromRow(row []string, columns map[string]int) (models.Trip, bool) {
	field := func(name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	startStation, ok := field("start_station_id")
	if !ok || startStation == "" {
		return models.Trip{}, false
	}
	endStation, ok := field("end_station_id")
	if !ok || endStation == "" {
		return models.Trip{}, false
	}

	startedRaw, ok := field("started_at")
	if !ok {
		return models.Trip{}, false
	}
	startedAt, err := time.Parse(tripTimeLayout, startedRaw)
	if err != nil {
		return models.Trip{}, false
	}

	endedRaw, ok := field("ended_at")
	if !ok {
		return models.Trip{}, false
	}
	endedAt, err := time.Parse(tripTimeLayout, endedRaw)
	if err != nil {
		return models.Trip{}, false
	}

	rideID, _ := field("ride_id")
	return models.NewTrip(rideID, startStation, endStation, startedAt, endedAt), true
}
