package bikeshare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStationsBareArray(t *testing.T) {
	payload := `[
		{"station_id": "A1", "name": "Dock A", "lat": 42.1, "lon": -71.2, "capacity": 10},
		{"short_name": "B2", "name": "Dock B", "lat": 42.2, "lon": -71.3, "capacity": 20}
	]`

	stations, err := parseStations([]byte(payload))
	require.NoError(t, err)
	require.Len(t, stations, 2)

	assert.Equal(t, "A1", stations[0].ID)
	assert.Equal(t, "Dock A", stations[0].Name)
	assert.Equal(t, 42.1, stations[0].Lat)
	assert.Equal(t, -71.2, stations[0].Lon)
	assert.Equal(t, 10, stations[0].Capacity)

	// short_name fills in when station_id is absent.
	assert.Equal(t, "B2", stations[1].ID)
}

func TestParseStationsGBFSWrapper(t *testing.T) {
	payload := `{
		"last_updated": 1718000000,
		"data": {
			"stations": [
				{"station_id": "A1", "name": "Dock A", "lat": 42.1, "lon": -71.2, "capacity": 10}
			]
		}
	}`

	stations, err := parseStations([]byte(payload))
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "A1", stations[0].ID)
}

func TestParseStationsErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"empty array", "[]"},
		{"wrapper without stations", `{"data": {}}`},
		{"record without id", `[{"name": "Anonymous Dock", "lat": 1, "lon": 2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStations([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
