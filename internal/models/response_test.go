package models

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	testCode := http.StatusCreated
	testData := map[string]string{"key": "value"}
	testText := "Resource Created"

	currentTimeBeforeCall := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(testCode, testData, testText)
	currentTimeAfterCall := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, testCode, response.Code, "Response code should match input")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, testText, response.Text, "Response text should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.GreaterOrEqual(t, response.CurrentTime, currentTimeBeforeCall)
	assert.LessOrEqual(t, response.CurrentTime, currentTimeAfterCall)
}

func TestNewOKResponse(t *testing.T) {
	testData := map[string]string{"status": "all good"}

	response := NewOKResponse(testData)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, testData, response.Data)
	assert.Equal(t, 2, response.Version)
}

func TestNewEntryResponse(t *testing.T) {
	entry := StationTraffic{
		Station:      NewStation("A32000", "Central Square", 42.3656, -71.1043, 19),
		Arrivals:     2,
		Departures:   3,
		TotalTraffic: 5,
	}
	references := NewEmptyReferences()

	response := NewEntryResponse(entry, references)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, entry, data["entry"])
	assert.Equal(t, references, data["references"])
}

func TestNewListResponse(t *testing.T) {
	list := []Station{NewStation("B12345", "Harvard Yard", 42.3744, -71.1182, 23)}
	references := NewStationReferences(nil)

	response := NewListResponse(list, references)

	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "Response data should be a map")
	assert.Equal(t, list, data["list"])
	assert.Equal(t, references, data["references"])
	assert.NotNil(t, references.Stations, "nil station references should be initialized")
}

func TestNewCurrentTimeData(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	data := NewCurrentTimeData(now)

	assert.Equal(t, now.Format(time.RFC3339), data.Entry.ReadableTime)
	assert.Equal(t, now.UnixNano()/int64(time.Millisecond), data.Entry.Time)
	assert.Empty(t, data.References.Stations)
}
