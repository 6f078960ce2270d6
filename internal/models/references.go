package models

// ReferencesModel carries related records alongside an entry or list so a
// map client can resolve ids without extra round trips.
type ReferencesModel struct {
	Stations []Station `json:"stations"`
}

// NewEmptyReferences creates a References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Stations: []Station{},
	}
}

// NewStationReferences creates a References model carrying the given station
// identity records.
func NewStationReferences(stations []Station) ReferencesModel {
	if stations == nil {
		stations = []Station{}
	}
	return ReferencesModel{Stations: stations}
}
