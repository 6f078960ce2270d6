package restapi

import (
	"net/http"

	"bikeflow.urbandata.org/internal/models"
	"bikeflow.urbandata.org/internal/utils"
)

// stationHandler returns the traffic entry for a single station. The radius
// scale is still computed over the whole filtered station set, so the entry
// matches what the full station-traffic list would report.
func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	center, fieldErrors := utils.ParseMinutesParam(r.URL.Query(), "minutes", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if _, ok := api.Manager.StationByID(id); !ok {
		api.sendNotFound(w, r)
		return
	}

	data := api.buildStationTraffic(center)
	for _, station := range data.List {
		if station.ID == id {
			response := models.NewEntryResponse(station, models.NewEmptyReferences())
			api.sendResponse(w, r, response)
			return
		}
	}

	api.sendNotFound(w, r)
}
