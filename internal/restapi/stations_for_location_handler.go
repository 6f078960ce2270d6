package restapi

import (
	"net/http"

	"bikeflow.urbandata.org/internal/models"
	"bikeflow.urbandata.org/internal/utils"
)

const maxStationsForLocation = 100

// stationsForLocationHandler returns station identity records near a point,
// closest first. This is the viewport helper a map client calls while panning.
func (api *RestAPI) stationsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", nil)
	lon, _ := utils.ParseFloatParam(queryParams, "lon", fieldErrors)
	radius, _ := utils.ParseFloatParam(queryParams, "radius", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	locationErrors := utils.ValidateLocationParams(lat, lon, radius)
	if len(locationErrors) > 0 {
		api.validationErrorResponse(w, r, locationErrors)
		return
	}

	stations := api.Manager.StationsForLocation(lat, lon, radius, maxStationsForLocation)
	if stations == nil {
		stations = []models.Station{}
	}

	response := models.NewListResponse(stations, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
