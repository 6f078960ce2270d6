package restapi

import (
	"net/http"

	"bikeflow.urbandata.org/internal/models"
	"bikeflow.urbandata.org/internal/traffic"
	"bikeflow.urbandata.org/internal/utils"
)

// tripsForWindowHandler returns the trip subset selected by the minutes
// filter. Without a filter it returns every loaded trip.
func (api *RestAPI) tripsForWindowHandler(w http.ResponseWriter, r *http.Request) {
	center, fieldErrors := utils.ParseMinutesParam(r.URL.Query(), "minutes", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered := traffic.FilterByTime(api.Manager.GetTrips(), center)
	if filtered == nil {
		filtered = []models.Trip{}
	}

	data := models.TripListData{
		List:          filtered,
		FilterMinutes: int(center),
		FilterLabel:   center.Format(),
	}
	api.sendResponse(w, r, models.NewOKResponse(data))
}
