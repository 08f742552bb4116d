package restapi

import "net/http"

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, api.Engine.Summary())
}
