package restapi

import (
	"net/http"

	"ownerboard.dev/internal/query"
)

func (api *RestAPI) topStatesHandler(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", query.ParseLimit, query.DefaultStatesLimit)
	api.sendResponse(w, r, api.Engine.TopStates(limit))
}

func (api *RestAPI) topCitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", query.ParseLimit, query.DefaultCitiesLimit)
	api.sendResponse(w, r, api.Engine.TopCities(limit))
}
