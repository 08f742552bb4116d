package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/summary", api.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/api/top-states", api.topStatesHandler)
	router.HandlerFunc(http.MethodGet, "/api/top-cities", api.topCitiesHandler)
	router.HandlerFunc(http.MethodGet, "/api/table", api.tableHandler)
	router.HandlerFunc(http.MethodGet, "/download/csv", api.downloadHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}
