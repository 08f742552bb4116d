package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, payload interface{}) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, models.NewErrorResponse(http.StatusNotFound, "resource not found"))
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	w.WriteHeader(response.Code)

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode error response", err,
			slog.String("path", r.URL.Path))
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
