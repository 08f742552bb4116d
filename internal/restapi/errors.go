package restapi

import (
	"log/slog"
	"net/http"

	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))

	api.sendError(w, r, models.NewErrorResponse(http.StatusInternalServerError, "internal server error"))
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, models.NewErrorResponse(http.StatusMethodNotAllowed, "method not allowed"))
}
