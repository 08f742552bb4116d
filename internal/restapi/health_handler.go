package restapi

import (
	"net/http"

	"ownerboard.dev/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewHealthModel(api.Table.Len()))
}
