package restapi

import (
	"net/http"
	"strconv"
	"strings"

	"ownerboard.dev/internal/query"
)

const (
	defaultTableStart  = 0
	defaultTableLength = 25
)

// tablePage is the DataTables server-side response: a query.Page plus the
// request counter the client uses to discard stale responses.
type tablePage struct {
	Draw int `json:"draw"`
	query.Page
}

func (api *RestAPI) tableHandler(w http.ResponseWriter, r *http.Request) {
	start := intParam(r, "start", query.ParseOffset, defaultTableStart)
	length := intParam(r, "length", query.ParsePageSize, defaultTableLength)
	search := strings.TrimSpace(r.URL.Query().Get("search[value]"))

	page, err := api.Engine.SearchPage(search, start, length)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	// draw is only echoed; a non-numeric value is reported as 0
	draw, _ := strconv.Atoi(r.URL.Query().Get("draw"))

	api.sendResponse(w, r, tablePage{Draw: draw, Page: page})
}
