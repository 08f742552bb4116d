package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"ownerboard.dev/internal/query"
)

// debugSampleSize caps the rows dumped for dataType=sample.
const debugSampleSize = 20

type debugData struct {
	Title string
	Pre   string
}

var debugDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	webUI.render(w, "debug_index.html", debugData{
		Title: title,
		Pre:   debugDumper.Sdump(data),
	})
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "summary":
		data = webUI.Engine.Summary()
		title = "Dataset - Summary"
	case "top-states":
		data = webUI.Engine.TopStates(query.DefaultStatesLimit)
		title = "Dataset - Top States"
	case "top-cities":
		data = webUI.Engine.TopCities(query.DefaultCitiesLimit)
		title = "Dataset - Top Cities"
	case "sample":
		rows := webUI.Table.Rows()
		if len(rows) > debugSampleSize {
			rows = rows[:debugSampleSize]
		}
		data = rows
		title = "Dataset - Sample Records"
	case "config":
		data = webUI.Config
		title = "Application - Config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, top-states, top-cities, sample, config.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}
