package webui

import (
	"net/http"

	"ownerboard.dev/internal/models"
)

type dashboardData struct {
	Title        string
	Records      int
	DownloadName string
	PageLengths  []int
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	webUI.render(w, "dashboard.html", dashboardData{
		Title:        "Business Owners Dashboard",
		Records:      webUI.Table.Len(),
		DownloadName: models.DownloadFileName,
		PageLengths:  []int{10, 25, 50, 100},
	})
}
