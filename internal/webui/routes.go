package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"ownerboard.dev/internal/appconf"
)

// SetWebUIRoutes registers the dashboard page and its assets. The debug dump
// is only served outside production.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.ServeFiles("/static/*filepath", staticFiles())

	if webUI.Config.Env != appconf.Production {
		router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	}
}
