package webui

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"ownerboard.dev/internal/app"
	"ownerboard.dev/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// dashboardCSP admits the chart and table libraries loaded from their CDNs.
const dashboardCSP = "default-src 'self'; " +
	"script-src 'self' https://cdn.plot.ly https://cdn.datatables.net; " +
	"style-src 'self' 'unsafe-inline' https://cdn.datatables.net; " +
	"img-src 'self' data:; connect-src 'self'; frame-ancestors 'none';"

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (webUI *WebUI) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", dashboardCSP)

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logging.LogError(webUI.Logger, "failed to render template", err, slog.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
