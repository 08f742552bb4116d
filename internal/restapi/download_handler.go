package restapi

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/models"
)

// downloadHandler streams the unmodified source file as an attachment.
func (api *RestAPI) downloadHandler(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	f, err := os.Open(api.RawFilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, fmt.Errorf("open raw dataset: %w", err))
		return
	}
	defer logging.SafeCloseWithLogging(f, logger, "close_download")

	info, err := f.Stat()
	if err != nil {
		api.serverErrorResponse(w, r, fmt.Errorf("stat raw dataset: %w", err))
		return
	}

	w.Header().Set("Content-Type", models.CSVContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", models.DownloadFileName))
	http.ServeContent(w, r, models.DownloadFileName, info.ModTime(), f)

	logging.LogOperation(logger, "dataset_downloaded",
		slog.String("source", api.RawFilePath()),
		slog.Int64("bytes", info.Size()))
}
