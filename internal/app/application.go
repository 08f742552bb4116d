package app

import (
	"log/slog"
	"path/filepath"

	"ownerboard.dev/internal/appconf"
	"ownerboard.dev/internal/dataset"
	"ownerboard.dev/internal/query"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. The Table and Engine are built once before the server
// starts and are only read afterwards.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	Table  *dataset.Table
	Engine *query.Engine

	rawPath string
}

// New loads the dataset named by cfg.DataPath and wires the query engine.
// Loader errors (*dataset.MissingFileError, *dataset.SchemaError) are returned unchanged.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	table, err := dataset.Load(cfg.DataPath, dataset.Options{
		Delimiter: cfg.Delimiter,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	rawPath, err := filepath.Abs(cfg.DataPath)
	if err != nil {
		rawPath = cfg.DataPath
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Table:   table,
		Engine:  query.NewEngine(table),
		rawPath: rawPath,
	}, nil
}

// RawFilePath returns the location of the unmodified source file.
func (app *Application) RawFilePath() string {
	return app.rawPath
}
