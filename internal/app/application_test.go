package app

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ownerboard.dev/internal/appconf"
	"ownerboard.dev/internal/dataset"
	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/models"
)

func TestNewLoadsDataset(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	path := models.GetFixturePath(t, "business_owners.csv")
	application, err := New(appconf.Config{Env: appconf.Test, DataPath: path}, logger)
	require.NoError(t, err)

	assert.Equal(t, 8, application.Table.Len())
	assert.Equal(t, 8, application.Engine.Summary().TotalRecords)
	assert.Equal(t, path, application.RawFilePath())
	assert.True(t, filepath.IsAbs(application.RawFilePath()))
	assert.Contains(t, buf.String(), `"msg":"dataset_loaded"`)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(appconf.Config{DataPath: filepath.Join(t.TempDir(), "absent.csv")}, nil)

	var missing *dataset.MissingFileError
	require.True(t, errors.As(err, &missing))
}
