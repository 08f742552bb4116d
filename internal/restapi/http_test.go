package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"ownerboard.dev/internal/app"
	"ownerboard.dev/internal/appconf"
	"ownerboard.dev/internal/logging"
	"ownerboard.dev/internal/models"
)

// createTestApi loads the fixture dataset into a RestAPI. Rate limiting is off
// unless rateLimit is positive. Log output is captured in the returned buffer.
func createTestApi(t *testing.T, rateLimit int) (*RestAPI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelDebug)

	application, err := app.New(appconf.Config{
		Env:       appconf.Test,
		DataPath:  models.GetFixturePath(t, "business_owners.csv"),
		RateLimit: rateLimit,
	}, logger)
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)

	return api, &buf
}

// serve runs a request through the full middleware chain synchronously.
func serve(t *testing.T, api *RestAPI, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)

	recorder := httptest.NewRecorder()
	api.Handler(router).ServeHTTP(recorder, req)
	return recorder
}

func serveAndDecode(t *testing.T, api *RestAPI, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	recorder := serve(t, api, httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out), recorder.Body.String())
	return recorder
}
