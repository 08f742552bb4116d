package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ownerboard.dev/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("test response"))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/table?start=10", nil)
		req.Header.Set("User-Agent", "test-client/1.0")
		recorder := httptest.NewRecorder()

		NewRequestLoggingMiddleware(logger)(testHandler).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusTeapot, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/table"`)
		assert.Contains(t, output, `"status":418`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
		assert.NotContains(t, output, "start=10")
	})

	t.Run("assigns a request id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		var seen *slog.Logger
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logging.FromContext(r.Context())
		})

		recorder := httptest.NewRecorder()
		NewRequestLoggingMiddleware(logger)(testHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		id := recorder.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)

		require.NotNil(t, seen)
		seen.Info("from_handler")
		assert.Contains(t, buf.String(), `"msg":"from_handler","request_id":"`+id+`"`)
	})

	t.Run("reuses an incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		recorder := httptest.NewRecorder()

		NewRequestLoggingMiddleware(logger)(http.NotFoundHandler()).ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})

	t.Run("replaces a malformed request id", func(t *testing.T) {
		testCases := []struct {
			name string
			id   string
		}{
			{"too long", strings.Repeat("a", 129)},
			{"spaces", "abc 123"},
			{"json breaking", `abc","admin":"true`},
			{"non ascii", "abc\u00e9"},
			{"newline", "abc\ninjected"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

				req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
				req.Header.Set(RequestIDHeader, tc.id)
				recorder := httptest.NewRecorder()

				NewRequestLoggingMiddleware(logger)(http.NotFoundHandler()).ServeHTTP(recorder, req)

				id := recorder.Header().Get(RequestIDHeader)
				assert.NotEqual(t, tc.id, id)
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			})
		}
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.True(t, validRequestID(uuid.NewString()))
	assert.True(t, validRequestID(strings.Repeat("Z", maxRequestIDLength)))

	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID(strings.Repeat("Z", maxRequestIDLength+1)))
	assert.False(t, validRequestID("a_b"))
	assert.False(t, validRequestID("a/b"))
}
