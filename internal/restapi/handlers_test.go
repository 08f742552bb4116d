package restapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ownerboard.dev/internal/app"
	"ownerboard.dev/internal/appconf"
	"ownerboard.dev/internal/models"
	"ownerboard.dev/internal/query"
)

func TestSummaryHandler(t *testing.T) {
	api, _ := createTestApi(t, 0)

	var summary query.Summary
	resp := serveAndDecode(t, api, "/api/summary", &summary)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	assert.Equal(t, query.Summary{
		TotalRecords:        8,
		UniqueStates:        2,
		UniqueCities:        4,
		UniqueOwners:        6,
		PhonesPresent:       6,
		PhonesMissing:       2,
		PotentialDuplicates: 2,
	}, summary)
}

func TestTopStatesHandler(t *testing.T) {
	api, logs := createTestApi(t, 0)

	testCases := []struct {
		name   string
		target string
		want   []query.StateCount
	}{
		{
			name:   "default limit",
			target: "/api/top-states",
			want: []query.StateCount{
				{State: "TX", Count: 5},
				{State: "NV", Count: 2},
				{State: "Unknown", Count: 1},
			},
		},
		{
			name:   "explicit limit",
			target: "/api/top-states?limit=1",
			want:   []query.StateCount{{State: "TX", Count: 5}},
		},
		{
			name:   "zero limit",
			target: "/api/top-states?limit=0",
			want:   []query.StateCount{},
		},
		{
			name:   "invalid limit falls back to default",
			target: "/api/top-states?limit=ten",
			want: []query.StateCount{
				{State: "TX", Count: 5},
				{State: "NV", Count: 2},
				{State: "Unknown", Count: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []query.StateCount
			resp := serveAndDecode(t, api, tc.target, &got)
			assert.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.Contains(t, logs.String(), `"msg":"invalid_query_parameter"`)
	assert.Contains(t, logs.String(), `"parameter":"limit"`)
	assert.Contains(t, logs.String(), `"value":"ten"`)
}

func TestTopStatesHandlerEmptyArrayIsJSONArray(t *testing.T) {
	api, _ := createTestApi(t, 0)

	resp := serve(t, api, httptest.NewRequest(http.MethodGet, "/api/top-states?limit=-4", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestTopCitiesHandler(t *testing.T) {
	api, _ := createTestApi(t, 0)

	var got []query.CityCount
	serveAndDecode(t, api, "/api/top-cities", &got)

	assert.Equal(t, []query.CityCount{
		{State: "TX", City: "Austin", Count: 3},
		{State: "NV", City: "Reno", Count: 2},
		{State: "TX", City: "Dallas", Count: 1},
		{State: "TX", City: "Houston", Count: 1},
		{State: "Unknown", City: "Unknown", Count: 1},
	}, got)

	serveAndDecode(t, api, "/api/top-cities?limit=2", &got)
	assert.Len(t, got, 2)
}

func TestTableHandler(t *testing.T) {
	api, _ := createTestApi(t, 0)

	t.Run("defaults return the whole fixture", func(t *testing.T) {
		var page tablePage
		serveAndDecode(t, api, "/api/table", &page)

		assert.Equal(t, 0, page.Draw)
		assert.Equal(t, 8, page.RecordsTotal)
		assert.Equal(t, 8, page.RecordsFiltered)
		require.Len(t, page.Data, 8)
		assert.Equal(t, "Gamma Garage", page.Data[3].BusinessName)
		assert.Equal(t, "", page.Data[4].OwnerName)
		assert.Equal(t, "", page.Data[4].MobileNumber)
	})

	t.Run("search and paging", func(t *testing.T) {
		var page tablePage
		serveAndDecode(t, api, "/api/table?draw=3&start=1&length=1&search%5Bvalue%5D=+RENO+", &page)

		assert.Equal(t, 3, page.Draw)
		assert.Equal(t, 8, page.RecordsTotal)
		assert.Equal(t, 2, page.RecordsFiltered)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Echo Electric", page.Data[0].BusinessName)
	})

	t.Run("start past the end", func(t *testing.T) {
		resp := serve(t, api, httptest.NewRequest(http.MethodGet, "/api/table?start=100", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"draw":0,"recordsTotal":8,"recordsFiltered":8,"data":[]}`, resp.Body.String())
	})
}

func TestTableHandlerInvalidParametersUseDefaults(t *testing.T) {
	api, logs := createTestApi(t, 0)

	var page tablePage
	resp := serveAndDecode(t, api, "/api/table?start=-5&length=abc&draw=x", &page)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, page.Draw)
	assert.Len(t, page.Data, 8)

	output := logs.String()
	assert.Contains(t, output, `"parameter":"start"`)
	assert.Contains(t, output, `"parameter":"length"`)
	assert.Contains(t, output, `"default":25`)
}

func TestDownloadHandler(t *testing.T) {
	api, _ := createTestApi(t, 0)

	resp := serve(t, api, httptest.NewRequest(http.MethodGet, "/download/csv", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	want, err := os.ReadFile(models.GetFixturePath(t, "business_owners.csv"))
	require.NoError(t, err)

	assert.Equal(t, string(want), resp.Body.String())
	assert.Equal(t, `attachment; filename="business_owners.csv"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
}

func TestDownloadHandlerFileRemoved(t *testing.T) {
	path := models.CopyFixture(t, "business_owners.csv")

	application, err := app.New(appconf.Config{Env: appconf.Test, DataPath: path}, nil)
	require.NoError(t, err)
	api := NewRestAPI(application)
	t.Cleanup(api.Shutdown)

	// the table stays in memory; only the download depends on the file
	require.NoError(t, os.Remove(path))

	var body models.ResponseModel
	resp := serveAndDecode(t, api, "/download/csv", &body)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "resource not found", body.Text)

	var summary query.Summary
	serveAndDecode(t, api, "/api/summary", &summary)
	assert.Equal(t, 8, summary.TotalRecords)
}

func TestHealthHandler(t *testing.T) {
	api, _ := createTestApi(t, 0)

	var health models.HealthModel
	resp := serveAndDecode(t, api, "/healthz", &health)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, models.HealthModel{Status: "ok", Records: 8}, health)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	api, _ := createTestApi(t, 0)

	var body models.ResponseModel
	resp := serveAndDecode(t, api, "/api/where/stops", &body)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, 2, body.Version)
	assert.NotZero(t, body.CurrentTime)

	resp = serve(t, api, httptest.NewRequest(http.MethodPost, "/api/summary", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Contains(t, resp.Header().Get("Allow"), http.MethodGet)
}
