package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/dashboard"
	"github.com/aftab0khan021/mgnrega/internal/modules/performance"
	"github.com/aftab0khan021/mgnrega/internal/modules/seeding"
	"github.com/aftab0khan021/mgnrega/internal/modules/translations"
	testingpkg "github.com/aftab0khan021/mgnrega/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router http.Handler
	refs   *testingpkg.MockReferenceStore
	perf   *testingpkg.MockPerformanceStore
}

func setupTestAPI(t *testing.T) testAPI {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)

	refs := testingpkg.NewMockReferenceStore()
	perf := testingpkg.NewMockPerformanceStore()
	catalog := func() ([]domain.State, []domain.District) {
		return testingpkg.NewStateFixtures(), testingpkg.NewDistrictFixtures()
	}
	gen := seeding.NewGenerator(seeding.GeneratorConfig{Rand: rand.New(rand.NewSource(3))})
	seeder := seeding.NewSeeder(refs, perf, catalog, gen, seeding.Anchor{Year: 2025, Month: 10}, logger)

	table, err := translations.LoadDefault()
	require.NoError(t, err)

	service := dashboard.NewService(refs, perf, seeder, table, logger)
	handler := NewHandler(service, logger)

	router := chi.NewRouter()
	router.Route("/api", handler.RegisterRoutes)

	return testAPI{router: router, refs: refs, perf: perf}
}

func (a testAPI) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["detail"]
}

func TestRegisterRoutes(t *testing.T) {
	assert.NotPanics(t, func() {
		setupTestAPI(t)
	})
}

func TestHandleListStates_SeedsOnFirstCall(t *testing.T) {
	api := setupTestAPI(t)

	w := api.get(t, "/api/states")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var states []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
	require.Len(t, states, 3)
	assert.Equal(t, "GA", states[0]["state_code"])
	assert.Equal(t, "Goa", states[0]["state_name"])
	assert.Equal(t, "गोवा", states[0]["state_name_hi"])

	w = api.get(t, "/api/districts/UP")
	require.Equal(t, http.StatusOK, w.Code)

	var districts []domain.District
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &districts))
	assert.Len(t, districts, 2)
}

func TestHandleListDistricts_NotFound(t *testing.T) {
	api := setupTestAPI(t)
	api.get(t, "/api/states")

	w := api.get(t, "/api/districts/ZZ")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No districts found for this state", decodeDetail(t, w))
}

func TestHandleListDistricts_ColdStore(t *testing.T) {
	api := setupTestAPI(t)

	w := api.get(t, "/api/districts/UP")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, api.refs.Replacements())
}

func TestHandleListPerformance(t *testing.T) {
	api := setupTestAPI(t)
	api.get(t, "/api/states")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLen    int
		wantDetail string
	}{
		{name: "default limit", path: "/api/performance/GA001", wantStatus: http.StatusOK, wantLen: 12},
		{name: "explicit limit", path: "/api/performance/GA001?limit=3", wantStatus: http.StatusOK, wantLen: 3},
		{name: "zero returns every record", path: "/api/performance/GA001?limit=0", wantStatus: http.StatusOK, wantLen: 12},
		{name: "negative counts as absolute", path: "/api/performance/GA001?limit=-2", wantStatus: http.StatusOK, wantLen: 2},
		{name: "non-integer limit", path: "/api/performance/GA001?limit=abc", wantStatus: http.StatusBadRequest, wantDetail: "limit must be an integer"},
		{name: "unknown district", path: "/api/performance/ZZ999", wantStatus: http.StatusNotFound, wantDetail: "No performance data found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.get(t, tt.path)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
				return
			}

			var records []domain.PerformanceRecord
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
			require.Len(t, records, tt.wantLen)
			for i := 1; i < len(records); i++ {
				assert.Greater(t, records[i-1].Period(), records[i].Period())
			}
			assert.Equal(t, 2025, records[0].Year)
			assert.Equal(t, 10, records[0].Month)
		})
	}
}

func TestHandleListPerformance_LongHistory(t *testing.T) {
	api := setupTestAPI(t)

	district := testingpkg.NewDistrictFixtures()[0]
	require.NoError(t, api.perf.ReplaceAll(context.Background(), testingpkg.NewPerformanceSeries(district, 2025, 10, 20)))

	tests := []struct {
		name    string
		query   string
		wantLen int
	}{
		{name: "missing limit uses default", query: "", wantLen: 12},
		{name: "zero is unbounded", query: "?limit=0", wantLen: 20},
		{name: "explicit", query: "?limit=15", wantLen: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.get(t, "/api/performance/"+district.Code+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			var records []domain.PerformanceRecord
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
			assert.Len(t, records, tt.wantLen)
		})
	}
}

func TestHandlePerformanceSummary(t *testing.T) {
	api := setupTestAPI(t)
	api.get(t, "/api/states")

	w := api.get(t, "/api/performance/UP002/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary performance.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "UP002", summary.DistrictCode)
	assert.Equal(t, 12, summary.Months)
	assert.Equal(t, "2024-11", summary.PeriodStart)
	assert.Equal(t, "2025-10", summary.PeriodEnd)
	assert.Positive(t, summary.TotalPersonDays)

	w = api.get(t, "/api/performance/ZZ999/summary")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetState(t *testing.T) {
	api := setupTestAPI(t)
	api.get(t, "/api/states")

	w := api.get(t, "/api/states/SK")
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "Sikkim", state.Name)

	w = api.get(t, "/api/states/ZZ")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "State not found", decodeDetail(t, w))
}

func TestHandleTranslations(t *testing.T) {
	api := setupTestAPI(t)

	w := api.get(t, "/api/translations")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []domain.TranslationEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 12)
	assert.Equal(t, "app_title", entries[0].Key)
	assert.Equal(t, "no_data", entries[11].Key)

	w = api.get(t, "/api/translations/hi")
	require.Equal(t, http.StatusOK, w.Code)
	var hindi map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hindi))
	assert.Equal(t, "सक्रिय कामगार", hindi["active_workers"])

	w = api.get(t, "/api/translations/xx")
	require.Equal(t, http.StatusOK, w.Code)
	var fallback map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fallback))
	assert.Len(t, fallback, 12)
	assert.Equal(t, "Active Workers", fallback["active_workers"])
}

func TestHandleListLanguages(t *testing.T) {
	api := setupTestAPI(t)

	w := api.get(t, "/api/languages")
	require.Equal(t, http.StatusOK, w.Code)

	var langs []translations.Language
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &langs))
	require.Len(t, langs, 5)
	assert.Equal(t, "en", langs[0].Code)
}

func TestHandlers_StorageFailure(t *testing.T) {
	api := setupTestAPI(t)
	api.get(t, "/api/states")

	api.refs.SetError(domain.StorageError("query", errors.New("connection reset")))
	api.perf.SetError(domain.StorageError("query", errors.New("connection reset")))

	for _, path := range []string{"/api/states", "/api/districts/GA", "/api/performance/GA001", "/api/states/GA"} {
		w := api.get(t, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Equal(t, "Internal server error", decodeDetail(t, w), path)
	}
}
