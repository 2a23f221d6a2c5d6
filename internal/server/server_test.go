package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/di"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/dashboard"
	"github.com/aftab0khan021/mgnrega/internal/modules/seeding"
	"github.com/aftab0khan021/mgnrega/internal/modules/translations"
	testingpkg "github.com/aftab0khan021/mgnrega/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	server *Server
	refs   *testingpkg.MockReferenceStore
	perf   *testingpkg.MockPerformanceStore
}

func newServerFixture(t *testing.T) serverFixture {
	t.Helper()

	log := zerolog.New(nil).Level(zerolog.Disabled)
	refs := testingpkg.NewMockReferenceStore()
	perf := testingpkg.NewMockPerformanceStore()
	catalog := func() ([]domain.State, []domain.District) {
		return testingpkg.NewStateFixtures(), testingpkg.NewDistrictFixtures()
	}
	gen := seeding.NewGenerator(seeding.GeneratorConfig{Rand: rand.New(rand.NewSource(7))})
	seeder := seeding.NewSeeder(refs, perf, catalog, gen, seeding.Anchor{Year: 2025, Month: 10}, log)

	table, err := translations.LoadDefault()
	require.NoError(t, err)

	container := &di.Container{
		Backend:          config.BackendSQLite,
		ReferenceStore:   refs,
		PerformanceStore: perf,
		Seeder:           seeder,
		Translations:     table,
		DashboardService: dashboard.NewService(refs, perf, seeder, table, log),
	}

	srv := New(Config{
		Log: log,
		Config: &config.Config{
			StorageBackend: config.BackendSQLite,
			Port:           8001,
			DevMode:        true,
			CORSOrigins:    []string{"http://localhost:3000"},
		},
		Container: container,
	})

	return serverFixture{server: srv, refs: refs, perf: perf}
}

func (f serverFixture) get(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.server.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestServer_Root(t *testing.T) {
	f := newServerFixture(t)

	w := f.get(t, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.Equal(t, "MGNREGA District Performance API", body["message"])
	assert.Equal(t, "1.0", body["version"])
}

func TestServer_Health(t *testing.T) {
	for _, path := range []string{"/health", "/api/health"} {
		t.Run(path, func(t *testing.T) {
			f := newServerFixture(t)

			w := f.get(t, path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "healthy", decodeBody(t, w)["status"])

			f.refs.SetError(domain.StorageError("ping", errors.New("connection refused")))
			w = f.get(t, path, nil)
			require.Equal(t, http.StatusServiceUnavailable, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "unhealthy", body["status"])
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestServer_DashboardRoutesMounted(t *testing.T) {
	f := newServerFixture(t)

	w := f.get(t, "/api/states", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var states []domain.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &states))
	assert.Len(t, states, len(testingpkg.NewStateFixtures()))

	w = f.get(t, "/api/performance/UP001?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []domain.PerformanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 3)

	w = f.get(t, "/api/districts/ZZ", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CORS(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"allowed origin", "http://localhost:3000", "http://localhost:3000"},
		{"unknown origin", "http://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServerFixture(t)
			w := f.get(t, "/api/", map[string]string{"Origin": tt.origin})
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)
	w := f.get(t, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CompressesOutsideDevMode(t *testing.T) {
	f := newServerFixture(t)
	srv := New(Config{
		Log:       zerolog.Nop(),
		Config:    &config.Config{Port: 8001},
		Container: f.server.container,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/translations", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}
