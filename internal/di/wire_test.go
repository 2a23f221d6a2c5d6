package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
	testingpkg "github.com/aftab0khan021/mgnrega/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:             t.TempDir(),
		StorageBackend:      config.BackendSQLite,
		DBName:              "mgnrega",
		Port:                8001,
		CORSOrigins:         []string{"*"},
		Seed:                config.SeedConfig{OnStartup: true, AnchorYear: 2025, AnchorMonth: 10},
		MaintenanceSchedule: "@every 1h",
	}
}

func TestWire_SQLite(t *testing.T) {
	cfg := testConfig(t)
	sched := scheduler.New(zerolog.Nop())

	container, jobs, err := Wire(cfg, sched, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	assert.NotNil(t, container.SQLiteDB)
	assert.Nil(t, container.MongoDB)
	assert.NotNil(t, container.ReferenceStore)
	assert.NotNil(t, container.PerformanceStore)
	assert.NotNil(t, container.Seeder)
	assert.NotNil(t, container.Translations)
	assert.NotNil(t, container.DashboardService)

	assert.NotNil(t, jobs.CheckWALCheckpoints)
	assert.NotNil(t, jobs.CheckStoreHealth)
	assert.Equal(t, []string{"check_wal_checkpoints", "check_store_health"}, sched.Jobs())

	_, err = os.Stat(filepath.Join(cfg.DataDir, "mgnrega.db"))
	assert.NoError(t, err)

	// The wired service seeds on the first states query
	states, err := container.DashboardService.ListStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 28)
}

func TestWire_BadTranslationsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.TranslationsFile = filepath.Join(t.TempDir(), "missing.json")

	_, _, err := Wire(cfg, scheduler.New(zerolog.Nop()), zerolog.Nop())
	assert.Error(t, err)
}

func TestWire_BadSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaintenanceSchedule = "whenever"

	_, _, err := Wire(cfg, scheduler.New(zerolog.Nop()), zerolog.Nop())
	assert.Error(t, err)
}

func TestInitializeDatabases_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.StorageBackend = "postgres"

	_, err := InitializeDatabases(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestInitializeRepositories_NoDatabase(t *testing.T) {
	assert.Error(t, InitializeRepositories(&Container{}, zerolog.Nop()))
}

func TestRegisterJobs_StoreHealthChecksSQLiteIntegrity(t *testing.T) {
	cfg := testConfig(t)
	db := testingpkg.NewTestDB(t)
	container := &Container{
		Backend:          config.BackendSQLite,
		SQLiteDB:         db,
		ReferenceStore:   testingpkg.NewMockReferenceStore(),
		PerformanceStore: testingpkg.NewMockPerformanceStore(),
	}
	sched := scheduler.New(zerolog.Nop())

	jobs, err := RegisterJobs(container, sched, cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sched.RunNow(jobs.CheckStoreHealth))

	// The mock stores still answer, so only the SQLite integrity check can fail here
	require.NoError(t, db.Close())
	assert.Error(t, sched.RunNow(jobs.CheckStoreHealth))
}

func TestRegisterJobs_NoBackendSkipsIntegrityCheck(t *testing.T) {
	container := &Container{
		ReferenceStore:   testingpkg.NewMockReferenceStore(),
		PerformanceStore: testingpkg.NewMockPerformanceStore(),
	}
	sched := scheduler.New(zerolog.Nop())

	jobs, err := RegisterJobs(container, sched, testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, jobs.CheckWALCheckpoints)
	assert.NoError(t, sched.RunNow(jobs.CheckStoreHealth))
	assert.Equal(t, []string{"check_store_health"}, sched.Jobs())
}
