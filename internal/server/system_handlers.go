package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SeedCounter reports how many seeds have completed
type SeedCounter interface {
	SeedCount() int64
}

// JobSchedule lists scheduled jobs and their next run time
type JobSchedule interface {
	Jobs() []string
	NextRun(name string) time.Time
}

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	backend     string
	sqliteDB    *database.DB // nil on the mongo backend
	refs        domain.ReferenceStore
	perf        domain.PerformanceStore
	seeder      SeedCounter
	schedule    JobSchedule // nil when no scheduler runs
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(
	log zerolog.Logger,
	backend string,
	sqliteDB *database.DB,
	refs domain.ReferenceStore,
	perf domain.PerformanceStore,
	seeder SeedCounter,
	schedule JobSchedule,
) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("component", "system_handlers").Logger(),
		startupTime: time.Now(),
		backend:     backend,
		sqliteDB:    sqliteDB,
		refs:        refs,
		perf:        perf,
		seeder:      seeder,
		schedule:    schedule,
	}
}

// SystemStatusResponse represents the system status
type SystemStatusResponse struct {
	Status        string      `json:"status"`
	Backend       string      `json:"backend"`
	UptimeHours   float64     `json:"uptime_hours"`
	CPUPercent    float64     `json:"cpu_percent"`
	RAMPercent    float64     `json:"ram_percent"`
	States        int64       `json:"states"`
	Records       int64       `json:"performance_records"`
	SeedsRun      int64       `json:"seeds_run"`
	StorageDetail string      `json:"storage_detail,omitempty"`
	Jobs          []JobStatus `json:"jobs"`
}

// JobStatus reports one scheduled job. NextRun is nil before the scheduler starts.
type JobStatus struct {
	Name    string     `json:"name"`
	NextRun *time.Time `json:"next_run"`
}

// DatabaseStatsResponse represents SQLite file statistics
type DatabaseStatsResponse struct {
	Backend       string  `json:"backend"`
	Path          string  `json:"path,omitempty"`
	Profile       string  `json:"profile,omitempty"`
	SizeMB        float64 `json:"size_mb"`
	WALSizeMB     float64 `json:"wal_size_mb"`
	PageCount     int64   `json:"page_count"`
	FreelistCount int64   `json:"freelist_count"`
}

// HandleSystemStatus returns host and store status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, ramPercent := h.getSystemStats()
	response := SystemStatusResponse{
		Status:      "healthy",
		Backend:     h.backend,
		UptimeHours: time.Since(h.startupTime).Hours(),
		CPUPercent:  cpuPercent,
		RAMPercent:  ramPercent,
	}
	if h.seeder != nil {
		response.SeedsRun = h.seeder.SeedCount()
	}
	response.Jobs = h.jobStatuses()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.collectCounts(ctx, &response); err != nil {
		h.log.Warn().Err(err).Msg("System status collected with warnings")
		response.Status = "degraded"
		response.StorageDetail = "storage unavailable"
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *SystemHandlers) collectCounts(ctx context.Context, response *SystemStatusResponse) error {
	states, err := h.refs.CountStates(ctx)
	if err != nil {
		return err
	}
	records, err := h.perf.Count(ctx)
	if err != nil {
		return err
	}
	response.States = states
	response.Records = records
	return nil
}

// HandleDatabaseStats returns SQLite file statistics.
// The mongo backend reports only its name.
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting database stats")

	response := DatabaseStatsResponse{Backend: h.backend}
	if h.sqliteDB == nil {
		h.writeJSON(w, http.StatusOK, response)
		return
	}

	stats, err := h.sqliteDB.GetStats(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get database stats")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
		return
	}

	response.Path = h.sqliteDB.Path()
	response.Profile = string(h.sqliteDB.Profile())
	response.SizeMB = float64(stats.SizeBytes) / 1024 / 1024
	response.WALSizeMB = float64(stats.WALSizeBytes) / 1024 / 1024
	response.PageCount = stats.PageCount
	response.FreelistCount = stats.FreelistCount

	h.writeJSON(w, http.StatusOK, response)
}

func (h *SystemHandlers) jobStatuses() []JobStatus {
	statuses := []JobStatus{}
	if h.schedule == nil {
		return statuses
	}
	for _, name := range h.schedule.Jobs() {
		status := JobStatus{Name: name}
		if next := h.schedule.NextRun(name); !next.IsZero() {
			status.NextRun = &next
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// getSystemStats returns CPU and RAM usage percentages
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	// Sample CPU over 100ms to keep the endpoint responsive
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
