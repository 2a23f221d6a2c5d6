package di

import (
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
	"github.com/rs/zerolog"
)

// RegisterJobs adds the maintenance jobs to the scheduler
func RegisterJobs(container *Container, sched *scheduler.Scheduler, cfg *config.Config, log zerolog.Logger) (*JobInstances, error) {
	if container == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}

	instances := &JobInstances{}

	if container.SQLiteDB != nil {
		walJob := scheduler.NewCheckWALCheckpointsJob(container.SQLiteDB)
		walJob.SetLogger(log.With().Str("job", walJob.Name()).Logger())
		if err := sched.AddJob(cfg.MaintenanceSchedule, walJob); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", walJob.Name(), err)
		}
		instances.CheckWALCheckpoints = walJob
	}

	var checker scheduler.IntegrityChecker
	switch {
	case container.SQLiteDB != nil:
		checker = container.SQLiteDB
	case container.MongoDB != nil:
		checker = container.MongoDB
	}

	healthJob := scheduler.NewCheckStoreHealthJob(container.ReferenceStore, container.PerformanceStore, checker)
	healthJob.SetLogger(log.With().Str("job", healthJob.Name()).Logger())
	if err := sched.AddJob(cfg.MaintenanceSchedule, healthJob); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", healthJob.Name(), err)
	}
	instances.CheckStoreHealth = healthJob

	return instances, nil
}
