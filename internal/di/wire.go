package di

import (
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
	"github.com/rs/zerolog"
)

// Wire opens storage, builds stores and services, and registers the
// maintenance jobs on sched. Storage is closed again if a later step fails.
func Wire(cfg *config.Config, sched *scheduler.Scheduler, log zerolog.Logger) (*Container, *JobInstances, error) {
	container, err := InitializeDatabases(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize databases: %w", err)
	}

	var jobs *JobInstances
	steps := []struct {
		name string
		run  func() error
	}{
		{"repositories", func() error { return InitializeRepositories(container, log) }},
		{"services", func() error { return InitializeServices(container, cfg, log) }},
		{"jobs", func() (err error) {
			jobs, err = RegisterJobs(container, sched, cfg, log)
			return err
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			if cerr := container.Close(); cerr != nil {
				log.Warn().Err(cerr).Msg("Failed to close storage after wiring error")
			}
			return nil, nil, fmt.Errorf("failed to initialize %s: %w", step.name, err)
		}
	}

	log.Info().
		Str("backend", container.Backend).
		Strs("jobs", sched.Jobs()).
		Msg("Dependencies wired")

	return container, jobs, nil
}
