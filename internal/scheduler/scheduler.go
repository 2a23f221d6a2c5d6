// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

// Scheduler runs registered jobs. A job still running when its next tick fires
// skips that tick, and a panicking job is logged instead of killing the process.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger

	mu      sync.Mutex
	names   []string
	entries map[string]cron.EntryID
}

// New creates a scheduler. Schedules take five or six fields (leading seconds) or a descriptor.
func New(log zerolog.Logger) *Scheduler {
	log = log.With().Str("component", "scheduler").Logger()
	clog := cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(
			cron.WithParser(cron.NewParser(
				cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor,
			)),
			cron.WithChain(cron.SkipIfStillRunning(clog), cron.Recover(clog)),
			cron.WithLogger(clog),
		),
		log:     log,
		entries: make(map[string]cron.EntryID),
	}
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs to return
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("Scheduler stopped")
}

// AddJob registers job under schedule, e.g. "@every 1h", "*/5 * * * *" or "0 */5 * * * *".
// Job names must be unique.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	name := job.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("job %s already registered", name)
	}

	id, err := s.cron.AddFunc(schedule, func() { s.run(job) })
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", schedule, name, err)
	}
	s.entries[name] = id
	s.names = append(s.names, name)

	s.log.Info().Str("schedule", schedule).Str("job", name).Msg("Job registered")
	return nil
}

func (s *Scheduler) run(job Job) {
	start := time.Now()
	if err := job.Run(); err != nil {
		s.log.Error().Err(err).Str("job", job.Name()).Msg("Job failed")
		return
	}
	s.log.Debug().Str("job", job.Name()).Dur("duration_ms", time.Since(start)).Msg("Job completed")
}

// Jobs returns the registered job names in registration order
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// NextRun reports when the named job fires next. The zero time means not
// registered or the scheduler is not running.
func (s *Scheduler) NextRun(name string) time.Time {
	s.mu.Lock()
	id, ok := s.entries[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// RunNow runs a job synchronously outside its schedule
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Running job immediately")
	return job.Run()
}

// cronLogger adapts zerolog to cron.Logger
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
