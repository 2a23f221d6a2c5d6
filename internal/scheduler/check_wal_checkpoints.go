package scheduler

import (
	"context"
	"fmt"

	"github.com/aftab0khan021/mgnrega/internal/database"
	"github.com/rs/zerolog"
)

// walFrameThreshold is the WAL size (in frames) above which a TRUNCATE checkpoint is forced
const walFrameThreshold = 1000

// CheckWALCheckpointsJob monitors the SQLite WAL and truncates it when it grows large
type CheckWALCheckpointsJob struct {
	JobBase
	db *database.DB
}

// NewCheckWALCheckpointsJob creates a new CheckWALCheckpointsJob. db may be nil.
func NewCheckWALCheckpointsJob(db *database.DB) *CheckWALCheckpointsJob {
	return &CheckWALCheckpointsJob{
		JobBase: JobBase{log: zerolog.Nop()},
		db:      db,
	}
}

// Name returns the job name
func (j *CheckWALCheckpointsJob) Name() string {
	return "check_wal_checkpoints"
}

// Run executes the check WAL checkpoints job
func (j *CheckWALCheckpointsJob) Run() error {
	if j.db == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	status, err := j.db.WALCheckpoint(ctx, "PASSIVE")
	if err != nil {
		return fmt.Errorf("failed to check WAL checkpoint: %w", err)
	}

	if status.LogFrames <= walFrameThreshold {
		j.log.Debug().
			Str("database", j.db.Name()).
			Int("wal_frames", status.LogFrames).
			Msg("WAL checkpoint status OK")
		return nil
	}

	j.log.Warn().
		Str("database", j.db.Name()).
		Int("wal_frames", status.LogFrames).
		Int("checkpointed", status.Checkpointed).
		Msg("WAL file is large, forcing truncate checkpoint")

	if _, err := j.db.WALCheckpoint(ctx, "TRUNCATE"); err != nil {
		return fmt.Errorf("failed to truncate WAL: %w", err)
	}
	return nil
}
