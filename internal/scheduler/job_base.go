package scheduler

import (
	"time"

	"github.com/rs/zerolog"
)

// jobTimeout bounds the storage calls a single job run may make
const jobTimeout = 30 * time.Second

// JobBase holds the logger shared by all jobs.
// Jobs start with a no-op logger until SetLogger is called.
type JobBase struct {
	log zerolog.Logger
}

// SetLogger sets the logger for the job
func (j *JobBase) SetLogger(log zerolog.Logger) {
	j.log = log
}
