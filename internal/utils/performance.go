package utils

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	slowOperation = 10 * time.Second
	slowQuery     = 5 * time.Second
)

// Timer logs how long a named operation took, warning past a threshold
type Timer struct {
	start time.Time
	name  string
	field string
	slow  time.Duration
	log   zerolog.Logger
}

// NewTimer starts a timer for a long-running operation such as a seed
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{start: time.Now(), name: name, field: "operation", slow: slowOperation, log: log}
}

// Stop logs the elapsed time at debug, or at warn when slow, and returns it
func (t *Timer) Stop() time.Duration {
	return t.stop(func(e *zerolog.Event) *zerolog.Event { return e })
}

func (t *Timer) stop(fields func(*zerolog.Event) *zerolog.Event) time.Duration {
	elapsed := time.Since(t.start)

	ev := t.log.Debug()
	msg := "Operation completed"
	if elapsed > t.slow {
		ev = t.log.Warn()
		msg = "Slow operation detected"
	}
	fields(ev.Str(t.field, t.name).Dur("duration_ms", elapsed)).Msg(msg)

	return elapsed
}

// MeasureDBQuery times a store query; call the returned func with the row count
//
//	done := utils.MeasureDBQuery("list_districts", log)
//	... run the query ...
//	done(int64(len(rows)))
func MeasureDBQuery(queryName string, log zerolog.Logger) func(rows int64) {
	t := &Timer{start: time.Now(), name: queryName, field: "query", slow: slowQuery, log: log}
	return func(rows int64) {
		t.stop(func(e *zerolog.Event) *zerolog.Event { return e.Int64("rows", rows) })
	}
}
