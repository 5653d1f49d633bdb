package uptime

import (
	"fmt"
	"time"

	"devops-info/service/internal/constants"
	"devops-info/service/internal/models/dtos"
)

// Tracker holds the process start time. It is created once in main before the
// listener accepts connections and is only read afterwards.
type Tracker struct {
	// start keeps the monotonic reading from time.Now so elapsed time is
	// immune to wall clock steps.
	start time.Time
}

func New(start time.Time) *Tracker {
	return &Tracker{start: start}
}

// StartTime returns the start instant in UTC.
func (t *Tracker) StartTime() time.Time {
	return t.start.UTC()
}

// Seconds returns whole seconds elapsed between start and now, never negative.
func (t *Tracker) Seconds(now time.Time) int64 {
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// Compute derives the runtime section of the payloads for the given instant.
func (t *Tracker) Compute(now time.Time) dtos.RuntimeInfo {
	seconds := t.Seconds(now)
	return dtos.RuntimeInfo{
		UptimeSeconds: seconds,
		UptimeHuman:   Humanize(seconds),
		CurrentTime:   now.UTC().Format(constants.TimeLayout),
		Timezone:      constants.Timezone,
	}
}

// Humanize renders "<H> hours, <M> minutes". Units are never singularised.
func Humanize(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
}
