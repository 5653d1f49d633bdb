package uptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCompute_ZeroElapsed(t *testing.T) {
	rt := New(start).Compute(start)

	assert.Equal(t, int64(0), rt.UptimeSeconds)
	assert.Equal(t, "0 hours, 0 minutes", rt.UptimeHuman)
	assert.Equal(t, "2024-03-01 12:00:00", rt.CurrentTime)
	assert.Equal(t, "UTC", rt.Timezone)
}

func TestCompute_NinetyMinutes(t *testing.T) {
	rt := New(start).Compute(start.Add(90 * time.Minute))

	assert.Equal(t, int64(5400), rt.UptimeSeconds)
	assert.Equal(t, "1 hours, 30 minutes", rt.UptimeHuman)
}

func TestCompute_FloorsFractionalSeconds(t *testing.T) {
	rt := New(start).Compute(start.Add(59*time.Second + 999*time.Millisecond))

	assert.Equal(t, int64(59), rt.UptimeSeconds)
	assert.Equal(t, "0 hours, 0 minutes", rt.UptimeHuman)
}

func TestCompute_ClockBeforeStartClampsToZero(t *testing.T) {
	rt := New(start).Compute(start.Add(-time.Hour))

	assert.Equal(t, int64(0), rt.UptimeSeconds)
	assert.Equal(t, "0 hours, 0 minutes", rt.UptimeHuman)
}

func TestCompute_FormatsCurrentTimeInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	now := time.Date(2024, 3, 1, 18, 30, 15, 0, loc)

	rt := New(start).Compute(now)

	assert.Equal(t, "2024-03-01 15:30:15", rt.CurrentTime)
	assert.Equal(t, int64(3*3600+30*60+15), rt.UptimeSeconds)
}

func TestNew_NormalizesStartToUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	tr := New(start.In(loc))

	assert.Equal(t, time.UTC, tr.StartTime().Location())
	assert.True(t, tr.StartTime().Equal(start))
}

func TestSeconds_MonotonicAcrossCalls(t *testing.T) {
	tr := New(start)
	var prev int64
	for i := 0; i < 50; i++ {
		now := start.Add(time.Duration(i*137) * time.Second)
		got := tr.Seconds(now)
		require.GreaterOrEqual(t, got, prev)
		require.Equal(t, int64(now.Sub(start)/time.Second), got)
		prev = got
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0 hours, 0 minutes"},
		{59, "0 hours, 0 minutes"},
		{60, "0 hours, 1 minutes"},
		{3600, "1 hours, 0 minutes"},
		{3660, "1 hours, 1 minutes"},
		{26*3600 + 5*60 + 7, "26 hours, 5 minutes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.seconds), "seconds=%d", tt.seconds)
	}
}
