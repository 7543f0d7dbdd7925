package analytics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/msadmin/core/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAnalytics(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st, zap.NewNop())
}

func TestTrackViewIncrementsToday(t *testing.T) {
	svc := newTestAnalytics(t)
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return day })

	require.NoError(t, svc.TrackView())
	require.NoError(t, svc.TrackView())
	require.NoError(t, svc.TrackView())

	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, "2026-08-30", history[0].Date)
	assert.Equal(t, 3, history[0].Views)
	assert.Equal(t, 3, svc.TotalViews())
}

func TestDayBucketsAreUTC(t *testing.T) {
	svc := newTestAnalytics(t)

	// 23:30 UTC-5 is already the next day in UTC.
	est := time.FixedZone("EST", -5*3600)
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 29, 23, 30, 0, 0, est)
	})
	require.NoError(t, svc.TrackView())

	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, "2026-08-30", history[0].Date)
}

func TestRetentionDropsEarliestDay(t *testing.T) {
	svc := newTestAnalytics(t)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 40; i++ {
		day := base.AddDate(0, 0, i)
		svc.SetClock(func() time.Time { return day })
		require.NoError(t, svc.TrackView())
		require.NoError(t, svc.TrackView())
	}

	history := svc.History()
	require.Len(t, history, RetentionDays)
	assert.Equal(t, "2026-01-11", history[0].Date)
	assert.Equal(t, "2026-02-09", history[len(history)-1].Date)

	// Chronological ascending throughout.
	for i := 1; i < len(history); i++ {
		assert.Less(t, history[i-1].Date, history[i].Date)
	}

	// Total equals the sum over exactly the retained days.
	assert.Equal(t, RetentionDays*2, svc.TotalViews())
}
