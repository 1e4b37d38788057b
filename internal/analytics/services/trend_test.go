package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrendStore struct {
	completed map[string]int64
	progress  map[string]int64
	err       error
}

func (s fakeTrendStore) CountCompletedInWindow(projectID uint, from, to time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.completed[from.Format("2006-01-02")], nil
}

func (s fakeTrendStore) CountProgressInWindow(projectID uint, from, to time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.progress[from.Format("2006-01-02")], nil
}

func TestProductivityTrendSevenConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	trend := ProductivityTrend(1, now, fakeTrendStore{})

	require.Len(t, trend, 7)
	assert.Equal(t, "2026-08-23", trend[0].Date)
	assert.Equal(t, "2026-08-29", trend[6].Date)

	for i := 1; i < len(trend); i++ {
		prev, err := time.Parse("2006-01-02", trend[i-1].Date)
		require.NoError(t, err)
		cur, err := time.Parse("2006-01-02", trend[i].Date)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur, "dates must be consecutive ascending")
	}
}

func TestProductivityTrendCounts(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	store := fakeTrendStore{
		completed: map[string]int64{"2026-08-27": 2, "2026-08-29": 1},
		progress:  map[string]int64{"2026-08-27": 5},
	}

	trend := ProductivityTrend(1, now, store)
	require.Len(t, trend, 7)

	assert.Equal(t, 2, trend[4].TasksCompleted)
	assert.Equal(t, 5, trend[4].ProgressUpdates)
	assert.Equal(t, 1, trend[6].TasksCompleted)
	assert.Equal(t, 0, trend[6].ProgressUpdates)
}

func TestProductivityTrendFailsSoftToEmpty(t *testing.T) {
	trend := ProductivityTrend(1, time.Now(), fakeTrendStore{err: errors.New("db gone")})
	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}
