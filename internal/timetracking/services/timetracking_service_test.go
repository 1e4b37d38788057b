package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub/teamhub/internal/timetracking/models"
)

func TestSummarizeSplitsBillableHours(t *testing.T) {
	entries := []*models.TimeEntry{
		{Hours: 2, Billable: true},
		{Hours: 1.5, Billable: false},
		{Hours: 0.5, Billable: true},
	}

	summary := Summarize(entries)
	assert.Equal(t, 4.0, summary.TotalHours)
	assert.Equal(t, 2.5, summary.BillableHours)
	assert.Equal(t, 3, summary.EntryCount)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0.0, summary.TotalHours)
	assert.Equal(t, 0, summary.EntryCount)
}

func TestParseRangeUpperBoundIsExclusiveNextDay(t *testing.T) {
	filter, err := parseRange("2026-08-01", "2026-08-07")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", filter.From.Format("2006-01-02"))
	assert.Equal(t, "2026-08-08", filter.To.Format("2006-01-02"))
}

func TestParseRangeRejectsBadDates(t *testing.T) {
	_, err := parseRange("August 1st", "")
	assert.Error(t, err)

	_, err = parseRange("", "2026/08/07")
	assert.Error(t, err)
}

func TestParseRangeUnbounded(t *testing.T) {
	filter, err := parseRange("", "")
	require.NoError(t, err)
	assert.True(t, filter.From.IsZero())
	assert.True(t, filter.To.IsZero())
}
