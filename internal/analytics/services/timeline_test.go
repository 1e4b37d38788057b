package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendarmodels "github.com/teamhub/teamhub/internal/calendar/models"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

func TestTimelineStatusColorBeatsPriority(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	tasks := []*taskmodels.Task{
		{ID: 1, Title: "Ship it", Status: taskmodels.StatusCompleted, Priority: taskmodels.PriorityUrgent, DueDate: timePtr(yesterday)},
	}

	timeline := ProjectTimeline(tasks, nil, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, "#10B981", timeline[0].Color)
}

func TestTimelineColorPrecedence(t *testing.T) {
	cases := []struct {
		status   string
		priority string
		color    string
	}{
		{taskmodels.StatusCompleted, taskmodels.PriorityLow, "#10B981"},
		{taskmodels.StatusBlocked, taskmodels.PriorityUrgent, "#EF4444"},
		{taskmodels.StatusTodo, taskmodels.PriorityUrgent, "#F59E0B"},
		{taskmodels.StatusInProgress, taskmodels.PriorityHigh, "#F97316"},
		{taskmodels.StatusTodo, taskmodels.PriorityMedium, "#3B82F6"},
	}

	for _, tc := range cases {
		tasks := []*taskmodels.Task{{ID: 1, Status: tc.status, Priority: tc.priority}}
		timeline := ProjectTimeline(tasks, nil, nil)
		require.Len(t, timeline, 1)
		assert.Equal(t, tc.color, timeline[0].Color, "status=%s priority=%s", tc.status, tc.priority)
	}
}

func TestTimelineDefaultEndDateIsOneWeekOut(t *testing.T) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tasks := []*taskmodels.Task{{ID: 1, Status: taskmodels.StatusTodo, CreatedAt: created}}

	timeline := ProjectTimeline(tasks, nil, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, created, timeline[0].StartDate)
	assert.Equal(t, created.AddDate(0, 0, 7), timeline[0].EndDate)
}

func TestTimelineEventAnchorsDates(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	taskID := uint(1)
	tasks := []*taskmodels.Task{{ID: taskID, Status: taskmodels.StatusTodo, CreatedAt: created, DueDate: timePtr(due)}}
	events := []*calendarmodels.CalendarEvent{{ID: 1, TaskID: &taskID, StartTime: start, EndTime: &end}}

	timeline := ProjectTimeline(tasks, events, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, start, timeline[0].StartDate)
	assert.Equal(t, end, timeline[0].EndDate)
}

func TestTimelineDueDateBeatsDefaultEnd(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	tasks := []*taskmodels.Task{{ID: 1, Status: taskmodels.StatusTodo, CreatedAt: created, DueDate: timePtr(due)}}

	timeline := ProjectTimeline(tasks, nil, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, due, timeline[0].EndDate)
}

func TestTimelineAssigneeNames(t *testing.T) {
	members := []projectmodels.MemberInfo{member(3, "ada")}
	tasks := []*taskmodels.Task{
		{ID: 1, Status: taskmodels.StatusTodo, AssigneeID: uintPtr(3)},
		{ID: 2, Status: taskmodels.StatusTodo},
		{ID: 3, Status: taskmodels.StatusTodo, AssigneeID: uintPtr(99)}, // not in member list
	}

	timeline := ProjectTimeline(tasks, nil, members)
	require.Len(t, timeline, 3)
	assert.Equal(t, "ada", timeline[0].Assignee)
	assert.Equal(t, "Unassigned", timeline[1].Assignee)
	assert.Equal(t, "Unassigned", timeline[2].Assignee)
}

func TestTimelineProgressMapping(t *testing.T) {
	tasks := []*taskmodels.Task{
		{ID: 1, Status: taskmodels.StatusCompleted},
		{ID: 2, Status: taskmodels.StatusInProgress},
		{ID: 3, Status: taskmodels.StatusBlocked},
		{ID: 4, Status: taskmodels.StatusTodo},
	}

	timeline := ProjectTimeline(tasks, nil, nil)
	require.Len(t, timeline, 4)
	assert.Equal(t, 100, timeline[0].Progress)
	assert.Equal(t, 50, timeline[1].Progress)
	assert.Equal(t, 25, timeline[2].Progress)
	assert.Equal(t, 0, timeline[3].Progress)
}
