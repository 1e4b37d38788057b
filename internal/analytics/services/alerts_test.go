package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub/teamhub/internal/analytics/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

func TestGenerateAlertsEmptyProject(t *testing.T) {
	alerts := GenerateAlerts(nil, nil, time.Now())
	assert.Empty(t, alerts)
}

func TestOverdueAlertWithAssignee(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tasks := []*taskmodels.Task{
		{ID: 1, AssigneeID: uintPtr(4), Status: taskmodels.StatusTodo, DueDate: timePtr(yesterday)},
	}

	alerts := GenerateAlerts(tasks, nil, now)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "Overdue Tasks", alerts[0].Title)
	assert.Equal(t, 1, alerts[0].Count)
}

func TestCompletedTasksAreNeverOverdue(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tasks := []*taskmodels.Task{
		{ID: 1, AssigneeID: uintPtr(4), Status: taskmodels.StatusCompleted, DueDate: timePtr(yesterday)},
	}

	alerts := GenerateAlerts(tasks, nil, now)
	assert.Empty(t, alerts)
}

func TestUnassignedAlert(t *testing.T) {
	tasks := []*taskmodels.Task{
		{ID: 1, Status: taskmodels.StatusTodo},
		{ID: 2, Status: taskmodels.StatusTodo},
	}

	alerts := GenerateAlerts(tasks, nil, time.Now())
	require.Len(t, alerts, 1)
	assert.Equal(t, "info", alerts[0].Type)
	assert.Equal(t, "Unassigned Tasks", alerts[0].Title)
	assert.Equal(t, 2, alerts[0].Count)
}

func TestHeavyWorkloadAlert(t *testing.T) {
	workload := []models.MemberWorkload{
		{
			Member:         member(1, "busy"),
			TaskStats:      models.TaskStats{InProgress: 6, CompletionRate: 40},
			RecentActivity: []models.ActivityEntry{{Activity: "x"}},
		},
		{
			// High completion rate exempts this member
			Member:         member(2, "steady"),
			TaskStats:      models.TaskStats{InProgress: 8, CompletionRate: 80},
			RecentActivity: []models.ActivityEntry{{Activity: "x"}},
		},
	}

	alerts := GenerateAlerts(nil, workload, time.Now())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Heavy Workload", alerts[0].Title)
	assert.Equal(t, []string{"busy"}, alerts[0].Members)
}

func TestLowActivityAlert(t *testing.T) {
	workload := []models.MemberWorkload{
		{Member: member(1, "quiet"), TaskStats: models.TaskStats{InProgress: 2}},
		{Member: member(2, "idle"), TaskStats: models.TaskStats{InProgress: 0}},
	}

	alerts := GenerateAlerts(nil, workload, time.Now())
	require.Len(t, alerts, 1)
	assert.Equal(t, "Low Activity", alerts[0].Title)
	assert.Equal(t, []string{"quiet"}, alerts[0].Members)
}

func TestAlertOrderingFixed(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tasks := []*taskmodels.Task{
		{ID: 1, AssigneeID: uintPtr(1), Status: taskmodels.StatusTodo, DueDate: timePtr(yesterday)},
		{ID: 2, Status: taskmodels.StatusTodo},
	}
	workload := []models.MemberWorkload{
		{Member: member(1, "busy"), TaskStats: models.TaskStats{InProgress: 6, CompletionRate: 10}},
	}

	alerts := GenerateAlerts(tasks, workload, now)
	require.Len(t, alerts, 4)
	assert.Equal(t, "Overdue Tasks", alerts[0].Title)
	assert.Equal(t, "Unassigned Tasks", alerts[1].Title)
	assert.Equal(t, "Heavy Workload", alerts[2].Title)
	assert.Equal(t, "Low Activity", alerts[3].Title)
}
