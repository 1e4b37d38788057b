package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

func TestProductivityScoreZeroWithoutTasks(t *testing.T) {
	progress := []taskmodels.ProgressWithTask{{ID: 1, HoursWorked: 40}}
	assert.Equal(t, 0, ProductivityScore(nil, progress))
}

func TestProductivityScoreScenario(t *testing.T) {
	tasks := []*taskmodels.Task{
		{ID: 1, Status: taskmodels.StatusCompleted},
		{ID: 2, Status: taskmodels.StatusInProgress},
	}
	progress := []taskmodels.ProgressWithTask{{ID: 1, TaskID: 2, HoursWorked: 3}}

	// completionRate 50, activityScore 10, timeScore 6:
	// 50*0.5 + 10*0.3 + 6*0.2 = 29.2 -> 29
	assert.Equal(t, 29, ProductivityScore(tasks, progress))
}

func TestProductivityScoreCapsAtHundred(t *testing.T) {
	var tasks []*taskmodels.Task
	for i := uint(1); i <= 10; i++ {
		tasks = append(tasks, &taskmodels.Task{ID: i, Status: taskmodels.StatusCompleted})
	}
	var progress []taskmodels.ProgressWithTask
	for i := uint(1); i <= 20; i++ {
		progress = append(progress, taskmodels.ProgressWithTask{ID: i, HoursWorked: 10})
	}

	assert.Equal(t, 100, ProductivityScore(tasks, progress))
}

func TestProductivityScoreNoProgress(t *testing.T) {
	tasks := []*taskmodels.Task{
		{ID: 1, Status: taskmodels.StatusCompleted},
		{ID: 2, Status: taskmodels.StatusCompleted},
	}

	// completionRate 100, no activity or time contribution
	assert.Equal(t, 50, ProductivityScore(tasks, nil))
}

func TestProductivityScoreAlwaysInRange(t *testing.T) {
	cases := []struct {
		tasks    []*taskmodels.Task
		progress []taskmodels.ProgressWithTask
	}{
		{nil, nil},
		{[]*taskmodels.Task{{ID: 1, Status: taskmodels.StatusTodo}}, nil},
		{[]*taskmodels.Task{{ID: 1, Status: taskmodels.StatusCompleted}},
			[]taskmodels.ProgressWithTask{{ID: 1, HoursWorked: 500}}},
	}

	for _, tc := range cases {
		score := ProductivityScore(tc.tasks, tc.progress)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
