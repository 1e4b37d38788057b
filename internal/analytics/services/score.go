package services

import (
	"math"

	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

// ProductivityScore combines completion rate, report activity and
// logged hours into a 0-100 score. A member with no tasks scores 0
// regardless of progress data.
func ProductivityScore(tasks []*taskmodels.Task, progress []taskmodels.ProgressWithTask) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, task := range tasks {
		if task.Status == taskmodels.StatusCompleted {
			completed++
		}
	}
	completionRate := 100 * float64(completed) / float64(len(tasks))

	activityScore := math.Min(float64(len(progress))*10, 100)

	var timeScore float64
	if len(progress) > 0 {
		var hours float64
		for _, entry := range progress {
			hours += entry.HoursWorked
		}
		timeScore = math.Min(hours*2, 100)
	}

	return roundHalfUp(completionRate*0.5 + activityScore*0.3 + timeScore*0.2)
}
