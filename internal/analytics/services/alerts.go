package services

import (
	"fmt"
	"time"

	"github.com/teamhub/teamhub/internal/analytics/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

// Alert thresholds. Fixed by design, not configurable.
const (
	heavyInProgressThreshold     = 5
	heavyCompletionRateThreshold = 50
)

// GenerateAlerts derives project alerts from the task list and the
// workload summary. Emission order is fixed: overdue, unassigned,
// heavy workload, low activity. A rule with no trigger emits nothing.
func GenerateAlerts(tasks []*taskmodels.Task, workload []models.MemberWorkload, now time.Time) []models.Alert {
	alerts := []models.Alert{}

	overdue := 0
	unassigned := 0
	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != taskmodels.StatusCompleted {
			overdue++
		}
		if task.AssigneeID == nil {
			unassigned++
		}
	}

	if overdue > 0 {
		alerts = append(alerts, models.Alert{
			Type:    "warning",
			Title:   "Overdue Tasks",
			Message: fmt.Sprintf("%d task(s) are past their due date", overdue),
			Count:   overdue,
		})
	}

	if unassigned > 0 {
		alerts = append(alerts, models.Alert{
			Type:    "info",
			Title:   "Unassigned Tasks",
			Message: fmt.Sprintf("%d task(s) have no assignee", unassigned),
			Count:   unassigned,
		})
	}

	var overloaded []string
	var inactive []string
	for _, member := range workload {
		if member.TaskStats.InProgress > heavyInProgressThreshold &&
			member.TaskStats.CompletionRate < heavyCompletionRateThreshold {
			overloaded = append(overloaded, member.Member.Name)
		}
		if len(member.RecentActivity) == 0 && member.TaskStats.InProgress > 0 {
			inactive = append(inactive, member.Member.Name)
		}
	}

	if len(overloaded) > 0 {
		alerts = append(alerts, models.Alert{
			Type:    "warning",
			Title:   "Heavy Workload",
			Message: "Some members have many open tasks and a low completion rate",
			Members: overloaded,
		})
	}

	if len(inactive) > 0 {
		alerts = append(alerts, models.Alert{
			Type:    "info",
			Title:   "Low Activity",
			Message: "Some members have open tasks but no recent progress reports",
			Members: inactive,
		})
	}

	return alerts
}
