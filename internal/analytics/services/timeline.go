package services

import (
	"github.com/teamhub/teamhub/internal/analytics/models"
	calendarmodels "github.com/teamhub/teamhub/internal/calendar/models"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

// Timeline colors keyed by what the item signals on a Gantt chart
const (
	colorCompleted = "#10B981" // green
	colorBlocked   = "#EF4444" // red
	colorUrgent    = "#F59E0B" // amber
	colorHigh      = "#F97316" // orange
	colorDefault   = "#3B82F6" // blue
)

// ProjectTimeline projects tasks onto Gantt-style timeline records.
// A linked calendar event anchors the task's dates; otherwise createdAt
// and dueDate stand in, with a one-week default span.
func ProjectTimeline(tasks []*taskmodels.Task, events []*calendarmodels.CalendarEvent, members []projectmodels.MemberInfo) []models.TimelineItem {
	eventByTask := make(map[uint]*calendarmodels.CalendarEvent)
	for _, event := range events {
		if event.TaskID != nil {
			eventByTask[*event.TaskID] = event
		}
	}

	names := make(map[uint]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	timeline := make([]models.TimelineItem, 0, len(tasks))
	for _, task := range tasks {
		item := models.TimelineItem{
			ID:       task.ID,
			Title:    task.Title,
			Assignee: "Unassigned",
			Status:   task.Status,
			Priority: task.Priority,
			Progress: progressFor(task.Status),
			Color:    colorFor(task),
		}

		// Assignees missing from the member list render as unassigned
		if task.AssigneeID != nil {
			if name, ok := names[*task.AssigneeID]; ok {
				item.Assignee = name
			}
		}

		event := eventByTask[task.ID]
		if event != nil {
			item.StartDate = event.StartTime
		} else {
			item.StartDate = task.CreatedAt
		}
		switch {
		case event != nil && event.EndTime != nil:
			item.EndDate = *event.EndTime
		case task.DueDate != nil:
			item.EndDate = *task.DueDate
		default:
			item.EndDate = item.StartDate.AddDate(0, 0, 7)
		}

		timeline = append(timeline, item)
	}
	return timeline
}

func progressFor(status string) int {
	switch status {
	case taskmodels.StatusCompleted:
		return 100
	case taskmodels.StatusInProgress:
		return 50
	case taskmodels.StatusBlocked:
		return 25
	default:
		return 0
	}
}

// colorFor picks the timeline color. Status wins over priority: a
// completed urgent task is green, not amber.
func colorFor(task *taskmodels.Task) string {
	switch {
	case task.Status == taskmodels.StatusCompleted:
		return colorCompleted
	case task.Status == taskmodels.StatusBlocked:
		return colorBlocked
	case task.Priority == taskmodels.PriorityUrgent:
		return colorUrgent
	case task.Priority == taskmodels.PriorityHigh:
		return colorHigh
	default:
		return colorDefault
	}
}
