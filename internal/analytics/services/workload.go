package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/teamhub/teamhub/internal/analytics/models"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
)

// TeamWorkload computes the per-member workload summary for a project.
// Pure over its inputs; progress carries every report against the
// project's tasks, newest first or not.
func TeamWorkload(members []projectmodels.MemberInfo, tasks []*taskmodels.Task, progress []taskmodels.ProgressWithTask, now time.Time) []models.MemberWorkload {
	workload := make([]models.MemberWorkload, 0, len(members))
	for _, member := range members {
		workload = append(workload, memberWorkload(member, tasks, progress, now))
	}
	return workload
}

func memberWorkload(member projectmodels.MemberInfo, tasks []*taskmodels.Task, progress []taskmodels.ProgressWithTask, now time.Time) models.MemberWorkload {
	assigned := make(map[uint]bool)
	stats := models.TaskStats{}
	for _, task := range tasks {
		if task.AssigneeID == nil || *task.AssigneeID != member.ID {
			continue
		}
		assigned[task.ID] = true
		stats.Total++
		switch task.Status {
		case taskmodels.StatusCompleted:
			stats.Completed++
		case taskmodels.StatusInProgress:
			stats.InProgress++
		}
		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != taskmodels.StatusCompleted {
			stats.Overdue++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = roundHalfUp(100 * float64(stats.Completed) / float64(stats.Total))
	}

	// Hours are credited to the report's author over the member's
	// assigned task set.
	var totalHours float64
	for _, entry := range progress {
		if entry.UserID == member.ID && assigned[entry.TaskID] {
			totalHours += entry.HoursWorked
		}
	}
	tracking := models.TimeTracking{TotalHoursWorked: totalHours}
	if stats.Total > 0 {
		tracking.AvgHoursPerTask = math.Round(totalHours/float64(stats.Total)*10) / 10
	}

	return models.MemberWorkload{
		Member:         member,
		TaskStats:      stats,
		TimeTracking:   tracking,
		RecentActivity: recentActivity(member.ID, progress),
	}
}

// recentActivity renders the member's 3 most recent progress reports
// against any task in the project, newest first.
func recentActivity(memberID uint, progress []taskmodels.ProgressWithTask) []models.ActivityEntry {
	var mine []taskmodels.ProgressWithTask
	for _, entry := range progress {
		if entry.UserID == memberID {
			mine = append(mine, entry)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	if len(mine) > 3 {
		mine = mine[:3]
	}

	activity := make([]models.ActivityEntry, 0, len(mine))
	for _, entry := range mine {
		activity = append(activity, models.ActivityEntry{
			Date:     entry.CreatedAt,
			Activity: fmt.Sprintf("Updated %q to %d%%", entry.TaskTitle, entry.ProgressPercent),
		})
	}
	return activity
}

// ProjectStats computes the project-wide task count block
func ProjectStats(tasks []*taskmodels.Task, now time.Time) models.ProjectStats {
	stats := models.ProjectStats{TotalTasks: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case taskmodels.StatusCompleted:
			stats.CompletedTasks++
		case taskmodels.StatusInProgress:
			stats.InProgressTasks++
		}
		if task.DueDate != nil && task.DueDate.Before(now) && task.Status != taskmodels.StatusCompleted {
			stats.OverdueTasks++
		}
		if task.AssigneeID == nil {
			stats.UnassignedTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionPercentage = roundHalfUp(100 * float64(stats.CompletedTasks) / float64(stats.TotalTasks))
	}
	return stats
}

// roundHalfUp rounds to the nearest integer, halves up
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
