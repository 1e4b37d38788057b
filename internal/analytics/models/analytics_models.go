package models

import (
	"time"

	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
)

// Result shapes for the analytics endpoints. These use camelCase JSON
// keys, the contract the dashboard frontend consumes.

// TaskStats summarizes one member's assigned tasks
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

// TimeTracking summarizes hours a member logged via progress reports
type TimeTracking struct {
	TotalHoursWorked float64 `json:"totalHoursWorked"`
	AvgHoursPerTask  float64 `json:"avgHoursPerTask"`
}

// ActivityEntry is one line of a member's recent activity feed
type ActivityEntry struct {
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
}

// MemberWorkload is the per-member output of the workload aggregator
type MemberWorkload struct {
	Member         projectmodels.MemberInfo `json:"member"`
	TaskStats      TaskStats                `json:"taskStats"`
	TimeTracking   TimeTracking             `json:"timeTracking"`
	RecentActivity []ActivityEntry          `json:"recentActivity"`
}

// Alert is a derived warning or informational notice about a project
type Alert struct {
	Type    string   `json:"type"` // "warning" or "info"
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Count   int      `json:"count,omitempty"`
	Members []string `json:"members,omitempty"`
}

// TrendPoint is one day of the 7-day productivity trend
type TrendPoint struct {
	Date            string `json:"date"` // YYYY-MM-DD
	TasksCompleted  int    `json:"tasksCompleted"`
	ProgressUpdates int    `json:"progressUpdates"`
}

// TimelineItem is one task projected onto a Gantt-style timeline
type TimelineItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Assignee  string    `json:"assignee"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	Progress  int       `json:"progress"`
	Color     string    `json:"color"`
}

// ProjectStats is the project-wide task count block
type ProjectStats struct {
	TotalTasks           int `json:"totalTasks"`
	CompletedTasks       int `json:"completedTasks"`
	InProgressTasks      int `json:"inProgressTasks"`
	OverdueTasks         int `json:"overdueTasks"`
	UnassignedTasks      int `json:"unassignedTasks"`
	CompletionPercentage int `json:"completionPercentage"`
}

// ProjectSummary heads the analytics response
type ProjectSummary struct {
	ID    uint         `json:"id"`
	Name  string       `json:"name"`
	Stats ProjectStats `json:"stats"`
}

// ProjectAnalytics is the full analytics dashboard payload
type ProjectAnalytics struct {
	Project           ProjectSummary   `json:"project"`
	TeamWorkload      []MemberWorkload `json:"teamWorkload"`
	ProductivityTrend []TrendPoint     `json:"productivityTrend"`
	Alerts            []Alert          `json:"alerts"`
}

// PerformanceMetrics is the per-member team-performance block
type PerformanceMetrics struct {
	TasksAssigned     int     `json:"tasksAssigned"`
	TasksCompleted    int     `json:"tasksCompleted"`
	TotalHoursLogged  float64 `json:"totalHoursLogged"`
	AvgCompletionRate int     `json:"avgCompletionRate"`
	ProductivityScore int     `json:"productivityScore"`
}

// MemberPerformance pairs a member with their metrics
type MemberPerformance struct {
	Member  projectmodels.MemberInfo `json:"member"`
	Metrics PerformanceMetrics       `json:"metrics"`
}

// ProjectTimeline is the timeline endpoint payload
type ProjectTimeline struct {
	Project  ProjectSummary `json:"project"`
	Timeline []TimelineItem `json:"timeline"`
}
