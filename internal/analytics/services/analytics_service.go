package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/teamhub/teamhub/internal/analytics/models"
	calendarmodels "github.com/teamhub/teamhub/internal/calendar/models"
	calendarrepo "github.com/teamhub/teamhub/internal/calendar/repository"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	projectrepo "github.com/teamhub/teamhub/internal/projects/repository"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
	taskrepo "github.com/teamhub/teamhub/internal/tasks/repository"
	"github.com/teamhub/teamhub/pkg/logger"
)

// taskStore adapts the task repository to the TrendStore interface
type taskStore struct{}

func (taskStore) CountCompletedInWindow(projectID uint, from, to time.Time) (int64, error) {
	return taskrepo.CountCompletedInWindow(projectID, from, to)
}

func (taskStore) CountProgressInWindow(projectID uint, from, to time.Time) (int64, error) {
	return taskrepo.CountProgressInWindow(projectID, from, to)
}

// loadProject resolves the project and enforces read access. NotFound
// and Forbidden are the only terminal errors on the analytics paths.
func loadProject(projectID, userID uint) (*projectmodels.Project, error) {
	project, err := projectrepo.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	return project, nil
}

// loadTasks fetches the project's tasks, degrading to empty on failure
func loadTasks(projectID uint) []*taskmodels.Task {
	tasks, err := taskrepo.ListTasksByProject(projectID, nil)
	if err != nil {
		logger.Warn("analytics task load failed", zap.Uint("project_id", projectID), zap.Error(err))
		return []*taskmodels.Task{}
	}
	return tasks
}

// ProjectAnalytics assembles the dashboard payload: project stats,
// per-member workload, 7-day trend and alerts. Sub-computations fail
// soft: a failed slice comes back empty and the rest still renders.
func ProjectAnalytics(projectID, userID uint, now time.Time) (*models.ProjectAnalytics, error) {
	project, err := loadProject(projectID, userID)
	if err != nil {
		return nil, err
	}

	tasks := loadTasks(projectID)

	members, err := projectrepo.ListMembers(projectID)
	if err != nil {
		logger.Warn("analytics member load failed", zap.Uint("project_id", projectID), zap.Error(err))
		members = []projectmodels.MemberInfo{}
	}

	progress, err := taskrepo.ListProgressByProject(projectID)
	if err != nil {
		logger.Warn("analytics progress load failed", zap.Uint("project_id", projectID), zap.Error(err))
		progress = []taskmodels.ProgressWithTask{}
	}

	workload := TeamWorkload(members, tasks, progress, now)

	return &models.ProjectAnalytics{
		Project: models.ProjectSummary{
			ID:    project.ID,
			Name:  project.Name,
			Stats: ProjectStats(tasks, now),
		},
		TeamWorkload:      workload,
		ProductivityTrend: ProductivityTrend(projectID, now, taskStore{}),
		Alerts:            GenerateAlerts(tasks, workload, now),
	}, nil
}

// TeamPerformance computes per-member performance metrics for a project
func TeamPerformance(projectID, userID uint, now time.Time) ([]models.MemberPerformance, error) {
	if _, err := loadProject(projectID, userID); err != nil {
		return nil, err
	}

	tasks := loadTasks(projectID)

	members, err := projectrepo.ListMembers(projectID)
	if err != nil {
		logger.Warn("analytics member load failed", zap.Uint("project_id", projectID), zap.Error(err))
		members = []projectmodels.MemberInfo{}
	}

	progress, err := taskrepo.ListProgressByProject(projectID)
	if err != nil {
		logger.Warn("analytics progress load failed", zap.Uint("project_id", projectID), zap.Error(err))
		progress = []taskmodels.ProgressWithTask{}
	}

	performance := make([]models.MemberPerformance, 0, len(members))
	for _, member := range members {
		var memberTasks []*taskmodels.Task
		assigned := make(map[uint]bool)
		for _, task := range tasks {
			if task.AssigneeID != nil && *task.AssigneeID == member.ID {
				memberTasks = append(memberTasks, task)
				assigned[task.ID] = true
			}
		}

		var memberProgress []taskmodels.ProgressWithTask
		var hours float64
		completed := 0
		for _, task := range memberTasks {
			if task.Status == taskmodels.StatusCompleted {
				completed++
			}
		}
		for _, entry := range progress {
			if entry.UserID == member.ID && assigned[entry.TaskID] {
				memberProgress = append(memberProgress, entry)
				hours += entry.HoursWorked
			}
		}

		rate := 0
		if len(memberTasks) > 0 {
			rate = roundHalfUp(100 * float64(completed) / float64(len(memberTasks)))
		}

		performance = append(performance, models.MemberPerformance{
			Member: member,
			Metrics: models.PerformanceMetrics{
				TasksAssigned:     len(memberTasks),
				TasksCompleted:    completed,
				TotalHoursLogged:  hours,
				AvgCompletionRate: rate,
				ProductivityScore: ProductivityScore(memberTasks, memberProgress),
			},
		})
	}

	return performance, nil
}

// Timeline assembles the Gantt-style projection for a project
func Timeline(projectID, userID uint, now time.Time) (*models.ProjectTimeline, error) {
	project, err := loadProject(projectID, userID)
	if err != nil {
		return nil, err
	}

	tasks := loadTasks(projectID)

	events, err := calendarrepo.ListEventsByProject(projectID, time.Time{}, time.Time{})
	if err != nil {
		logger.Warn("analytics event load failed", zap.Uint("project_id", projectID), zap.Error(err))
		events = []*calendarmodels.CalendarEvent{}
	}

	members, err := projectrepo.ListMembers(projectID)
	if err != nil {
		logger.Warn("analytics member load failed", zap.Uint("project_id", projectID), zap.Error(err))
		members = []projectmodels.MemberInfo{}
	}

	return &models.ProjectTimeline{
		Project: models.ProjectSummary{
			ID:    project.ID,
			Name:  project.Name,
			Stats: ProjectStats(tasks, now),
		},
		Timeline: ProjectTimeline(tasks, events, members),
	}, nil
}
