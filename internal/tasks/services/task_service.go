package services

import (
	"fmt"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/validation"
	notifsvc "github.com/teamhub/teamhub/internal/notifications/services"
	projectrepo "github.com/teamhub/teamhub/internal/projects/repository"
	projectsvc "github.com/teamhub/teamhub/internal/projects/services"
	"github.com/teamhub/teamhub/internal/tasks/models"
	"github.com/teamhub/teamhub/internal/tasks/repository"
)

// Broadcaster pushes task events to project subscribers
type Broadcaster interface {
	Broadcast(channel, eventType string, data interface{})
}

var (
	dispatcher  *notifsvc.Dispatcher
	broadcaster Broadcaster
	channelFor  func(projectID uint) string
)

// Configure wires the notification dispatcher and realtime broadcaster.
// Called once from main; both may be nil in tests.
func Configure(d *notifsvc.Dispatcher, b Broadcaster, channel func(projectID uint) string) {
	dispatcher = d
	broadcaster = b
	channelFor = channel
}

func broadcast(projectID uint, eventType string, data interface{}) {
	if broadcaster == nil || channelFor == nil {
		return
	}
	broadcaster.Broadcast(channelFor(projectID), eventType, data)
}

// CreateTask creates a task in a project; any member may create
func CreateTask(projectID, userID uint, req *models.CreateTaskRequest) (*models.Task, error) {
	if _, err := projectrepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !validation.OneOf(priority, validation.TaskPriorities) {
		return nil, errors.BadRequest("invalid task priority", priority)
	}

	if req.AssigneeID != nil {
		if err := projectsvc.RequireMember(projectID, *req.AssigneeID); err != nil {
			return nil, errors.BadRequest("assignee is not a project member")
		}
	}

	task := &models.Task{
		ProjectID:      projectID,
		Title:          req.Title,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
		Status:         models.StatusTodo,
		Priority:       priority,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}
	if err := repository.CreateTask(task); err != nil {
		return nil, err
	}

	if task.AssigneeID != nil && *task.AssigneeID != userID && dispatcher != nil {
		dispatcher.Notify(*task.AssigneeID, "task_assigned",
			"New task assigned",
			fmt.Sprintf("You were assigned %q", task.Title))
	}
	broadcast(projectID, "task_created", task)

	return task, nil
}

// GetTask retrieves a task, enforcing project membership
func GetTask(taskID, userID uint) (*models.Task, error) {
	task, err := repository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(task.ProjectID, userID); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves a project's tasks, optionally filtered
func ListTasks(projectID, userID uint, filter *models.TaskListFilter) ([]*models.Task, error) {
	if _, err := projectrepo.GetProjectByID(projectID); err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(projectID, userID); err != nil {
		return nil, err
	}
	if filter != nil && filter.Status != "" && !validation.OneOf(filter.Status, validation.TaskStatuses) {
		return nil, errors.BadRequest("invalid task status", filter.Status)
	}
	return repository.ListTasksByProject(projectID, filter)
}

// MyTasks retrieves tasks assigned to the caller across all projects
func MyTasks(userID uint) ([]*models.Task, error) {
	return repository.ListTasksByAssignee(userID)
}

// UpdateTask applies partial updates, validating vocabularies. A
// transition into completed notifies the project manager and is
// broadcast to project subscribers.
func UpdateTask(taskID, userID uint, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := repository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(task.ProjectID, userID); err != nil {
		return nil, err
	}

	wasCompleted := task.Status == models.StatusCompleted

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssigneeID != nil {
		if err := projectsvc.RequireMember(task.ProjectID, *req.AssigneeID); err != nil {
			return nil, errors.BadRequest("assignee is not a project member")
		}
		task.AssigneeID = req.AssigneeID
	}
	if req.Status != nil {
		if !validation.OneOf(*req.Status, validation.TaskStatuses) {
			return nil, errors.BadRequest("invalid task status", *req.Status)
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !validation.OneOf(*req.Priority, validation.TaskPriorities) {
			return nil, errors.BadRequest("invalid task priority", *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}

	if err := repository.UpdateTask(task); err != nil {
		return nil, err
	}

	if !wasCompleted && task.Status == models.StatusCompleted {
		if project, perr := projectrepo.GetProjectByID(task.ProjectID); perr == nil {
			if project.ManagerID != userID && dispatcher != nil {
				dispatcher.Notify(project.ManagerID, "task_completed",
					"Task completed",
					fmt.Sprintf("%q was marked completed", task.Title))
			}
		}
		broadcast(task.ProjectID, "task_completed", task)
	} else {
		broadcast(task.ProjectID, "task_updated", task)
	}

	return task, nil
}

// DeleteTask removes a task; only the project manager may delete
func DeleteTask(taskID, userID uint) error {
	task, err := repository.GetTaskByID(taskID)
	if err != nil {
		return err
	}
	if err := projectsvc.RequireManager(task.ProjectID, userID); err != nil {
		return err
	}
	if err := repository.DeleteTask(taskID); err != nil {
		return err
	}
	broadcast(task.ProjectID, "task_deleted", map[string]interface{}{"id": taskID})
	return nil
}

// ========== PROGRESS ==========

// AddProgress appends a progress report to a task. The reported percent
// is accepted as given.
func AddProgress(taskID, userID uint, req *models.AddProgressRequest) (*models.TaskProgress, error) {
	task, err := repository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(task.ProjectID, userID); err != nil {
		return nil, err
	}

	progress := &models.TaskProgress{
		TaskID:          taskID,
		UserID:          userID,
		ProgressPercent: req.ProgressPercent,
		HoursWorked:     req.HoursWorked,
		Note:            req.Note,
	}
	if err := repository.CreateProgress(progress); err != nil {
		return nil, err
	}

	broadcast(task.ProjectID, "progress_reported", progress)
	return progress, nil
}

// ListProgress retrieves a task's progress log, newest first
func ListProgress(taskID, userID uint) ([]*models.TaskProgress, error) {
	task, err := repository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if err := projectsvc.RequireMember(task.ProjectID, userID); err != nil {
		return nil, err
	}
	return repository.ListProgressByTask(taskID)
}
