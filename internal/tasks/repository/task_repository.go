package repository

import (
	"time"

	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/tasks/models"
)

// ========== TASK REPOSITORY ==========

// CreateTask creates a task
func CreateTask(task *models.Task) error {
	result := database.DB.Create(task)
	if result.Error != nil {
		return errors.Internal("failed to create task", result.Error.Error())
	}
	return nil
}

// GetTaskByID retrieves a task by ID
func GetTaskByID(id uint) (*models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, id)
	if result.Error != nil {
		return nil, errors.NotFound("task")
	}
	return &task, nil
}

// ListTasksByProject retrieves all tasks in a project, optionally filtered
// by status and assignee
func ListTasksByProject(projectID uint, filter *models.TaskListFilter) ([]*models.Task, error) {
	query := database.DB.Where("project_id = ?", projectID)

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.AssigneeID != nil {
			query = query.Where("assignee_id = ?", *filter.AssigneeID)
		}
	}

	var tasks []*models.Task
	result := query.Order("created_at ASC").Find(&tasks)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch tasks", result.Error.Error())
	}
	return tasks, nil
}

// ListTasksByAssignee retrieves tasks assigned to a user across projects
func ListTasksByAssignee(userID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	result := database.DB.Where("assignee_id = ?", userID).Find(&tasks)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch tasks", result.Error.Error())
	}
	return tasks, nil
}

// UpdateTask persists task changes
func UpdateTask(task *models.Task) error {
	result := database.DB.Save(task)
	if result.Error != nil {
		return errors.Internal("failed to update task", result.Error.Error())
	}
	return nil
}

// DeleteTask removes a task and its progress log
func DeleteTask(id uint) error {
	if result := database.DB.Where("task_id = ?", id).Delete(&models.TaskProgress{}); result.Error != nil {
		return errors.Internal("failed to delete task progress", result.Error.Error())
	}
	result := database.DB.Delete(&models.Task{}, id)
	if result.Error != nil {
		return errors.Internal("failed to delete task", result.Error.Error())
	}
	return nil
}

// CountCompletedInWindow counts project tasks whose status is completed and
// whose updated_at falls inside [from, to)
func CountCompletedInWindow(projectID uint, from, to time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Task{}).
		Where("project_id = ? AND status = ? AND updated_at >= ? AND updated_at < ?",
			projectID, models.StatusCompleted, from, to).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count completed tasks", result.Error.Error())
	}
	return count, nil
}

// ========== PROGRESS REPOSITORY ==========

// CreateProgress appends a progress report
func CreateProgress(progress *models.TaskProgress) error {
	result := database.DB.Create(progress)
	if result.Error != nil {
		return errors.Internal("failed to record progress", result.Error.Error())
	}
	return nil
}

// ListProgressByTask retrieves the progress log of a task, newest first
func ListProgressByTask(taskID uint) ([]*models.TaskProgress, error) {
	var entries []*models.TaskProgress
	result := database.DB.
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch progress", result.Error.Error())
	}
	return entries, nil
}

// ListProgressByProject retrieves all progress reports against a project's
// tasks, joined with the task title, newest first
func ListProgressByProject(projectID uint) ([]models.ProgressWithTask, error) {
	var entries []models.ProgressWithTask
	result := database.DB.
		Table("task_progresses").
		Select("task_progresses.id, task_progresses.task_id, task_progresses.user_id, task_progresses.progress_percent, task_progresses.hours_worked, task_progresses.created_at, tasks.title AS task_title").
		Joins("JOIN tasks ON tasks.id = task_progresses.task_id").
		Where("tasks.project_id = ?", projectID).
		Order("task_progresses.created_at DESC").
		Scan(&entries)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch project progress", result.Error.Error())
	}
	return entries, nil
}

// ListProgressByUser retrieves all progress reports authored by a user
func ListProgressByUser(userID uint) ([]*models.TaskProgress, error) {
	var entries []*models.TaskProgress
	result := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch progress", result.Error.Error())
	}
	return entries, nil
}

// CountProgressInWindow counts progress reports against a project's tasks
// whose created_at falls inside [from, to)
func CountProgressInWindow(projectID uint, from, to time.Time) (int64, error) {
	var count int64
	result := database.DB.
		Table("task_progresses").
		Joins("JOIN tasks ON tasks.id = task_progresses.task_id").
		Where("tasks.project_id = ? AND task_progresses.created_at >= ? AND task_progresses.created_at < ?",
			projectID, from, to).
		Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count progress reports", result.Error.Error())
	}
	return count, nil
}
