package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
	"github.com/teamhub/teamhub/internal/tasks/models"
	"github.com/teamhub/teamhub/internal/tasks/services"
)

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
	}
	return userID, ok
}

// CreateTask creates a task inside a project
// POST /api/v1/projects/:id/tasks
func CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	task, err := services.CreateTask(projectID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks lists a project's tasks, filterable by status and assignee
// GET /api/v1/projects/:id/tasks?status=...&assignee_id=...
func ListTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	filter := &models.TaskListFilter{Status: c.Query("status")}
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			middleware.JSONErrorResponse(c, errors.BadRequest("invalid assignee_id", raw))
			return
		}
		assigneeID := uint(id)
		filter.AssigneeID = &assigneeID
	}

	tasks, err := services.ListTasks(projectID, userID, filter)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// MyTasks lists tasks assigned to the caller across projects
// GET /api/v1/tasks/mine
func MyTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := services.MyTasks(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// GetTask retrieves a single task
// GET /api/v1/tasks/:id
func GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	task, err := services.GetTask(taskID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies partial updates to a task
// PUT /api/v1/tasks/:id
func UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	task, err := services.UpdateTask(taskID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task
// DELETE /api/v1/tasks/:id
func DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteTask(taskID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// ========== PROGRESS ==========

// AddProgress appends a progress report to a task
// POST /api/v1/tasks/:id/progress
func AddProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	progress, err := services.AddProgress(taskID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, progress)
}

// ListProgress retrieves a task's progress log, newest first
// GET /api/v1/tasks/:id/progress
func ListProgress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	entries, err := services.ListProgress(taskID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": entries, "count": len(entries)})
}
