package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
	"github.com/teamhub/teamhub/internal/timetracking/models"
	"github.com/teamhub/teamhub/internal/timetracking/services"
)

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
	}
	return userID, ok
}

// CreateEntry logs a time entry for the caller
// POST /api/v1/time-entries
func CreateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	entry, err := services.CreateEntry(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListMyEntries lists the caller's time entries
// GET /api/v1/time-entries?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListMyEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entries, err := services.ListMyEntries(userID, c.Query("from"), c.Query("to"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"summary": services.Summarize(entries),
	})
}

// ListProjectEntries lists a project's time entries
// GET /api/v1/projects/:id/time-entries?from=...&to=...
func ListProjectEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	entries, err := services.ListProjectEntries(projectID, userID, c.Query("from"), c.Query("to"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"summary": services.Summarize(entries),
	})
}

// ProjectTimeSummary totals a project's time with a billable split
// GET /api/v1/projects/:id/time-summary?from=...&to=...
func ProjectTimeSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	summary, err := services.ProjectSummary(projectID, userID, c.Query("from"), c.Query("to"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DeleteEntry removes one of the caller's own entries
// DELETE /api/v1/time-entries/:id
func DeleteEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	entryID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteEntry(entryID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "time entry deleted"})
}
