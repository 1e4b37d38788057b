package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/analytics/services"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
)

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
	}
	return userID, ok
}

// ProjectAnalytics returns the project dashboard payload: stats, team
// workload, 7-day productivity trend and alerts
// GET /api/v1/analytics/projects/:id
func ProjectAnalytics(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	analytics, err := services.ProjectAnalytics(projectID, userID, time.Now())
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// TeamPerformance returns per-member performance metrics
// GET /api/v1/analytics/projects/:id/team-performance
func TeamPerformance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	performance, err := services.TeamPerformance(projectID, userID, time.Now())
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"performance": performance})
}

// Timeline returns the Gantt-style task projection
// GET /api/v1/analytics/projects/:id/timeline
func Timeline(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	timeline, err := services.Timeline(projectID, userID, time.Now())
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, timeline)
}
