package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/calendar/models"
	"github.com/teamhub/teamhub/internal/calendar/services"
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

func parseDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid "+name+" date, expected YYYY-MM-DD", raw))
		return time.Time{}, false
	}
	return t, true
}

// CreateEvent schedules a calendar event in a project
// POST /api/v1/projects/:id/events
func CreateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	event, err := services.CreateEvent(projectID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents lists a project's events ordered by start time
// GET /api/v1/projects/:id/events?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListEvents(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	from, ok := parseDate(c, "from")
	if !ok {
		return
	}
	to, ok := parseDate(c, "to")
	if !ok {
		return
	}

	events, err := services.ListEvents(projectID, userID, from, to)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// UpdateEvent applies partial updates to an event
// PUT /api/v1/events/:id
func UpdateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	event, err := services.UpdateEvent(eventID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event
// DELETE /api/v1/events/:id
func DeleteEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteEvent(eventID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
