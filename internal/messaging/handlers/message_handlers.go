package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	"github.com/teamhub/teamhub/internal/messaging/models"
	"github.com/teamhub/teamhub/internal/messaging/services"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
)

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
	}
	return userID, ok
}

func pageParams(c *gin.Context) (beforeID uint, limit int) {
	if raw := c.Query("before"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			beforeID = uint(id)
		}
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	return beforeID, limit
}

// SendProjectMessage posts to a project channel
// POST /api/v1/projects/:id/messages
func SendProjectMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	message, err := services.SendProjectMessage(projectID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListProjectMessages pages a project channel's history
// GET /api/v1/projects/:id/messages?before=...&limit=...
func ListProjectMessages(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	beforeID, limit := pageParams(c)
	messages, err := services.ListProjectMessages(projectID, userID, beforeID, limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// SendDirectMessage sends a DM to another user
// POST /api/v1/messages/direct/:id
func SendDirectMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	recipientID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	message, err := services.SendDirectMessage(userID, recipientID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListDirectMessages pages a DM conversation
// GET /api/v1/messages/direct/:id?before=...&limit=...
func ListDirectMessages(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	otherID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	beforeID, limit := pageParams(c)
	messages, err := services.ListDirectMessages(userID, otherID, beforeID, limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// DeleteMessage removes one of the caller's own messages
// DELETE /api/v1/messages/:id
func DeleteMessage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	messageID, ok := projecthandlers.ParseID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteMessage(messageID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
