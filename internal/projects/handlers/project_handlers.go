package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	"github.com/teamhub/teamhub/internal/projects/models"
	"github.com/teamhub/teamhub/internal/projects/services"
)

// ParseID parses a :id style route parameter into a uint.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("user not authenticated"))
	}
	return userID, ok
}

// CreateProject creates a project owned by the caller
// POST /api/v1/projects
func CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid project payload", err.Error()))
		return
	}

	project, err := services.CreateProject(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject returns a project with members
// GET /api/v1/projects/:id
func GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}

	resp, err := services.GetProject(projectID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListProjects returns the caller's projects
// GET /api/v1/projects
func ListProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := services.ListProjects(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

// UpdateProject applies partial updates
// PUT /api/v1/projects/:id
func UpdateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid project payload", err.Error()))
		return
	}

	project, err := services.UpdateProject(projectID, userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project
// DELETE /api/v1/projects/:id
func DeleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteProject(projectID, userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember adds a user to the project
// POST /api/v1/projects/:id/members
func AddMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid member payload", err.Error()))
		return
	}

	if err := services.AddMember(projectID, userID, &req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "member added"})
}

// RemoveMember removes a user from the project
// DELETE /api/v1/projects/:id/members/:user_id
func RemoveMember(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}
	targetID, ok := ParseID(c, "user_id")
	if !ok {
		return
	}

	if err := services.RemoveMember(projectID, userID, targetID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers returns the project member list
// GET /api/v1/projects/:id/members
func ListMembers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := ParseID(c, "id")
	if !ok {
		return
	}

	members, err := services.ListMembers(projectID, userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members, "total": len(members)})
}
