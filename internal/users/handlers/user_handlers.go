package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/common/middleware"
	"github.com/teamhub/teamhub/internal/users/models"
	"github.com/teamhub/teamhub/internal/users/services"
)

// Register creates a new account
// POST /api/v1/auth/register
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid registration payload", err.Error()))
		return
	}

	resp, err := services.Register(&req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login issues a session token
// POST /api/v1/auth/login
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid login payload", err.Error()))
		return
	}

	resp, err := services.Login(&req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout invalidates the current session
// POST /api/v1/auth/logout
func Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("no session token supplied"))
		return
	}

	if err := services.Logout(token); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GetCurrentUser returns the authenticated user
// GET /api/v1/users/me
func GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("user not authenticated"))
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns all workspace users
// GET /api/v1/users
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}
