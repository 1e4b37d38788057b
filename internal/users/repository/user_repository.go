package repository

import (
	"time"

	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/users/models"
)

// ========== USER REPOSITORY ==========

// CreateUser creates a new user account
func CreateUser(user *models.User) error {
	result := database.DB.Create(user)
	if result.Error != nil {
		return errors.Internal("failed to create user", result.Error.Error())
	}
	return nil
}

// GetUserByID retrieves a user by ID
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, id)
	if result.Error != nil {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

// ListUsers retrieves all users
func ListUsers() ([]*models.User, error) {
	var users []*models.User
	result := database.DB.Order("name ASC").Find(&users)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch users", result.Error.Error())
	}
	return users, nil
}

// ========== SESSION REPOSITORY ==========

// CreateSession stores a new session token
func CreateSession(session *models.Session) error {
	result := database.DB.Create(session)
	if result.Error != nil {
		return errors.Internal("failed to create session", result.Error.Error())
	}
	return nil
}

// GetSessionByToken retrieves a live session by token
func GetSessionByToken(token string) (*models.Session, error) {
	var session models.Session
	result := database.DB.
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session)
	if result.Error != nil {
		return nil, errors.NotFound("session")
	}
	return &session, nil
}

// DeleteSession removes a session (logout)
func DeleteSession(token string) error {
	result := database.DB.Where("token = ?", token).Delete(&models.Session{})
	if result.Error != nil {
		return errors.Internal("failed to delete session", result.Error.Error())
	}
	return nil
}

// DeleteExpiredSessions clears out stale tokens
func DeleteExpiredSessions() error {
	result := database.DB.Where("expires_at <= ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		return errors.Internal("failed to prune sessions", result.Error.Error())
	}
	return nil
}
