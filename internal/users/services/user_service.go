package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/users/auth"
	"github.com/teamhub/teamhub/internal/users/models"
	"github.com/teamhub/teamhub/internal/users/repository"
)

// SessionTTL is how long issued tokens stay valid.
const SessionTTL = 7 * 24 * time.Hour

// Register creates an account and logs the user in
func Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := repository.GetUserByEmail(req.Email); err == nil {
		return nil, errors.Conflict("email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err.Error())
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         "member",
	}
	if err := repository.CreateUser(user); err != nil {
		return nil, err
	}

	return issueSession(user)
}

// Login verifies credentials and issues a session token
func Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := repository.GetUserByEmail(req.Email)
	if err != nil {
		return nil, errors.Unauthorized("invalid email or password")
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errors.Unauthorized("invalid email or password")
	}

	return issueSession(user)
}

// Logout invalidates a session token
func Logout(token string) error {
	return repository.DeleteSession(token)
}

// GetUser retrieves a user by ID
func GetUser(id uint) (*models.User, error) {
	return repository.GetUserByID(id)
}

// ListUsers retrieves all users as public projections
func ListUsers() ([]models.PublicUser, error) {
	users, err := repository.ListUsers()
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicUser, len(users))
	for i, u := range users {
		public[i] = models.PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return public, nil
}

func issueSession(user *models.User) (*models.AuthResponse, error) {
	session := &models.Session{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := repository.CreateSession(session); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      *user,
	}, nil
}
