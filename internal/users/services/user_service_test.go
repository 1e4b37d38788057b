package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/teamhub/teamhub/internal/common/database"
	apperrors "github.com/teamhub/teamhub/internal/common/errors"
	"github.com/teamhub/teamhub/internal/users/models"
	"github.com/teamhub/teamhub/internal/users/repository"
)

func setupUserTest(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	database.DB = db
}

func TestRegisterIssuesWorkingSession(t *testing.T) {
	setupUserTest(t)

	resp, err := Register(&models.RegisterRequest{
		Name:     "ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada", resp.User.Name)

	session, err := repository.GetSessionByToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, session.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setupUserTest(t)

	req := &models.RegisterRequest{Name: "ada", Email: "ada@example.com", Password: "supersecret"}
	_, err := Register(req)
	require.NoError(t, err)

	_, err = Register(req)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginWithWrongPassword(t *testing.T) {
	setupUserTest(t)

	_, err := Register(&models.RegisterRequest{Name: "ada", Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = Login(&models.LoginRequest{Email: "ada@example.com", Password: "wrongwrong"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	setupUserTest(t)

	_, err := Login(&models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	setupUserTest(t)

	resp, err := Register(&models.RegisterRequest{Name: "ada", Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, Logout(resp.Token))

	_, err = repository.GetSessionByToken(resp.Token)
	assert.Error(t, err)
}
