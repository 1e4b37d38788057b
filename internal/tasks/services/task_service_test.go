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
	notifmodels "github.com/teamhub/teamhub/internal/notifications/models"
	notifservices "github.com/teamhub/teamhub/internal/notifications/services"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	"github.com/teamhub/teamhub/internal/tasks/models"
	usersmodels "github.com/teamhub/teamhub/internal/users/models"
)

func setupTaskTest(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&usersmodels.User{},
		&projectmodels.Project{},
		&projectmodels.ProjectMember{},
		&models.Task{},
		&models.TaskProgress{},
		&notifmodels.Notification{},
		&notifmodels.EmailPreference{},
	))
	database.DB = db

	Configure(notifservices.NewDispatcher(notifservices.LogMailer{}, nil), nil, nil)
	t.Cleanup(func() { Configure(nil, nil, nil) })
}

func seedUser(t *testing.T, name string) *usersmodels.User {
	t.Helper()
	user := &usersmodels.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func seedProject(t *testing.T, manager *usersmodels.User, members ...*usersmodels.User) *projectmodels.Project {
	t.Helper()
	project := &projectmodels.Project{Name: "Apollo", ManagerID: manager.ID, Status: "active"}
	require.NoError(t, database.DB.Create(project).Error)
	require.NoError(t, database.DB.Create(&projectmodels.ProjectMember{
		ProjectID: project.ID, UserID: manager.ID, Role: "manager",
	}).Error)
	for _, m := range members {
		require.NoError(t, database.DB.Create(&projectmodels.ProjectMember{
			ProjectID: project.ID, UserID: m.ID, Role: "member",
		}).Error)
	}
	return project
}

func TestCreateTaskDefaults(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	project := seedProject(t, manager)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "Design schema"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Nil(t, task.AssigneeID)
}

func TestCreateTaskRejectsInvalidPriority(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	project := seedProject(t, manager)

	_, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "x", Priority: "asap"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestCreateTaskRejectsNonMemberAssignee(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	outsider := seedUser(t, "eve")
	project := seedProject(t, manager)

	_, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{
		Title:      "x",
		AssigneeID: &outsider.ID,
	})
	assert.Error(t, err)
}

func TestCreateTaskForbiddenForNonMembers(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	outsider := seedUser(t, "eve")
	project := seedProject(t, manager)

	_, err := CreateTask(project.ID, outsider.ID, &models.CreateTaskRequest{Title: "x"})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
}

func TestCreateTaskNotifiesAssignee(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	bob := seedUser(t, "bob")
	project := seedProject(t, manager, bob)

	_, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{
		Title:      "Build API",
		AssigneeID: &bob.ID,
	})
	require.NoError(t, err)

	var notifications []notifmodels.Notification
	require.NoError(t, database.DB.Where("user_id = ?", bob.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "task_assigned", notifications[0].Type)
}

func TestCompletionNotifiesManager(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	bob := seedUser(t, "bob")
	project := seedProject(t, manager, bob)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{
		Title:      "Build API",
		AssigneeID: &bob.ID,
	})
	require.NoError(t, err)

	completed := models.StatusCompleted
	updated, err := UpdateTask(task.ID, bob.ID, &models.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	var notifications []notifmodels.Notification
	require.NoError(t, database.DB.
		Where("user_id = ? AND type = ?", manager.ID, "task_completed").
		Find(&notifications).Error)
	assert.Len(t, notifications, 1)
}

func TestUpdateTaskRejectsInvalidStatus(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	project := seedProject(t, manager)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "x"})
	require.NoError(t, err)

	bogus := "done"
	_, err = UpdateTask(task.ID, manager.ID, &models.UpdateTaskRequest{Status: &bogus})
	assert.Error(t, err)
}

func TestDeleteTaskManagerOnly(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	bob := seedUser(t, "bob")
	project := seedProject(t, manager, bob)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "x"})
	require.NoError(t, err)

	err = DeleteTask(task.ID, bob.ID)
	require.Error(t, err)

	require.NoError(t, DeleteTask(task.ID, manager.ID))
	_, err = GetTask(task.ID, manager.ID)
	assert.Error(t, err)
}

func TestListTasksStatusFilter(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	project := seedProject(t, manager)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	_, err = CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "b"})
	require.NoError(t, err)

	inProgress := models.StatusInProgress
	_, err = UpdateTask(task.ID, manager.ID, &models.UpdateTaskRequest{Status: &inProgress})
	require.NoError(t, err)

	tasks, err := ListTasks(project.ID, manager.ID, &models.TaskListFilter{Status: models.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestAddProgressAppendsLog(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")
	project := seedProject(t, manager)

	task, err := CreateTask(project.ID, manager.ID, &models.CreateTaskRequest{Title: "x"})
	require.NoError(t, err)

	_, err = AddProgress(task.ID, manager.ID, &models.AddProgressRequest{ProgressPercent: 30, HoursWorked: 2})
	require.NoError(t, err)
	_, err = AddProgress(task.ID, manager.ID, &models.AddProgressRequest{ProgressPercent: 60, HoursWorked: 1.5})
	require.NoError(t, err)

	entries, err := ListProgress(task.ID, manager.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Percent is not clamped or forced monotonic; entries come back newest first
	assert.Equal(t, 60, entries[0].ProgressPercent)
}

func TestGetTaskNotFound(t *testing.T) {
	setupTaskTest(t)
	manager := seedUser(t, "ada")

	_, err := GetTask(999, manager.ID)
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}
