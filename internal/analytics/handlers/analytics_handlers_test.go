package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	analyticsmodels "github.com/teamhub/teamhub/internal/analytics/models"
	calendarmodels "github.com/teamhub/teamhub/internal/calendar/models"
	"github.com/teamhub/teamhub/internal/common/database"
	"github.com/teamhub/teamhub/internal/common/middleware"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
	usersmodels "github.com/teamhub/teamhub/internal/users/models"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&usersmodels.User{},
		&usersmodels.Session{},
		&projectmodels.Project{},
		&projectmodels.ProjectMember{},
		&taskmodels.Task{},
		&taskmodels.TaskProgress{},
		&calendarmodels.CalendarEvent{},
	))
	database.DB = db

	router := gin.New()
	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthRequired())
	authed.GET("/analytics/projects/:id", ProjectAnalytics)
	authed.GET("/analytics/projects/:id/team-performance", TeamPerformance)
	authed.GET("/analytics/projects/:id/timeline", Timeline)
	return router
}

func seedUser(t *testing.T, name string) (*usersmodels.User, string) {
	t.Helper()
	user := &usersmodels.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(user).Error)

	token := name + "-token"
	session := &usersmodels.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, database.DB.Create(session).Error)
	return user, token
}

func seedProject(t *testing.T, manager *usersmodels.User) *projectmodels.Project {
	t.Helper()
	project := &projectmodels.Project{Name: "Apollo", ManagerID: manager.ID, Status: "active"}
	require.NoError(t, database.DB.Create(project).Error)
	require.NoError(t, database.DB.Create(&projectmodels.ProjectMember{
		ProjectID: project.ID, UserID: manager.ID, Role: "manager",
	}).Error)
	return project
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func TestProjectAnalyticsEndpoint(t *testing.T) {
	router := setupTest(t)
	user, token := seedUser(t, "ada")
	project := seedProject(t, user)

	yesterday := time.Now().AddDate(0, 0, -1)
	tasks := []*taskmodels.Task{
		{ProjectID: project.ID, Title: "Design", AssigneeID: &user.ID, Status: taskmodels.StatusCompleted},
		{ProjectID: project.ID, Title: "Build", AssigneeID: &user.ID, Status: taskmodels.StatusInProgress},
		{ProjectID: project.ID, Title: "Ship", Status: taskmodels.StatusTodo, DueDate: &yesterday},
	}
	for _, task := range tasks {
		require.NoError(t, database.DB.Create(task).Error)
	}
	require.NoError(t, database.DB.Create(&taskmodels.TaskProgress{
		TaskID: tasks[1].ID, UserID: user.ID, ProgressPercent: 40, HoursWorked: 3,
	}).Error)

	w := doGet(router, "/api/v1/analytics/projects/1", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp analyticsmodels.ProjectAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, project.ID, resp.Project.ID)
	assert.Equal(t, "Apollo", resp.Project.Name)
	assert.Equal(t, 3, resp.Project.Stats.TotalTasks)
	assert.Equal(t, 1, resp.Project.Stats.CompletedTasks)
	assert.Equal(t, 1, resp.Project.Stats.OverdueTasks)
	assert.Equal(t, 1, resp.Project.Stats.UnassignedTasks)
	assert.Equal(t, 33, resp.Project.Stats.CompletionPercentage)

	require.Len(t, resp.TeamWorkload, 1)
	assert.Equal(t, 2, resp.TeamWorkload[0].TaskStats.Total)
	assert.Equal(t, 50, resp.TeamWorkload[0].TaskStats.CompletionRate)
	assert.Equal(t, 1.5, resp.TeamWorkload[0].TimeTracking.AvgHoursPerTask)

	require.Len(t, resp.ProductivityTrend, 7)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, resp.ProductivityTrend[6].Date)
	assert.Equal(t, 1, resp.ProductivityTrend[6].ProgressUpdates)

	require.NotEmpty(t, resp.Alerts)
	assert.Equal(t, "Overdue Tasks", resp.Alerts[0].Title)
}

func TestProjectAnalyticsNotFound(t *testing.T) {
	router := setupTest(t)
	_, token := seedUser(t, "ada")

	w := doGet(router, "/api/v1/analytics/projects/42", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectAnalyticsForbiddenForNonMembers(t *testing.T) {
	router := setupTest(t)
	manager, _ := seedUser(t, "ada")
	seedProject(t, manager)
	_, outsiderToken := seedUser(t, "eve")

	w := doGet(router, "/api/v1/analytics/projects/1", outsiderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamPerformanceEndpoint(t *testing.T) {
	router := setupTest(t)
	user, token := seedUser(t, "ada")
	project := seedProject(t, user)

	task := &taskmodels.Task{ProjectID: project.ID, Title: "Build", AssigneeID: &user.ID, Status: taskmodels.StatusCompleted}
	require.NoError(t, database.DB.Create(task).Error)
	require.NoError(t, database.DB.Create(&taskmodels.TaskProgress{
		TaskID: task.ID, UserID: user.ID, ProgressPercent: 100, HoursWorked: 2,
	}).Error)

	w := doGet(router, "/api/v1/analytics/projects/1/team-performance", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Performance []analyticsmodels.MemberPerformance `json:"performance"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Performance, 1)

	metrics := resp.Performance[0].Metrics
	assert.Equal(t, 1, metrics.TasksAssigned)
	assert.Equal(t, 1, metrics.TasksCompleted)
	assert.Equal(t, 2.0, metrics.TotalHoursLogged)
	assert.Equal(t, 100, metrics.AvgCompletionRate)
	// completionRate 100, activity 10, time 4: 50 + 3 + 0.8 -> 54
	assert.Equal(t, 54, metrics.ProductivityScore)
}

func TestTimelineEndpoint(t *testing.T) {
	router := setupTest(t)
	user, token := seedUser(t, "ada")
	project := seedProject(t, user)

	task := &taskmodels.Task{ProjectID: project.ID, Title: "Build", Status: taskmodels.StatusTodo}
	require.NoError(t, database.DB.Create(task).Error)

	w := doGet(router, "/api/v1/analytics/projects/1/timeline", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp analyticsmodels.ProjectTimeline
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Timeline, 1)
	assert.Equal(t, "Build", resp.Timeline[0].Title)
	assert.Equal(t, "Unassigned", resp.Timeline[0].Assignee)
	assert.Equal(t, "#3B82F6", resp.Timeline[0].Color)
	assert.Equal(t,
		resp.Timeline[0].StartDate.AddDate(0, 0, 7),
		resp.Timeline[0].EndDate,
	)
}

func TestAnalyticsRequiresAuth(t *testing.T) {
	router := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/projects/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
