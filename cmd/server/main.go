package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticshandlers "github.com/teamhub/teamhub/internal/analytics/handlers"
	calendarhandlers "github.com/teamhub/teamhub/internal/calendar/handlers"
	calendarmodels "github.com/teamhub/teamhub/internal/calendar/models"
	"github.com/teamhub/teamhub/internal/common/database"
	commonhandlers "github.com/teamhub/teamhub/internal/common/handlers"
	"github.com/teamhub/teamhub/internal/common/health"
	"github.com/teamhub/teamhub/internal/common/middleware"
	filehandlers "github.com/teamhub/teamhub/internal/files/handlers"
	filemodels "github.com/teamhub/teamhub/internal/files/models"
	fileservices "github.com/teamhub/teamhub/internal/files/services"
	messagehandlers "github.com/teamhub/teamhub/internal/messaging/handlers"
	messagemodels "github.com/teamhub/teamhub/internal/messaging/models"
	messageservices "github.com/teamhub/teamhub/internal/messaging/services"
	notifhandlers "github.com/teamhub/teamhub/internal/notifications/handlers"
	notifmodels "github.com/teamhub/teamhub/internal/notifications/models"
	notifservices "github.com/teamhub/teamhub/internal/notifications/services"
	projecthandlers "github.com/teamhub/teamhub/internal/projects/handlers"
	projectmodels "github.com/teamhub/teamhub/internal/projects/models"
	"github.com/teamhub/teamhub/internal/realtime"
	taskhandlers "github.com/teamhub/teamhub/internal/tasks/handlers"
	taskmodels "github.com/teamhub/teamhub/internal/tasks/models"
	taskservices "github.com/teamhub/teamhub/internal/tasks/services"
	timehandlers "github.com/teamhub/teamhub/internal/timetracking/handlers"
	timemodels "github.com/teamhub/teamhub/internal/timetracking/models"
	usershandlers "github.com/teamhub/teamhub/internal/users/handlers"
	usersmodels "github.com/teamhub/teamhub/internal/users/models"
	"github.com/teamhub/teamhub/pkg/config"
	"github.com/teamhub/teamhub/pkg/logger"
	"github.com/teamhub/teamhub/pkg/metrics"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Server.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	hub := realtime.NewHub()
	hub.Start()
	defer hub.Stop()

	dispatcher := notifservices.NewDispatcher(notifservices.LogMailer{}, hub.SendToUser)
	taskservices.Configure(dispatcher, hub, realtime.ProjectChannel)
	messageservices.Configure(dispatcher, hub, realtime.ProjectChannel)

	fileStore, err := fileservices.NewStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize)
	if err != nil {
		logger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	router := buildRouter(cfg, hub, fileStore)

	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func migrate() error {
	return database.DB.AutoMigrate(
		&usersmodels.User{},
		&usersmodels.Session{},
		&projectmodels.Project{},
		&projectmodels.ProjectMember{},
		&taskmodels.Task{},
		&taskmodels.TaskProgress{},
		&timemodels.TimeEntry{},
		&calendarmodels.CalendarEvent{},
		&messagemodels.Message{},
		&notifmodels.Notification{},
		&notifmodels.EmailPreference{},
		&filemodels.File{},
	)
}

func buildRouter(cfg *config.Config, hub *realtime.Hub, fileStore *fileservices.Store) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORSMiddleware())
	router.Use(metrics.Middleware())

	healthHandler := commonhandlers.NewHealthHandler(health.NewHealthChecker(database.DB, version))
	router.GET("/health", healthHandler.Health)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/detailed", healthHandler.Detailed)
	router.GET("/metrics", metrics.Handler())

	fileHandler := filehandlers.NewFileHandler(fileStore)

	v1 := router.Group("/api/v1")

	// Public auth endpoints
	v1.POST("/auth/register", usershandlers.Register)
	v1.POST("/auth/login", usershandlers.Login)

	// Websocket endpoint authenticates via query token
	v1.GET("/ws", realtime.ServeWS(hub))

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/auth/logout", usershandlers.Logout)
		authed.GET("/users/me", usershandlers.GetCurrentUser)
		authed.GET("/users", usershandlers.ListUsers)

		authed.POST("/projects", projecthandlers.CreateProject)
		authed.GET("/projects", projecthandlers.ListProjects)
		authed.GET("/projects/:id", projecthandlers.GetProject)
		authed.PUT("/projects/:id", projecthandlers.UpdateProject)
		authed.DELETE("/projects/:id", projecthandlers.DeleteProject)
		authed.GET("/projects/:id/members", projecthandlers.ListMembers)
		authed.POST("/projects/:id/members", projecthandlers.AddMember)
		authed.DELETE("/projects/:id/members/:user_id", projecthandlers.RemoveMember)

		authed.POST("/projects/:id/tasks", taskhandlers.CreateTask)
		authed.GET("/projects/:id/tasks", taskhandlers.ListTasks)
		authed.GET("/tasks/mine", taskhandlers.MyTasks)
		authed.GET("/tasks/:id", taskhandlers.GetTask)
		authed.PUT("/tasks/:id", taskhandlers.UpdateTask)
		authed.DELETE("/tasks/:id", taskhandlers.DeleteTask)
		authed.POST("/tasks/:id/progress", taskhandlers.AddProgress)
		authed.GET("/tasks/:id/progress", taskhandlers.ListProgress)

		authed.POST("/time-entries", timehandlers.CreateEntry)
		authed.GET("/time-entries", timehandlers.ListMyEntries)
		authed.DELETE("/time-entries/:id", timehandlers.DeleteEntry)
		authed.GET("/projects/:id/time-entries", timehandlers.ListProjectEntries)
		authed.GET("/projects/:id/time-summary", timehandlers.ProjectTimeSummary)

		authed.POST("/projects/:id/events", calendarhandlers.CreateEvent)
		authed.GET("/projects/:id/events", calendarhandlers.ListEvents)
		authed.PUT("/events/:id", calendarhandlers.UpdateEvent)
		authed.DELETE("/events/:id", calendarhandlers.DeleteEvent)

		authed.POST("/projects/:id/messages", messagehandlers.SendProjectMessage)
		authed.GET("/projects/:id/messages", messagehandlers.ListProjectMessages)
		authed.POST("/messages/direct/:id", messagehandlers.SendDirectMessage)
		authed.GET("/messages/direct/:id", messagehandlers.ListDirectMessages)
		authed.DELETE("/messages/:id", messagehandlers.DeleteMessage)

		authed.GET("/notifications", notifhandlers.ListNotifications)
		authed.POST("/notifications/:id/read", notifhandlers.MarkRead)
		authed.POST("/notifications/read-all", notifhandlers.MarkAllRead)
		authed.PUT("/notifications/preferences", notifhandlers.SetEmailPreference)

		authed.POST("/projects/:id/files", fileHandler.Upload)
		authed.GET("/projects/:id/files", fileHandler.List)
		authed.GET("/files/:id", fileHandler.Download)
		authed.DELETE("/files/:id", fileHandler.Delete)

		authed.GET("/analytics/projects/:id", analyticshandlers.ProjectAnalytics)
		authed.GET("/analytics/projects/:id/team-performance", analyticshandlers.TeamPerformance)
		authed.GET("/analytics/projects/:id/timeline", analyticshandlers.Timeline)
	}

	return router
}
