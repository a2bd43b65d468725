package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelforge/agency-api/internal/api/handler"
	"github.com/pixelforge/agency-api/internal/api/middleware"
	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
	"github.com/pixelforge/agency-api/internal/core/service"
	"github.com/pixelforge/agency-api/internal/infrastructure/config"
	mongodb "github.com/pixelforge/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelforge/agency-api/internal/infrastructure/db/redis"
)

// ExternalPorts carries the adapters for services outside our process
// boundary: object storage, the identity provider, mail, and the chat
// completion backend.
type ExternalPorts struct {
	Storage   ports.FileStorage
	Verifier  ports.IdentityVerifier
	Mailer    ports.Mailer
	Completer ports.Completer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, ext ExternalPorts, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agency"))

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	projects := mongodb.NewProjectRepository(db)
	milestones := mongodb.NewMilestoneRepository(db)
	files := mongodb.NewFileRepository(db)
	notifications := mongodb.NewNotificationRepository(db)
	contacts := mongodb.NewContactRepository(db)
	chats := mongodb.NewChatRepository(db)

	// --- Redis adapters ---
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	views := redisdb.NewProjectViewCache(rdb)

	// --- Services ---
	notificationService := service.NewNotificationService(notifications, users, log)
	authService := service.NewAuthService(users, ext.Verifier, ext.Mailer, notificationService, log)
	projectService := service.NewProjectService(projects, milestones, files, views, notificationService, log)
	milestoneService := service.NewMilestoneService(milestones, projects, log)
	fileService := service.NewFileService(files, projects, ext.Storage, log)
	contactService := service.NewContactService(contacts, notificationService, log)
	chatService := service.NewChatService(chats, ext.Completer, log)

	// --- Handlers ---
	secureCookies := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.Session.Cookie, secureCookies)
	projectHandler := handler.NewProjectHandler(projectService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	fileHandler := handler.NewFileHandler(fileService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	adminHandler := handler.NewAdminHandler(authService, projectService, contactService)
	contactHandler := handler.NewContactHandler(contactService)
	chatHandler := handler.NewChatHandler(chatService)

	sessionMW := middleware.Session(sessions, cfg.Session.Cookie)
	clientOrAdmin := middleware.RBAC(domain.RoleClient, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/auth/firebase", authHandler.FederatedLogin)
	e.GET("/api/verify-email", authHandler.VerifyEmail)
	e.POST("/api/resend-verification", authHandler.ResendVerification)
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/api/chat", chatHandler.Send)

	// --- Authenticated routes ---
	e.POST("/api/logout", authHandler.Logout, sessionMW)
	e.GET("/api/user", authHandler.CurrentUser, sessionMW)

	dashboard := e.Group("/api/dashboard", sessionMW, clientOrAdmin)
	dashboard.GET("/projects", projectHandler.List)
	dashboard.POST("/projects", projectHandler.Create)
	dashboard.GET("/projects/:id", projectHandler.Get)
	dashboard.PUT("/projects/:id", projectHandler.Update)
	dashboard.DELETE("/projects/:id", projectHandler.Delete)
	dashboard.GET("/projects/:id/milestones", milestoneHandler.List)
	dashboard.POST("/projects/:id/milestones", milestoneHandler.Create)
	dashboard.PUT("/milestones/:id/status", milestoneHandler.UpdateStatus)
	dashboard.GET("/projects/:id/files", fileHandler.List)
	dashboard.POST("/projects/:id/files", fileHandler.Upload)
	dashboard.DELETE("/files/:id", fileHandler.Delete)
	dashboard.GET("/notifications", notificationHandler.List)
	dashboard.GET("/notifications/unread/count", notificationHandler.UnreadCount)
	dashboard.POST("/notifications/read/:id", notificationHandler.MarkRead)
	dashboard.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	admin := e.Group("/api/admin", sessionMW, adminOnly)
	admin.GET("/clients", adminHandler.ListClients)
	admin.POST("/clients", adminHandler.CreateClient)
	admin.GET("/projects", adminHandler.ListProjects)
	admin.PUT("/projects/:id", adminHandler.UpdateProject)
	admin.GET("/contacts", adminHandler.ListContacts)
	admin.POST("/contacts/read/:id", adminHandler.MarkContactRead)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
