// Package api exposes the daemon's HTTP surface: conversation and task
// management, the synchronous chat endpoint, notifications, integration
// credentials, health, and the WebSocket event stream.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/majordomo-io/majordomo/ent"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/database"
	"github.com/majordomo-io/majordomo/pkg/events"
	"github.com/majordomo-io/majordomo/pkg/mcp"
	"github.com/majordomo-io/majordomo/pkg/models"
	"github.com/majordomo-io/majordomo/pkg/queue"
)

// ConversationService is the conversation surface the API needs.
// *services.ConversationService satisfies it.
type ConversationService interface {
	CreateConversation(ctx context.Context, req models.CreateConversationRequest) (*ent.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error)
	ListConversations(ctx context.Context, filters models.ConversationFilters) (*models.ConversationListResponse, error)
	ArchiveConversation(ctx context.Context, conversationID string) (*ent.Conversation, error)
}

// MessageService is the message surface the API needs.
// *services.MessageService satisfies it.
type MessageService interface {
	ListMessages(ctx context.Context, conversationID string, limit, offset int) (*models.MessageListResponse, error)
}

// TaskService is the task surface the API needs.
// *services.TaskService satisfies it.
type TaskService interface {
	ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error)
	GetTask(ctx context.Context, taskID string) (*ent.Task, error)
	PauseTask(ctx context.Context, taskID string) (*ent.Task, error)
	ResumeTask(ctx context.Context, taskID string) (*ent.Task, error)
	DeleteTask(ctx context.Context, taskID string) (*ent.Task, error)
}

// NotificationService is the notification surface the API needs.
// *services.NotificationService satisfies it.
type NotificationService interface {
	ListNotifications(ctx context.Context, filters models.NotificationFilters) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID string) (*ent.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

// IntegrationService is the integration surface the API needs.
// *services.IntegrationService satisfies it.
type IntegrationService interface {
	UpsertIntegration(ctx context.Context, req models.UpsertIntegrationRequest) (*ent.Integration, error)
	ListIntegrations(ctx context.Context, userID string) ([]*ent.Integration, error)
	DeactivateIntegration(ctx context.Context, userID, provider string) (*ent.Integration, error)
}

// ChatProcessor runs synchronous chat turns. *queue.ChatTurnExecutor
// satisfies it.
type ChatProcessor interface {
	ProcessTurn(ctx context.Context, conversationID, content string) (*models.ChatTurnResult, error)
}

// TokenSealer encrypts OAuth tokens before they reach storage.
// *secrets.Box satisfies it.
type TokenSealer interface {
	Encrypt(plaintext string) (string, error)
}

// WorkerReporter exposes a polling worker's health snapshot.
type WorkerReporter interface {
	Health() queue.WorkerHealth
}

// MCPReporter exposes MCP server probe results.
// *mcp.HealthMonitor satisfies it.
type MCPReporter interface {
	Statuses() []*mcp.HealthStatus
}

// Deps bundles everything the server serves from. DB, WS, Workers, and
// MCP may be nil/empty; the corresponding surfaces degrade gracefully.
type Deps struct {
	DB            *database.Client
	Conversations ConversationService
	Messages      MessageService
	Tasks         TaskService
	Notifications NotificationService
	Integrations  IntegrationService
	Chat          ChatProcessor
	Sealer        TokenSealer
	WS            *events.ConnectionManager
	Workers       []WorkerReporter
	MCP           MCPReporter
}

// Server is the HTTP server.
type Server struct {
	cfg  *config.SystemConfig
	deps Deps
	http *http.Server
}

// NewServer creates the API server.
func NewServer(cfg *config.SystemConfig, deps Deps) *Server {
	return &Server{cfg: cfg, deps: deps}
}

// Routes builds the gin engine with all routes and middleware attached.
func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(), recovery(), securityHeaders())

	r.GET("/health", s.handleHealth)
	r.GET("/ws", s.handleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/conversations", s.handleListConversations)
		api.POST("/conversations", s.handleCreateConversation)
		api.GET("/conversations/:id", s.handleGetConversation)
		api.POST("/conversations/:id/archive", s.handleArchiveConversation)
		api.GET("/conversations/:id/messages", s.handleListMessages)
		api.POST("/conversations/:id/messages", s.handleChatTurn)

		api.GET("/tasks", s.handleListTasks)
		api.GET("/tasks/:id", s.handleGetTask)
		api.POST("/tasks/:id/pause", s.handlePauseTask)
		api.POST("/tasks/:id/resume", s.handleResumeTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		api.GET("/notifications", s.handleListNotifications)
		api.POST("/notifications/:id/read", s.handleMarkRead)
		api.POST("/notifications/read-all", s.handleMarkAllRead)

		api.GET("/integrations", s.handleListIntegrations)
		api.PUT("/integrations/:provider", s.handleConnectIntegration)
		api.DELETE("/integrations/:provider", s.handleDisconnectIntegration)
	}

	return r
}

// Start begins serving and blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
