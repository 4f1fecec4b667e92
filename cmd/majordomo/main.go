// Majordomo daemon — serves the HTTP API, runs the background
// conversation and task workers, and streams events over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/majordomo-io/majordomo/pkg/agent"
	"github.com/majordomo-io/majordomo/pkg/api"
	"github.com/majordomo-io/majordomo/pkg/cleanup"
	"github.com/majordomo-io/majordomo/pkg/config"
	"github.com/majordomo-io/majordomo/pkg/database"
	"github.com/majordomo-io/majordomo/pkg/events"
	"github.com/majordomo-io/majordomo/pkg/mcp"
	"github.com/majordomo-io/majordomo/pkg/queue"
	"github.com/majordomo-io/majordomo/pkg/secrets"
	"github.com/majordomo-io/majordomo/pkg/services"
	"github.com/majordomo-io/majordomo/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("MAJORDOMO_CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory if present
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded, continuing with existing environment",
			"path", envPath)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting majordomo", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential sealing
	box, err := secrets.NewBox(os.Getenv("MAJORDOMO_ENCRYPTION_KEY"))
	if err != nil {
		slog.Error("Failed to initialize encryption key",
			"env", "MAJORDOMO_ENCRYPTION_KEY", "error", err)
		os.Exit(1)
	}

	// 4. Streaming infrastructure
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)

	// 5. Domain services
	conversationService := services.NewConversationService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client, cfg.Worker.MinTaskInterval)
	integrationService := services.NewIntegrationService(dbClient.Client)
	notificationService := services.NewNotificationService(dbClient.Client, publisher)
	slog.Info("Services initialized")

	// 6. Agent harness
	assembler := agent.NewToolkitAssembler(cfg.SkillRegistry, cfg.MCPServerRegistry, box)
	runner := agent.NewCLIRunner(cfg.Agent)

	// 7. Chat executor and background workers
	chatExecutor := queue.NewChatTurnExecutor(
		cfg.Chat, cfg.Agent, cfg.MCPServerRegistry,
		conversationService, messageService, taskService, integrationService,
		assembler, runner, publisher,
	)

	conversationWorker := queue.NewConversationWorker(
		cfg.Worker, cfg.Agent,
		conversationService, messageService, integrationService, notificationService,
		assembler, runner, publisher,
	)
	conversationWorker.Start()

	taskWorker := queue.NewTaskWorker(
		cfg.Worker, cfg.Agent,
		taskService, conversationService, messageService, integrationService, notificationService,
		assembler, runner, publisher,
	)
	taskWorker.Start()
	slog.Info("Workers started", "max_concurrent", cfg.Worker.MaxConcurrent)

	// 8. MCP health monitor (only when servers are configured)
	var healthMonitor *mcp.HealthMonitor
	if cfg.Stats().MCPServers > 0 {
		healthMonitor = mcp.NewHealthMonitor(cfg.MCPServerRegistry)
		healthMonitor.Start(ctx)
		defer healthMonitor.Stop()
		slog.Info("MCP health monitor started")
	}

	// 9. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention,
		conversationService, notificationService, taskService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	deps := api.Deps{
		DB:            dbClient,
		Conversations: conversationService,
		Messages:      messageService,
		Tasks:         taskService,
		Notifications: notificationService,
		Integrations:  integrationService,
		Chat:          chatExecutor,
		Sealer:        box,
		WS:            connManager,
		Workers:       []api.WorkerReporter{conversationWorker, taskWorker},
	}
	if healthMonitor != nil {
		deps.MCP = healthMonitor
	}
	server := api.NewServer(cfg.System, deps)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Majordomo started", "port", cfg.System.Port)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain HTTP first so no new turns arrive,
	// then let in-flight chat turns and worker cycles finish.
	drainCtx, drainCancel := context.WithTimeout(ctx, 10*time.Second)
	defer drainCancel()
	if err := server.Shutdown(drainCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Worker.GracefulShutdownTimeout)
	defer shutdownCancel()

	stopped := make(chan struct{})
	go func() {
		chatExecutor.Stop()
		conversationWorker.Stop()
		taskWorker.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		slog.Info("Workers stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker shutdown timeout exceeded, exiting anyway")
	}

	slog.Info("Majordomo stopped")
}
