package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/config"
	"github.com/Lestat2Lioncourt/discord-bot/internal/database"
	"github.com/Lestat2Lioncourt/discord-bot/internal/database/postgres"
	"github.com/Lestat2Lioncourt/discord-bot/internal/diagnostics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/discord"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction/claudevision"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction/vision"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/poller"
	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
	"github.com/Lestat2Lioncourt/discord-bot/internal/scheduler"
	"github.com/Lestat2Lioncourt/discord-bot/internal/server"
	"github.com/Lestat2Lioncourt/discord-bot/internal/session"
	"github.com/Lestat2Lioncourt/discord-bot/internal/snapshot"
	"github.com/Lestat2Lioncourt/discord-bot/internal/subject"
	"github.com/Lestat2Lioncourt/discord-bot/internal/worker"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	workerCount     = 1
	workerQueueSize = 4

	shutdownTimeout = 10 * time.Second

	anthropicTimeout = 60 * time.Second
)

func main() {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.AppEnv,
		false,
	))

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories and services
	queueService := queue.NewService(postgres.NewCaptureRepository(pool))
	snapshotService := snapshot.NewService(postgres.NewSnapshotRepository(pool))
	subjectService := subject.NewService(postgres.NewSubjectRepository(pool))

	engine := buildEngine(cfg)
	slog.Info("Extraction engine selected", "engine", engine.Name())

	// Discord bot
	bot, err := discord.New(discord.Config{
		Token:          cfg.DiscordToken,
		AppID:          cfg.DiscordAppID,
		GuildID:        cfg.DiscordGuildID,
		AdminChannelID: cfg.AdminChannelID,
	}, &discord.Services{
		Queue:     queueService,
		Snapshots: snapshotService,
		Subjects:  subjectService,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	bot.SetupCommands()
	if err := bot.Start(); err != nil {
		slog.Error("Bot failed to start", "error", err)
		os.Exit(1)
	}
	defer bot.Stop()

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// the bot can still run with previously registered commands
		slog.Error("Failed to register commands", "error", err)
	}

	// Extraction worker
	sink := diagnostics.NewSink(cfg.DiagnosticsDir)
	extractionJob := worker.NewExtractionJob(queueService, engine, sink, cfg.ArchiveThreshold)

	workerPool := worker.NewPool(workerCount, workerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	jobScheduler := scheduler.New(workerPool)
	jobScheduler.Schedule(cfg.WorkerInterval, extractionJob)
	defer jobScheduler.Stop()

	// Validation sessions
	sessionService := session.NewService(queueService, snapshotService, subjectService, bot.Prompter, cfg.ValidationTimeout)
	completionPoller := poller.New(queueService, sessionService, cfg.PollInterval)
	completionPoller.Start(context.Background())
	defer completionPoller.Stop()

	// Operational HTTP surface
	srv := server.NewServer(cfg.HTTPPort, pool, queueService)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Wait for termination
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

// buildEngine selects the extraction engine from configuration.
func buildEngine(cfg *config.Config) extraction.Engine {
	resolver := catalog.NewResolver()

	if cfg.EngineStrategy == config.EngineClaudeVision {
		client := claudevision.NewClient(claudevision.ClientConfig{
			BaseURL: cfg.AnthropicBaseURL,
			APIKey:  cfg.AnthropicKey,
			Model:   cfg.AnthropicModel,
			Timeout: anthropicTimeout,
		})
		return claudevision.NewEngine(client, resolver)
	}

	return vision.NewEngine(resolver)
}
