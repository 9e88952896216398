// Headless extraction worker. Runs the same extraction job as the main
// process without the Discord bot or HTTP surface, so analysis throughput
// can be scaled independently.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/catalog"
	"github.com/Lestat2Lioncourt/discord-bot/internal/config"
	"github.com/Lestat2Lioncourt/discord-bot/internal/database"
	"github.com/Lestat2Lioncourt/discord-bot/internal/database/postgres"
	"github.com/Lestat2Lioncourt/discord-bot/internal/diagnostics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction/claudevision"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction/vision"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
	"github.com/Lestat2Lioncourt/discord-bot/internal/scheduler"
	"github.com/Lestat2Lioncourt/discord-bot/internal/worker"
)

const (
	dbMaxConnections = 5
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	workerCount     = 1
	workerQueueSize = 4

	anthropicTimeout = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName+"-worker",
		logger.DefaultVersion,
		cfg.AppEnv,
		false,
	))

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queueService := queue.NewService(postgres.NewCaptureRepository(pool))
	sink := diagnostics.NewSink(cfg.DiagnosticsDir)
	job := worker.NewExtractionJob(queueService, buildEngine(cfg), sink, cfg.ArchiveThreshold)

	workerPool := worker.NewPool(workerCount, workerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	jobScheduler := scheduler.New(workerPool)
	jobScheduler.Schedule(cfg.WorkerInterval, job)
	defer jobScheduler.Stop()

	slog.Info("Extraction worker running", "interval", cfg.WorkerInterval)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down...")
}

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
