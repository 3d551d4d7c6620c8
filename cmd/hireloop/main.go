// Hireloop interview server — recruiter API, candidate endpoints, proctor
// pipeline, and the evaluation worker pool in one process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hireloop/hireloop/pkg/ai"
	"github.com/hireloop/hireloop/pkg/api"
	"github.com/hireloop/hireloop/pkg/cleanup"
	"github.com/hireloop/hireloop/pkg/coderunner"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/evaluation"
	"github.com/hireloop/hireloop/pkg/masking"
	"github.com/hireloop/hireloop/pkg/notify"
	"github.com/hireloop/hireloop/pkg/proctor"
	"github.com/hireloop/hireloop/pkg/queue"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/session"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/token"
	"github.com/hireloop/hireloop/pkg/version"
	"github.com/hireloop/hireloop/pkg/vision"
)

// resolvePodID determines the pod identifier for multi-replica claim
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func configureLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func main() {
	envFile := flag.String("env-file", ".env", "Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	configureLogging(cfg.Server.LogLevel)

	podID := resolvePodID()
	slog.Info("Starting hireloop",
		"version", version.Full(),
		"http_port", cfg.Server.Port,
		"pod_id", podID,
		"environment", cfg.Server.Environment)

	ctx := context.Background()

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

	// Release evaluation claims a previous crash of this pod left behind.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — orphan recovery also runs periodically
	}

	zone, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		slog.Error("Invalid interview timezone", "timezone", cfg.Schedule.Timezone, "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.Dir)
	if err != nil {
		slog.Error("Failed to open object store", "dir", cfg.Storage.Dir, "error", err)
		os.Exit(1)
	}

	warningsService := services.NewSystemWarningsService()
	masker := masking.NewService()
	notifier := notify.NewService(cfg.Notify)

	// Domain services.
	links := services.NewLinkService(dbClient.Client, token.NewCodec(cfg.Link.Secret),
		cfg.Link.EarlyGrace, cfg.Link.LateGrace)
	jobService := services.NewJobService(dbClient.Client)
	candidateService := services.NewCandidateService(dbClient.Client)
	slotService := services.NewSlotService(dbClient.Client, zone)
	interviewService := services.NewInterviewService(dbClient.Client, links, zone,
		notifier, cfg.Server.BaseURL, cfg.Server.IsDevelopment())
	sessionService := services.NewSessionService(dbClient.Client)
	questionService := services.NewQuestionService(dbClient.Client)
	responseService := services.NewResponseService(dbClient.Client)
	submissionService := services.NewCodeSubmissionService(dbClient.Client)
	warningService := services.NewWarningService(dbClient.Client)
	resultService := services.NewResultService(dbClient.Client)
	slog.Info("Services initialized")

	// AI gateway. Missing credentials are a degradation: the bank serves
	// question content and evaluation falls back to neutral scores.
	var provider ai.Provider
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		provider, err = ai.NewOpenAIProvider(key, cfg.AI)
		if err != nil {
			slog.Error("Failed to initialize AI provider", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("OPENAI_API_KEY not set — AI gateway runs on fallback content only")
		warningsService.AddWarning(services.WarningCategoryAIQuota,
			"AI provider not configured", "OPENAI_API_KEY is not set", "gateway")
	}
	gateway := ai.NewGateway(provider, cfg.AI, cfg.QuestionBank)

	// Vision sidecar. Lazy dial; absence degrades frame detectors only.
	var analyzer vision.Analyzer
	if cfg.Proctor.SidecarAddr != "" {
		grpcAnalyzer, err := vision.NewGRPCAnalyzer(cfg.Proctor.SidecarAddr)
		if err != nil {
			slog.Error("Failed to initialize vision client", "addr", cfg.Proctor.SidecarAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcAnalyzer.Close(); err != nil {
				slog.Error("Error closing vision client", "error", err)
			}
		}()
		analyzer = grpcAnalyzer
		slog.Info("Vision sidecar client initialized", "addr", cfg.Proctor.SidecarAddr)
	} else {
		slog.Warn("VISION_SIDECAR_ADDR not set — frame proctoring degraded")
		warningsService.AddWarning(services.WarningCategoryVision,
			"Vision sidecar not configured", "VISION_SIDECAR_ADDR is not set", "proctor")
	}

	sink := services.NewMonitorSink(warningService, sessionService)
	monitors := proctor.NewManager(cfg.Proctor, analyzer, gateway, masker, store, sink)

	runner := coderunner.NewRunner(cfg.Runner)
	if err := runner.Ready(); err != nil {
		slog.Warn("Code runner degraded", "error", err)
		warningsService.AddWarning(services.WarningCategorySandbox,
			"Sandbox unavailable", err.Error(), "coderunner")
	}

	engine := evaluation.NewEngine(dbClient.Client, gateway, cfg.AI.ChatModel)

	orchestrator := session.New(session.Deps{
		Sessions:    sessionService,
		Questions:   questionService,
		Responses:   responseService,
		Submissions: submissionService,
		Interviews:  interviewService,
		Jobs:        jobService,
		Results:     resultService,
		Links:       links,
		Gateway:     gateway,
		Monitor:     monitors,
		Runner:      runner,
		Evaluator:   engine,
		Store:       store,
		Config:      cfg.Session,
	})

	// Background lifecycles: evaluation pool, expiry sweeper, retention.
	pool := queue.NewPool(podID, dbClient.Client, cfg.Queue, engine)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start evaluation pool", "error", err)
		os.Exit(1)
	}

	sweeper := session.NewSweeper(cfg.Session, sessionService, monitors)
	sweeper.Start(ctx)

	retention := cleanup.NewService(cfg.Retention, store, warningsService)
	retention.Start(ctx)

	httpServer := api.NewServer(api.Deps{
		Config:       cfg,
		DB:           dbClient,
		Jobs:         jobService,
		Candidates:   candidateService,
		Slots:        slotService,
		Interviews:   interviewService,
		Sessions:     sessionService,
		Results:      resultService,
		Orchestrator: orchestrator,
		Gateway:      gateway,
		Monitors:     monitors,
		Runner:       runner,
		Pool:         pool,
		Warnings:     warningsService,
		Store:        store,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Hireloop started successfully", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Staged graceful shutdown: stop taking requests, then drain the
	// background lifecycles, then release monitors.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	retention.Stop()
	sweeper.Stop()

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer poolCancel()
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Evaluation pool stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unevaluated claims will be orphan-recovered")
	}

	monitors.StopAll()

	slog.Info("Shutdown complete")
}
