package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignstudio "adforge/contexts/ad-production/campaign-studio"
	studiopostgres "adforge/contexts/ad-production/campaign-studio/adapters/postgres"
	studioworkers "adforge/contexts/ad-production/campaign-studio/application/workers"
	creativeagents "adforge/contexts/ad-production/creative-agents"
	openaimodel "adforge/contexts/ad-production/creative-agents/adapters/openai"
	staticmodel "adforge/contexts/ad-production/creative-agents/adapters/static"
	agentports "adforge/contexts/ad-production/creative-agents/ports"
	generationservice "adforge/contexts/ad-production/generation-service"
	genfreepik "adforge/contexts/ad-production/generation-service/adapters/freepik"
	genlocal "adforge/contexts/ad-production/generation-service/adapters/local"
	genmemory "adforge/contexts/ad-production/generation-service/adapters/memory"
	gensora "adforge/contexts/ad-production/generation-service/adapters/sora"
	"adforge/internal/platform/config"
	"adforge/internal/platform/db"
	"adforge/internal/platform/httpserver"
	"adforge/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so context code stays framework-agnostic.

type APIApp struct {
	server     *httpserver.Server
	generation generationservice.Module
	postgres   *db.Postgres
	logger     *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  studioworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := studiopostgres.NewRepository(pg.DB, logger)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	model, err := buildTextModel(cfg)
	if err != nil {
		return nil, err
	}
	agents := creativeagents.NewModule(creativeagents.Dependencies{
		Model:  model,
		Logger: logger,
	})

	webhookURL := ""
	if base := strings.TrimRight(strings.TrimSpace(cfg.WebhookBaseURL), "/"); base != "" {
		webhookURL = base + "/api/adforge/webhooks/freepik"
	}
	freepik := genfreepik.NewClient(cfg.FreepikAPIKey, webhookURL)
	sora := gensora.NewClient(cfg.OpenAIAPIKey)

	sink := &StudioSink{Logger: logger}
	generation := generationservice.NewModule(generationservice.Dependencies{
		ImagePrimary:  freepik,
		VideoPrimary:  freepik,
		VideoFallback: sora,
		Assets:        genlocal.NewStore(cfg.UploadDir),
		Sink:          sink,
		Clock:         studiopostgres.SystemClock{},
		ImageWorkers:  cfg.ImageWorkers,
		VideoWorkers:  cfg.VideoWorkers,
		Logger:        logger,
	})

	studio := campaignstudio.NewModule(campaignstudio.Dependencies{
		Campaigns:             repo,
		Offers:                repo,
		Avatars:               repo,
		Hooks:                 repo,
		Scripts:               repo,
		Keyframes:             repo,
		Transitions:           repo,
		Segments:              repo,
		Outbox:                repo,
		OutboxRepo:            repo,
		Director:              NewAgentDirector(agents),
		Media:                 NewMediaGenerator(generation.Manager),
		Clock:                 studiopostgres.SystemClock{},
		IDGenerator:           studiopostgres.UUIDGenerator{},
		AutoApproveStoryboard: cfg.AutoApproveStoryboard,
		Logger:                logger,
	})
	sink.Bind(studio.RecordTask, studio.Complete)

	server := httpserver.New(studio, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:     server,
		generation: generation,
		postgres:   pg,
		logger:     logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus, err := messaging.NewKafka(nil, logger)
	if err != nil {
		return nil, err
	}

	interval, err := time.ParseDuration(cfg.OutboxInterval)
	if err != nil || interval <= 0 {
		interval = 2 * time.Second
	}

	repo := studiopostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: studioworkers.OutboxRelay{
			Outbox:    repo,
			Publisher: bus,
			Clock:     studiopostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		pollInterval: interval,
		logger:       logger,
	}, nil
}

// InMemoryApp is the whole pipeline wired with deterministic agents,
// scripted providers and in-memory persistence. Tests drive the studio
// module and inspect the providers and sinks.
type InMemoryApp struct {
	Studio     campaignstudio.Module
	Generation generationservice.Module
	Primary    *genmemory.Provider
	Fallback   *genmemory.Provider
	Sink       *genmemory.Sink
	StudioSink *StudioSink
}

func BuildInMemory(logger *slog.Logger) *InMemoryApp {
	agents := creativeagents.NewInMemoryModule(logger)

	studioSink := &StudioSink{Logger: logger}
	recorder := genmemory.NewSink()
	generation, primary, fallback := generationservice.NewInMemoryModule(
		fanoutSink{studioSink, recorder},
		logger,
	)

	studio := campaignstudio.NewInMemoryModule(
		NewAgentDirector(agents),
		NewMediaGenerator(generation.Manager),
		logger,
	)
	studioSink.Bind(studio.RecordTask, studio.Complete)

	return &InMemoryApp{
		Studio:     studio,
		Generation: generation,
		Primary:    primary,
		Fallback:   fallback,
		Sink:       recorder,
		StudioSink: studioSink,
	}
}

func buildTextModel(cfg config.Config) (agentports.TextModel, error) {
	if cfg.StaticAgents || strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return staticmodel.NewModel(), nil
	}
	return openaimodel.NewModel(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
}

func (a *APIApp) Run(ctx context.Context) error {
	a.generation.Manager.Start(ctx)
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	a.generation.Manager.Close()
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
