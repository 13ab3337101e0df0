package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"wikiglance/internal/config"
	"wikiglance/internal/history"
	"wikiglance/internal/logger"
	"wikiglance/internal/notify"
	"wikiglance/internal/orchestrator"
	"wikiglance/internal/prefs"
	"wikiglance/internal/search"
	"wikiglance/internal/summary"
	"wikiglance/internal/upstream"
)

// Deps bundles common runtime dependencies for the server.
type Deps struct {
	Config       config.Config
	Log          *slog.Logger
	Search       search.Client
	Summary      summary.Client
	Orchestrator *orchestrator.Orchestrator
	Prefs        prefs.Store
	Recorder     history.Recorder
	Notifier     notify.Notifier
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	httpClient := upstream.NewHTTPClient()
	searchClient := search.NewWikipedia(log, httpClient, cfg.SearchBaseURL)

	summaryClient, err := buildSummary(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize summary client: %w", err)
	}
	prefStore, err := buildPrefs(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize preference store: %w", err)
	}
	recorder, err := buildRecorder(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize history recorder: %w", err)
	}
	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	orch := orchestrator.New(log, searchClient, summaryClient, orchestrator.Options{
		Limit:               cfg.SearchLimit,
		SearchErrorMessage:  cfg.SearchErrorMessage,
		SummaryErrorMessage: cfg.SummaryErrorMessage,
		Notifier:            notifier,
		Recorder:            recorder,
	})

	return Deps{
		Config:       cfg,
		Log:          log,
		Search:       searchClient,
		Summary:      summaryClient,
		Orchestrator: orch,
		Prefs:        prefStore,
		Recorder:     recorder,
		Notifier:     notifier,
	}, nil
}

func buildSummary(cfg config.Config, log *slog.Logger) (summary.Client, error) {
	switch cfg.SummaryProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when SUMMARY_PROVIDER=gemini")
		}
		client, err := summary.NewGemini(log, upstream.NewHTTPClient(), cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini summary client", "model", cfg.GeminiModel)
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when SUMMARY_PROVIDER=openai")
		}
		client, err := summary.NewOpenAI(log, cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI summary client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid SUMMARY_PROVIDER: %s (valid options: gemini, openai)", cfg.SummaryProvider)
	}
}

func buildPrefs(cfg config.Config, log *slog.Logger) (prefs.Store, error) {
	switch cfg.PrefsProvider {
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when PREFS_PROVIDER=redis")
		}
		store, err := prefs.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis preference store: %w", err)
		}
		log.Info("using Redis preference store")
		return store, nil
	case "memory":
		log.Info("using in-memory preference store; display mode will not survive restarts")
		return prefs.NewMemory(), nil
	default:
		return nil, fmt.Errorf("invalid PREFS_PROVIDER: %s (valid options: memory, redis)", cfg.PrefsProvider)
	}
}

func buildRecorder(cfg config.Config, log *slog.Logger) (history.Recorder, error) {
	switch cfg.HistoryProvider {
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when HISTORY_PROVIDER=postgres")
		}
		rec, err := history.NewPostgres(cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres recorder: %w", err)
		}
		log.Info("recording rounds to Postgres")
		return rec, nil
	case "none":
		return history.Noop{}, nil
	default:
		return nil, fmt.Errorf("invalid HISTORY_PROVIDER: %s (valid options: none, postgres)", cfg.HistoryProvider)
	}
}

func buildNotifier(cfg config.Config, log *slog.Logger) (notify.Notifier, error) {
	switch cfg.NotifyProvider {
	case "nats":
		if cfg.QueueURL == "" {
			return nil, fmt.Errorf("QUEUE_URL is required when NOTIFY_PROVIDER=nats")
		}
		nc, err := nats.Connect(cfg.QueueURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		log.Info("publishing round events to NATS")
		return notify.NewNATS(log, nc), nil
	case "none":
		return notify.Noop{}, nil
	default:
		return nil, fmt.Errorf("invalid NOTIFY_PROVIDER: %s (valid options: none, nats)", cfg.NotifyProvider)
	}
}
