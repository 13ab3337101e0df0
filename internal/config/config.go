package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration. The core treats these as opaque
// constants injected at construction; nothing reads the environment later.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Search index service
	SearchBaseURL  string `env:"SEARCH_BASE_URL" envDefault:"https://en.wikipedia.org/w/api.php"`
	ArticleBaseURL string `env:"ARTICLE_BASE_URL" envDefault:"https://en.wikipedia.org/?curid="`
	SearchLimit    int    `env:"SEARCH_LIMIT" envDefault:"10"`

	// Summary service
	SummaryProvider string `env:"SUMMARY_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	GeminiBaseURL   string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel     string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	OpenAIKey       string `env:"OPENAI_API_KEY"`
	LLMModel        string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// User-facing degradation strings
	SearchErrorMessage  string `env:"SEARCH_ERROR_MESSAGE" envDefault:"Search is unavailable right now. Please try again."`
	SummaryErrorMessage string `env:"SUMMARY_ERROR_MESSAGE" envDefault:"No summary available for this query."`

	// Preference store
	PrefsProvider string `env:"PREFS_PROVIDER" envDefault:"memory"` // "memory" or "redis"
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Round history
	HistoryProvider string `env:"HISTORY_PROVIDER" envDefault:"none"` // "none" or "postgres"
	DBURL           string `env:"DB_URL"`

	// State-change notifications
	NotifyProvider string `env:"NOTIFY_PROVIDER" envDefault:"none"` // "none" or "nats"
	QueueURL       string `env:"QUEUE_URL"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
