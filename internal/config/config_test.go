package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"SearchBaseURL", cfg.SearchBaseURL, "https://en.wikipedia.org/w/api.php"},
		{"ArticleBaseURL", cfg.ArticleBaseURL, "https://en.wikipedia.org/?curid="},
		{"SearchLimit", cfg.SearchLimit, 10},
		{"SummaryProvider", cfg.SummaryProvider, "gemini"},
		{"GeminiModel", cfg.GeminiModel, "gemini-1.5-flash"},
		{"PrefsProvider", cfg.PrefsProvider, "memory"},
		{"HistoryProvider", cfg.HistoryProvider, "none"},
		{"NotifyProvider", cfg.NotifyProvider, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	originalPort := os.Getenv("PORT")
	originalLimit := os.Getenv("SEARCH_LIMIT")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("SEARCH_LIMIT", originalLimit)
	}()

	os.Setenv("PORT", "9090")
	os.Setenv("SEARCH_LIMIT", "25")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.SearchLimit != 25 {
		t.Errorf("expected search limit 25, got %d", cfg.SearchLimit)
	}
}

func TestLoadProviderOverrides(t *testing.T) {
	originalProvider := os.Getenv("SUMMARY_PROVIDER")
	defer func() {
		os.Setenv("SUMMARY_PROVIDER", originalProvider)
	}()

	os.Setenv("SUMMARY_PROVIDER", "openai")

	cfg := Load()

	if cfg.SummaryProvider != "openai" {
		t.Errorf("expected summary provider 'openai', got %s", cfg.SummaryProvider)
	}
}
