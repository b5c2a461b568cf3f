// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Port is the HTTP listen port. Defaults to "3001".
	Port string

	// GinMode is passed to gin.SetMode ("debug", "release", "test").
	GinMode string

	// LogLevel is one of debug, info, warn, error. Defaults to "info".
	LogLevel string

	CORSOrigins []string

	// SupabaseDBURL is the Postgres connection string of the Supabase project.
	// Empty means plans and expenses live in memory only.
	SupabaseDBURL string

	LLM LLMConfig
}

type LLMConfig struct {
	Provider string
	// APIKey is the process-wide default; a caller-supplied key takes precedence.
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	cfg := Config{
		Port:          getEnvWithDefault("PORT", "3001"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:      strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		CORSOrigins:   splitCSV(getEnvWithDefault("CORS_ORIGINS", "*")),
		SupabaseDBURL: firstEnv("SUPABASE_DB_URL", "POSTGRES_URL"),
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnvWithDefault("LLM_PROVIDER", ProviderOpenAI)),
			APIKey:   firstEnv("LLM_API_KEY", "ALI_BAILIAN_API_KEY"),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Model:    os.Getenv("LLM_MODEL"),
		},
	}

	if cfg.LLM.Provider == ProviderGemini && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	switch cfg.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER %q: use %q or %q", cfg.LLM.Provider, ProviderOpenAI, ProviderGemini)
	}

	timeout, err := time.ParseDuration(getEnvWithDefault("LLM_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}
	cfg.LLM.Timeout = timeout

	return cfg, nil
}

// DurableConfigured reports whether a Supabase database is configured.
func (c Config) DurableConfigured() bool {
	return c.SupabaseDBURL != ""
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
