// Package config collects the service configuration from environment
// variables, with flag overrides applied by the entrypoints.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Answer modes for the chat endpoint.
const (
	ModeAIOnly = "ai-only"
	ModeHybrid = "hybrid"
)

// Config is the full service configuration.
type Config struct {
	Port            string
	GeminiAPIKey    string
	AnswerMode      string
	ContextMaxChars int
	AllowedOrigins  []string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:            "8080",
		AnswerMode:      ModeAIOnly,
		ContextMaxChars: 120000,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
		},
	}
}

// FromEnv builds the configuration from defaults overridden by
// environment variables.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("ANSWER_MODE"))); v != "" {
		cfg.AnswerMode = v
	}
	if v := os.Getenv("CSV_CONTEXT_MAX_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ContextMaxChars = n
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}
	return cfg
}

// Hybrid reports whether rule-based shortcuts run before the model.
func (c Config) Hybrid() bool {
	return c.AnswerMode == ModeHybrid
}
