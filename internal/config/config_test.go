package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ModeAIOnly, cfg.AnswerMode)
	assert.Equal(t, 120000, cfg.ContextMaxChars)
	assert.False(t, cfg.Hybrid())
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ANSWER_MODE", "HYBRID")
	t.Setenv("CSV_CONTEXT_MAX_CHARS", "5000")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, ModeHybrid, cfg.AnswerMode)
	assert.True(t, cfg.Hybrid())
	assert.Equal(t, 5000, cfg.ContextMaxChars)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestFromEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("CSV_CONTEXT_MAX_CHARS", "not-a-number")
	t.Setenv("CORS_ORIGINS", " , ,")

	cfg := FromEnv()

	assert.Equal(t, 120000, cfg.ContextMaxChars)
	assert.Equal(t, Default().AllowedOrigins, cfg.AllowedOrigins)
}
