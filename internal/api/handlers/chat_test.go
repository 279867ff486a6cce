package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise-app/finwise/internal/config"
	"github.com/finwise-app/finwise/internal/llm"
	"github.com/finwise-app/finwise/internal/store"
)

func chatRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChat_InvalidBody(t *testing.T) {
	h := NewChatHandler(store.New(), llm.NewClient(""), config.Default(), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Chat(rec, chatRequest("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_NoData(t *testing.T) {
	h := NewChatHandler(store.New(), llm.NewClient(""), config.Default(), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Chat(rec, chatRequest(`{"query":"total"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Please upload a CSV first.", decodeBody(t, rec)["response"])
}

func TestChat_AIOnlyWithoutKey(t *testing.T) {
	h := NewChatHandler(uploadedStore(t), llm.NewClient(""), config.Default(), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Chat(rec, chatRequest(`{"query":"where can I save money?"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["needs_key"])
	assert.Contains(t, body["response"], "GEMINI_API_KEY")
}

func TestChat_HybridRuleShortCircuitsWithoutModel(t *testing.T) {
	cfg := config.Default()
	cfg.AnswerMode = config.ModeHybrid
	h := NewChatHandler(uploadedStore(t), llm.NewClient(""), cfg, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Chat(rec, chatRequest(`{"query":"what is my total spending?"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	// -150 + 50000 - 2000 from the sample upload.
	assert.Equal(t, "Your total spending is 47850.00.", body["response"])
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "total", meta["rule"])
}

func TestChat_HybridFallsToModelGate(t *testing.T) {
	cfg := config.Default()
	cfg.AnswerMode = config.ModeHybrid
	h := NewChatHandler(uploadedStore(t), llm.NewClient(""), cfg, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Chat(rec, chatRequest(`{"query":"tell me something odd about my spending"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["needs_key"])
}
