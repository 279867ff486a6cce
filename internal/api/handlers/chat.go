package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/finwise-app/finwise/internal/api/middleware"
	"github.com/finwise-app/finwise/internal/chat"
	"github.com/finwise-app/finwise/internal/config"
	"github.com/finwise-app/finwise/internal/domain"
	"github.com/finwise-app/finwise/internal/llm"
	"github.com/finwise-app/finwise/internal/store"
)

const notConfiguredMessage = "AI is not configured yet. Set GEMINI_API_KEY to enable AI answers.\n" +
	"Meanwhile, try: 'What is my total spending?', 'How much on Food?', " +
	"'Show my highest transaction', or 'How much in September 2025?'."

// ChatHandler answers natural-language questions about the live set,
// either via deterministic rules or by delegating to Gemini with the
// transaction context embedded in the prompt.
type ChatHandler struct {
	current *store.Current
	client  *llm.Client
	cfg     config.Config
	log     zerolog.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(current *store.Current, client *llm.Client, cfg config.Config, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{current: current, client: client, cfg: cfg, log: log}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set, context, ok := h.current.Snapshot()
	if !ok || set.Len() == 0 {
		middleware.WriteJSON(w, http.StatusOK, map[string]any{
			"response": "Please upload a CSV first.",
		})
		return
	}

	if h.cfg.Hybrid() {
		h.chatHybrid(w, r, req.Query, set, context)
		return
	}
	h.chatAIOnly(w, r, req.Query, set, context)
}

// chatAIOnly always asks the model, with savings-aware helper summaries
// and a local fallback when the call fails on a savings question.
func (h *ChatHandler) chatAIOnly(w http.ResponseWriter, r *http.Request, query string, set *domain.Set, context string) {
	if !h.client.Configured() {
		middleware.WriteJSON(w, http.StatusOK, map[string]any{
			"response":  notConfiguredMessage,
			"needs_key": true,
			"meta":      map[string]any{"mode": config.ModeAIOnly, "rule": "no-llm"},
		})
		return
	}

	context, truncated := llm.TruncateContext(context, h.cfg.ContextMaxChars)

	helper := ""
	savings := chat.SavingsIntent(query)
	if savings {
		helper = chat.Summaries(set)
	}

	prompt := llm.BuildChatPrompt(context, helper, query, truncated)
	answer, model, err := h.client.Ask(r.Context(), prompt)
	meta := map[string]any{"mode": config.ModeAIOnly, "rule": "llm"}
	switch {
	case err == nil:
		answer = llm.CleanAnswer(answer)
		meta["model"] = model
	case savings:
		h.log.Warn().Err(err).Msg("LLM call failed, using local savings fallback")
		answer = chat.LocalSuggestions(set)
		meta["error"] = true
		meta["fallback"] = "local-savings"
	default:
		h.log.Warn().Err(err).Msg("LLM call failed")
		answer = fmt.Sprintf("LLM error: %v.", err)
		meta["error"] = true
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"response": answer,
		"meta":     meta,
	})
}

// chatHybrid tries the deterministic rules first and only then asks the
// model with the plain data prompt.
func (h *ChatHandler) chatHybrid(w http.ResponseWriter, r *http.Request, query string, set *domain.Set, context string) {
	if answer, matched := chat.MatchRule(query, set); matched {
		middleware.WriteJSON(w, http.StatusOK, answer)
		return
	}

	if !h.client.Configured() {
		middleware.WriteJSON(w, http.StatusOK, map[string]any{
			"response":  notConfiguredMessage,
			"needs_key": true,
			"meta":      map[string]any{"rule": "no-llm"},
		})
		return
	}

	prompt := llm.BuildDataPrompt(context, query)
	answer, model, err := h.client.Ask(r.Context(), prompt)
	meta := map[string]any{"mode": config.ModeHybrid, "rule": "llm"}
	if err != nil {
		h.log.Warn().Err(err).Msg("LLM call failed")
		answer = fmt.Sprintf("LLM error: %v. Try asking for 'total' to use a local calculation.", err)
		meta["error"] = true
	} else {
		meta["model"] = model
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"response": answer,
		"meta":     meta,
	})
}
