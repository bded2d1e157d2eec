package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/factory"
	"go.uber.org/zap"
)

// ChatHandler proxies chat requests to the configured LLM providers
type ChatHandler struct {
	registry *factory.ChatRegistry
	logger   *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(registry *factory.ChatRegistry, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		logger:   logger,
	}
}

// chatRequest is the request body for POST /api/chat
type chatRequest struct {
	Messages []core.ChatMessage `json:"messages"`
}

// Stream handles POST /api/chat. The response is a plain-text token
// stream flushed chunk by chunk; once the first chunk is written the
// status can no longer change, so later provider errors are only logged
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages are required")
		return
	}

	model := r.URL.Query().Get("model")
	if model == "" {
		model = h.registry.DefaultModel()
	}

	client, err := h.registry.ClientFor(model)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	started := false
	streamErr := client.StreamChat(r.Context(), model, req.Messages, func(chunk string) error {
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	if streamErr != nil {
		if !started {
			writeError(w, http.StatusBadGateway, streamErr.Error())
			return
		}
		h.logger.Warn("Chat stream ended with error after first token",
			zap.String("model", model),
			zap.Error(streamErr))
	}
}

// Models handles GET /api/models
func (h *ChatHandler) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models":  h.registry.Models(),
		"default": h.registry.DefaultModel(),
	})
}
