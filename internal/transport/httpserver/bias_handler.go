package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biaslens/biaslens/internal/core"
	"go.uber.org/zap"
)

// BiasHandler handles the bias analysis endpoint
type BiasHandler struct {
	service *core.AnalysisService
	logger  *zap.Logger
}

// NewBiasHandler creates a new bias analysis handler
func NewBiasHandler(service *core.AnalysisService, logger *zap.Logger) *BiasHandler {
	return &BiasHandler{
		service: service,
		logger:  logger,
	}
}

// biasRequest is the request body for POST /api/bias
type biasRequest struct {
	Text string `json:"text"`
}

// Analyze handles POST /api/bias
func (h *BiasHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req biasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.service.AnalyzeText(r.Context(), req.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// respondError maps the analysis error taxonomy onto HTTP statuses:
// bad input is the caller's fault, a missing credential is a
// deployment fault, and a fully failed batch means the upstream gave
// us nothing usable
func (h *BiasHandler) respondError(w http.ResponseWriter, err error) {
	var validationErr *core.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, core.ErrMissingCredential):
		writeError(w, http.StatusInternalServerError, "server configuration error: "+err.Error())
	case errors.Is(err, core.ErrNoSentencesAnalyzed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		h.logger.Error("Unexpected analysis error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
