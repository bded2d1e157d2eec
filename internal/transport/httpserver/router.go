package httpserver

import (
	"net/http"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/factory"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RouterDeps holds the dependencies the router wires into handlers
type RouterDeps struct {
	AnalysisService *core.AnalysisService
	ChatRegistry    *factory.ChatRegistry
	StaticDir       string
	Logger          *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(deps *RouterDeps) http.Handler {
	r := mux.NewRouter()

	biasHandler := NewBiasHandler(deps.AnalysisService, deps.Logger)
	chatHandler := NewChatHandler(deps.ChatRegistry, deps.Logger)

	r.Use(recoveryMiddleware(deps.Logger))
	r.Use(loggingMiddleware(deps.Logger))
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/bias", biasHandler.Analyze).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat", chatHandler.Stream).Methods("POST", "OPTIONS")
	api.HandleFunc("/models", chatHandler.Models).Methods("GET", "OPTIONS")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Two-panel chat UI
	if deps.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(deps.StaticDir)))
	}

	return r
}
