// Package server exposes the research engine over HTTP. It performs
// transport-level decoding only; authentication and authorization are
// the surrounding deployment's concern.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lexafrica/lexsearch/internal/errors"
	"github.com/lexafrica/lexsearch/internal/registry"
	"github.com/lexafrica/lexsearch/internal/research"
)

// Server wires the engine and registry into an HTTP router.
type Server struct {
	engine   *research.Engine
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates an HTTP server around the engine.
func New(engine *research.Engine, reg *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, registry: reg, logger: logger}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/v1/research", s.handleResearch)
	r.Get("/v1/sources", s.handleSources)
	r.Get("/healthz", s.handleHealth)
	return r
}

// errorResponse is the structured error body. Internal failures carry a
// generic message only; internal state never leaks to clients.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req research.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.engine.Research(r.Context(), &req)
	if err != nil {
		if errors.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: err.Error(),
				Code:  errors.GetCode(err),
				Field: errors.GetField(err),
			})
			return
		}
		s.logger.Error("research_failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sources": s.registry.All(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
