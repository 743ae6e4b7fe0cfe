// Package http exposes a tool registry as a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/toolbelt/internal/logging"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/tools"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxBodyBytes bounds tool call request bodies.
const MaxBodyBytes = 1 << 20

// Server serves the registry over HTTP.
type Server struct {
	Registry *registry.Registry

	logger  *slog.Logger
	version string
	metrics http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version reported by /info and the OpenAPI document.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithMetrics mounts h (usually promhttp.Handler()) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for reg.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	s := &Server{
		Registry: reg,
		logger:   logging.NewNop(),
		version:  "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.json", s.GetOpenAPI)
	r.Get("/tools", s.ListTools)
	r.Get("/tools/{name}", s.GetTool)
	r.Post("/tools/{name}", s.CallTool)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "toolbelt-http",
		"version": s.version,
		"tools":   len(s.Registry.List()),
	})
}

// GetOpenAPI handles the GET /openapi.json request.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Document(s.Registry, s.version))
}

// ListTools handles the GET /tools request.
func (s *Server) ListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Registry.List())
}

// GetTool handles the GET /tools/{name} request.
func (s *Server) GetTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tool, ok := s.Registry.Get(name)
	if !ok {
		s.writeError(w, fmt.Errorf("%w: %s", registry.ErrToolNotFound, name))
		return
	}
	s.writeJSON(w, http.StatusOK, tool)
}

// CallTool handles the POST /tools/{name} request. The body is a JSON object of
// arguments; an empty body means no arguments.
func (s *Server) CallTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("CallTool: Invalid request body", "tool", name, "err", err)
		return
	}

	args := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("CallTool: Invalid request body", "tool", name, "err", err)
			return
		}
	}

	result, err := s.Registry.Execute(r.Context(), name, args)
	if err != nil {
		s.logger.Warn("CallTool failed", "tool", name, "err", err)
		s.writeError(w, err)
		return
	}

	s.logger.Debug("CallTool", "tool", name)
	s.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

// StatusFor maps tool errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrToolNotFound), errors.Is(err, ports.ErrPaletteNotFound):
		return http.StatusNotFound
	case errors.Is(err, tools.ErrInvalidArguments):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}

// writeJSON encodes v before writing the status, so an unencodable result becomes a 422
// instead of a success with an empty body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("response encode failed", "err", err)
		status = http.StatusUnprocessableEntity
		body, _ = json.Marshal(map[string]string{"error": fmt.Sprintf("result cannot be encoded as JSON: %v", err)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Warn("response write failed", "err", err)
	}
}
