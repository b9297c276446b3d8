// Package server provides the HTTP server for the Mudra virtual desktop.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Desktop state endpoints need the running app
	if s.config.App != nil {
		s.mux.HandleFunc("/api/desktop", s.handleDesktop)
		s.mux.HandleFunc("/api/desktop/reset", s.handleDesktopReset)
		s.mux.HandleFunc("/api/tracking", s.handleTracking)
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App))
		s.mux.Handle("/api/state", NewStateHandler(s.config.App))
	}

	// Event log and settings endpoints need the store
	if s.config.Store != nil {
		s.mux.HandleFunc("/api/events", s.handleEvents)
		s.mux.HandleFunc("/api/settings", s.handleSettings)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	})
}

// handleDesktop handles GET requests to /api/desktop.
func (s *Server) handleDesktop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, s.config.App.Snapshot())
}

// handleDesktopReset handles POST requests to /api/desktop/reset.
func (s *Server) handleDesktopReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.config.App.ResetDesktop()
	writeJSON(w, s.config.App.Snapshot())
}

type trackingRequest struct {
	Enabled bool `json:"enabled"`
}

// handleTracking reads or updates whether gesture tracking is enabled.
func (s *Server) handleTracking(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]bool{"enabled": s.config.App.IsEnabled()})

	case http.MethodPost:
		var req trackingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		s.config.App.SetEnabled(req.Enabled)
		writeJSON(w, map[string]bool{"enabled": s.config.App.IsEnabled()})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type eventResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Detail    string `json:"detail"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	CreatedAt string `json:"created_at"`
}

// handleEvents handles GET requests to /api/events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	events, err := s.config.Store.Events().ListRecent(limit)
	if err != nil {
		http.Error(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = eventResponse{
			ID:        e.ID,
			Kind:      e.Kind,
			Detail:    e.Detail,
			X:         e.X,
			Y:         e.Y,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, out)
}

type settingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// handleSettings reads all settings or updates one.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		settings, err := s.config.Store.Settings().All()
		if err != nil {
			http.Error(w, "Failed to list settings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, settings)

	case http.MethodPost, http.MethodPut:
		var req settingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Key == "" {
			http.Error(w, "Key is required", http.StatusBadRequest)
			return
		}
		if err := s.config.Store.Settings().Set(req.Key, req.Value); err != nil {
			http.Error(w, "Failed to save setting", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{req.Key: req.Value})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
