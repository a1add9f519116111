package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vimldn/invis"
	"github.com/vimldn/invis/catalog"
	"github.com/vimldn/invis/leads"
	"github.com/vimldn/invis/models"
)

// LeadSubmitter relays a lead to the intake endpoint
type LeadSubmitter interface {
	Submit(ctx context.Context, lead models.Lead) (*leads.Receipt, error)
}

// Server represents the API server
type Server struct {
	articles invis.ArticleLoader
	catalog  *catalog.Catalog
	leads    LeadSubmitter
	view     invis.ViewOptions
	logger   *slog.Logger

	addr        string
	server      *http.Server
	corsEnabled bool
}

// Config contains server configuration
type Config struct {
	Addr        string
	CORSEnabled bool
	View        invis.ViewOptions
	Logger      *slog.Logger
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		CORSEnabled: true,
		View:        invis.DefaultViewOptions(),
	}
}

// NewServer creates a new API server
func NewServer(config Config, articles invis.ArticleLoader, cat *catalog.Catalog, submitter LeadSubmitter) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		articles:    articles,
		catalog:     cat,
		leads:       submitter,
		view:        config.View,
		logger:      logger,
		addr:        config.Addr,
		corsEnabled: config.CORSEnabled,
	}

	s.server = &http.Server{
		Addr:         config.Addr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the API server
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.server.Shutdown(ctx)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
