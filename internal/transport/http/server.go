package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"
	feedService "github.com/yamitzky/portfolio/internal/modules/feed/service"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/modules/page/render"
	"github.com/yamitzky/portfolio/internal/shared/config"
)

// PageProvider returns the current page for a variant
type PageProvider interface {
	Get(ctx context.Context, variant domain.Variant) (*domain.Page, error)
}

// Server serves the portfolio pages and the aggregated feeds
type Server struct {
	cfg        *config.Config
	pages      PageProvider
	renderer   *render.Renderer
	syndicator *feedService.Syndicator
	logger     *slog.Logger
	server     *http.Server
}

// New creates a new HTTP server
func New(cfg *config.Config, pages PageProvider, renderer *render.Renderer, syndicator *feedService.Syndicator) *Server {
	return &Server{
		cfg:        cfg,
		pages:      pages,
		renderer:   renderer,
		syndicator: syndicator,
		logger:     slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", s.handlePage(domain.VariantTop))
	mux.HandleFunc("GET /blog", s.handlePage(domain.VariantBlog))

	// Aggregated feeds
	mux.HandleFunc("GET /feed.xml", s.handleFeed(feedService.FormatRSS))
	mux.HandleFunc("GET /atom.xml", s.handleFeed(feedService.FormatAtom))
	mux.HandleFunc("GET /feed.json", s.handleFeed(feedService.FormatJSON))

	mux.HandleFunc("GET /api/articles", s.handleArticles)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handlePage(variant domain.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.pages.Get(r.Context(), variant)
		if err != nil {
			s.logger.Error("Error assembling page", "variant", variant, "error", err)
			http.Error(w, "Failed to build page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		s.setCacheHeaders(w)
		if err := s.renderer.Render(w, page); err != nil {
			s.logger.Error("Error rendering page", "variant", variant, "error", err)
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

func (s *Server) handleFeed(format feedService.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.pages.Get(r.Context(), domain.VariantBlog)
		if err != nil {
			s.logger.Error("Error assembling feed", "format", format, "error", err)
			http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
			return
		}

		body, err := s.syndicator.Render(page.Articles, page.GeneratedAt, format)
		if err != nil {
			s.logger.Error("Error rendering feed", "format", format, "error", err)
			http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		s.setCacheHeaders(w)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	variant := domain.VariantOrDefault(r.URL.Query().Get("page"))

	page, err := s.pages.Get(r.Context(), variant)
	if err != nil {
		s.logger.Error("Error assembling page", "variant", variant, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build page"})
		return
	}

	s.setCacheHeaders(w)
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.cfg.Revalidate))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
