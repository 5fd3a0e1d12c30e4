// Package server exposes a running deck to viewers: a REST API mapping onto
// the deck operations, a websocket hub that fans out interpolated frames at
// display rate, and an offline asset gateway backed by the bbolt cache.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/radikals/radikal/internal/assets"
	"github.com/radikals/radikal/internal/deck"
)

const shutdownTimeout = 10 * time.Second

// Server ties the deck, hub, frame engine, and asset cache together behind
// one HTTP listener.
type Server struct {
	logger *slog.Logger
	deck   *deck.Deck
	hub    *Hub
	engine *Engine
	cache  *assets.Cache

	httpServer *http.Server
}

// Options configures New.
type Options struct {
	// Listen is the address to bind, e.g. "127.0.0.1:8460".
	Listen string

	// Cache, when set, serves /offline/ requests through the asset cache.
	Cache *assets.Cache

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// New builds a server for the deck. Call Run to start it.
func New(d *deck.Deck, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hub := NewHub(logger)
	s := &Server{
		logger: logger,
		deck:   d,
		hub:    hub,
		engine: NewEngine(d, hub, logger),
		cache:  opts.Cache,
	}

	s.httpServer = &http.Server{
		Addr:         opts.Listen,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(s.logger))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/document", s.handleGetDocument).Methods(http.MethodGet)
	api.HandleFunc("/slides", s.handleAddSlide).Methods(http.MethodPost)
	api.HandleFunc("/slides/{id}", s.handleUpdateSlide).Methods(http.MethodPatch)
	api.HandleFunc("/slides/{id}", s.handleDeleteSlide).Methods(http.MethodDelete)
	api.HandleFunc("/slides/{id}/duplicate", s.handleDuplicateSlide).Methods(http.MethodPost)
	api.HandleFunc("/slides/{id}/view", s.handleSlideView).Methods(http.MethodGet)
	api.HandleFunc("/slides/move", s.handleMoveSlide).Methods(http.MethodPost)
	api.HandleFunc("/sections", s.handleAddSection).Methods(http.MethodPost)
	api.HandleFunc("/sections/{id}", s.handleDeleteSection).Methods(http.MethodDelete)
	api.HandleFunc("/camera", s.handleSetCamera).Methods(http.MethodPut)
	api.HandleFunc("/undo", s.handleUndo).Methods(http.MethodPost)
	api.HandleFunc("/redo", s.handleRedo).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)

	r.HandleFunc("/ws", s.hub.ServeWS)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	if s.cache != nil {
		r.PathPrefix("/offline/").HandlerFunc(s.handleOffline)
	}
	return r
}

// handleOffline serves assets through the cache strategies. The destination
// hint comes from the Sec-Fetch-Dest header when the client sends one.
func (s *Server) handleOffline(w http.ResponseWriter, r *http.Request) {
	req := assets.Request{
		Method:      r.Method,
		URL:         r.URL.Path[len("/offline"):],
		Destination: assets.Destination(r.Header.Get("Sec-Fetch-Dest")),
		Navigation:  r.Header.Get("Sec-Fetch-Mode") == "navigate",
	}
	res, err := s.cache.Get(r.Context(), req)
	if err != nil {
		if errors.Is(err, assets.ErrNotIntercepted) {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.logger.Warn("asset fetch failed", "url", req.URL, "error", err)
		http.Error(w, "asset unavailable", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Write(res.Body)
}

// Run starts the hub, frame engine, and HTTP listener, then blocks until the
// context is cancelled and the listener has drained.
func (s *Server) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.hub.Run(runCtx)
	go s.engine.Run(runCtx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
