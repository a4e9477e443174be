// Package ui provides the web dashboard server.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/notifier"
	"github.com/zest-labs/zest/internal/ui/router"
)

// Server is the dashboard server.
type Server struct {
	store        *dataset.Store
	src          dataset.Source
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	previewLimit int
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the dashboard server.
type Config struct {
	Store         *dataset.Store
	Source        dataset.Source
	Port          int
	Watch         bool
	PreviewLimit  int
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	// Session cookie only: the filter selection must not outlive the
	// browser session.
	sessionStore.MaxAge(0)
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		store:        cfg.Store,
		src:          cfg.Source,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		previewLimit: cfg.PreviewLimit,
		logger:       logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the dashboard server and blocks until the context is
// cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.store, s.sessionStore, s.notifier, s.previewLimit)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Invalidate the dataset cache when a source file changes
	if s.watch {
		eg.Go(func() error {
			return dataset.Watch(egctx, s.store, s.src, s.logger, s.notifier.Broadcast)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
