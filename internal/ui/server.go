// Package ui provides the keeper analysis web server.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/gridironlabs/keeper/internal/ui/notifier"
	"github.com/gridironlabs/keeper/internal/ui/router"
	"golang.org/x/sync/errgroup"
)

// Server is the web server over the keeper analysis source.
type Server struct {
	source       *league.Source
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	dataDir      string
	logger       *slog.Logger
	notifier     *notifier.Notifier
	instance     string
}

// Config holds configuration for the web server.
type Config struct {
	Source        *league.Source
	Port          int
	Watch         bool
	DataDir       string
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a Server.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		source:       cfg.Source,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		dataDir:      cfg.DataDir,
		logger:       logger,
		notifier:     notifier.New(),
		instance:     uuid.NewString(),
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting keeper server",
		"addr", fmt.Sprintf("http://localhost:%d", s.port),
		"instance", s.instance)

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		router.Recoverer(s.logger),
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.source, s.sessionStore, s.notifier, s.logger, s.instance)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchDataFiles(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down keeper server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchDataFiles watches the data directory and pings connected pages
// when the draft or rankings files change.
func (s *Server) watchDataFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.dataDir); err != nil {
		s.logger.Error("failed to watch data directory", "dir", s.dataDir, "error", err)
		// Continue without watching; the server still serves requests.
		<-ctx.Done()
		return nil
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			ext := filepath.Ext(event.Name)
			if ext != ".json" && ext != ".csv" {
				continue
			}

			// Debounce editor save bursts.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("data file changed, notifying pages", "file", event.Name)
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
