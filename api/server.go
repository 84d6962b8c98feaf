/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in the request log
  2. Logger:     One charmbracelet/log line per request
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Origins from config

ROUTE GROUPS:
  /api/projections   Compute
  /api/regions/*     State tax table
  /api/scenarios/*   Built-in scenarios
  /api/health        Liveness
  /*                 Static files (frontend)

STATIC FILE SERVING:
  Serves the built frontend from Options.StaticDir. Unknown paths fall
  back to index.html for client-side routing. Without a build, a small
  page lists the API endpoints.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ozkayhan/wat2/config"
)

// Options configures NewRouter.
type Options struct {
	CORSOrigins []string
	StaticDir   string
	Logger      *log.Logger
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/projections", h.CreateProjection)

		r.Route("/regions", func(r chi.Router) {
			r.Get("/", h.ListRegions)
			r.Get("/{name}", h.GetRegion)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/{id}", h.GetScenario)
			r.Get("/{id}/projection", h.GetScenarioProjection)
		})
	})

	r.Get("/*", staticHandler(opts.StaticDir))

	return r
}

// NewServer builds an http.Server from config.
func NewServer(cfg config.Config, logger *log.Logger) *http.Server {
	router := NewRouter(NewHandler(), Options{
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   cfg.StaticDir,
		Logger:      logger,
	})

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Serve runs srv until ctx is cancelled, then shuts down gracefully,
// waiting up to shutdownTimeout for active requests.
func Serve(ctx context.Context, srv *http.Server, logger *log.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func staticHandler(staticDir string) http.HandlerFunc {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			fileServer := http.FileServer(http.Dir(staticDir))
			return func(w http.ResponseWriter, r *http.Request) {
				fullPath := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))

				if _, err := os.Stat(fullPath); os.IsNotExist(err) {
					// SPA routing: serve index.html
					http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
					return
				}
				fileServer.ServeHTTP(w, r)
			}
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Work &amp; Travel Season Planner</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Work &amp; Travel Season Planner API</h1>
<p>No frontend build found. Set WAT2_STATIC_DIR to serve one.</p>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/projections - Project a season</li>
<li><a href="/api/regions">/api/regions</a> - State tax rates</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Built-in scenarios</li>
<li><a href="/api/health">/api/health</a> - Health</li>
</ul>
</body>
</html>`))
	}
}
