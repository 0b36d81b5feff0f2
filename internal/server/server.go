package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/murphyqm/derelict/internal/page"
	"github.com/murphyqm/derelict/internal/site"
)

// Config holds server configuration.
type Config struct {
	Addr           string
	AllowAll       bool          // allow all CORS origins
	RequestTimeout time.Duration // per-request limit, 0 disables it
}

// Server serves the page, its assets and a JSON view of its content.
// Each page load composes a fresh page from the same definition.
type Server struct {
	cfg        Config
	def        page.Definition
	renderer   *site.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for def.
func New(cfg Config, def page.Definition) (*Server, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		def:      def,
		renderer: renderer,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex())
	r.Get("/style.css", handleAsset("text/css; charset=utf-8", site.Stylesheet()))
	r.Get("/script.js", handleAsset("text/javascript; charset=utf-8", site.Script()))
	r.Get("/charts/{id}.svg", s.handleChartSVG())

	r.Route("/api", func(r chi.Router) {
		r.Get("/page", s.handlePageJSON())
		r.Get("/charts/{id}", s.handleChartJSON())
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address. After Shutdown it
// returns http.ErrServerClosed.
func (s *Server) Start() error {
	log.Printf("derelict server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// until ctx is done. It is safe to call before Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Run serves until ctx is done, then shuts down, giving in-flight requests
// up to drain to finish. It returns once the server has fully stopped.
func (s *Server) Run(ctx context.Context, drain time.Duration) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("derelict server shutting down drain=%s", drain)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()
	err := s.Shutdown(shutdownCtx)
	if serveErr := <-errc; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
		err = serveErr
	}
	return err
}
