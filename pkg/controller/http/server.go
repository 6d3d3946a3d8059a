package http

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/beacon/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	sentryEnabled bool
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithSentry enables panic reporting to Sentry. sentry.Init must be called beforehand.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentryEnabled = enabled
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	releaseUC interfaces.ReleaseUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	openAPIHandler, err := newOpenAPIHandler(doc)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(RequestIDMiddleware)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.GetHead)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.sentryEnabled {
		if sentry.CurrentHub().Client() == nil {
			return nil, goerr.New("sentry is enabled but not initialized")
		}
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	router.NotFound(handleNotFound)
	router.MethodNotAllowed(handleMethodNotAllowed)

	// Health check
	router.Get("/health", handleHealth)

	// Release endpoints
	releaseHandler := NewReleaseHandler(releaseUC)
	router.Get("/api/latest-release", releaseHandler.HandleLatest)
	router.Get("/api/openapi.json", openAPIHandler)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
