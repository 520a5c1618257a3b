// Package server exposes the conversation engine and catalog over REST
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/LuckyNugget/YourFoodie/pkg/chat"
	"github.com/LuckyNugget/YourFoodie/pkg/db"
)

//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry
//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	registry Registry
	catalog  Catalog
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Registry manages conversation session lifecycles
type Registry interface {
	Create(sessionID string) (string, *chat.Engine)
	Get(sessionID string) (*chat.Engine, bool)
	Remove(sessionID string) bool
	Count() int
}

// Catalog provides read access to restaurants and events
type Catalog interface {
	GetAllRestaurants(ctx context.Context) ([]db.Restaurant, error)
	GetActiveEvents(ctx context.Context) ([]db.EventWithRestaurant, error)
	GetEventsByType(ctx context.Context, eventType string) ([]db.EventWithRestaurant, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, registry Registry, catalog Catalog, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		registry: registry,
		catalog:  catalog,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("yourfoodie", "LuckyNugget", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // chat messages are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /chat/start", s.chatStartHandler)
		r.HandleFunc("POST /chat/message", s.chatMessageHandler)
		r.HandleFunc("POST /chat/end", s.chatEndHandler)
		r.HandleFunc("GET /restaurants", s.restaurantsHandler)
		r.HandleFunc("GET /events", s.eventsHandler)
	})

	s.router.HandleFunc("GET /status", s.statusHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"sessions": s.registry.Count(),
		"time":     time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
