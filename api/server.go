package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/moh-adedamola/portfolio/config"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(site content.Content, c map[string]string) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router, err := newRouter(site, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// Links reads the page link settings from config.
func Links(c map[string]string) showcase.Links {
	return showcase.Links{
		Base: config.GetString(c, "SITE_BASE_PATH", "/"),
		Live: config.GetBool(c, "LIVE_UPDATES", true),
	}
}

func newRouter(site content.Content, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.startupTime.IsZero() {
		router.startupTime = time.Now()
	}

	links := Links(router.config)

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(SecurityHeaders)
	chiRouter.Use(middleware.Compress(5))

	// Without ACCEPTED_ORIGINS only same-origin requests are served.
	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	if len(acceptedOrigins) > 0 {
		chiRouter.Use(cors.Handler(cors.Options{
			AllowedOrigins: acceptedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "Datastar-Request"},
			MaxAge:         300,
		}))
	}

	handlers := initializeHandlers(site, links, router.startupTime)
	chiRouter.Get("/healthz", handlers.healthHandler.health())

	// The site lives under SITE_BASE_PATH, matching an exported copy
	// hosted below the domain root.
	if base := links.Home(); base != "/" {
		siteRouter := chi.NewRouter()
		setupRoutes(siteRouter, handlers, links)
		chiRouter.Mount(strings.TrimSuffix(base, "/"), siteRouter)
	} else {
		setupRoutes(chiRouter, handlers, links)
	}

	return chiRouter, nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

// Serve runs the server until ctx is cancelled, then shuts it down within
// shutdownTimeout. Long-lived requests see ctx through their own context.
func (s Server) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	eg, egctx := errgroup.WithContext(ctx)
	s.BaseContext = func(_ net.Listener) context.Context {
		return egctx
	}

	eg.Go(func() error {
		log.Info().Msgf("Server started on: %s", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		s.ShutdownGracefully(shutdownTimeout)
		return nil
	})

	return eg.Wait()
}
