package server

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/echotrace/echotrace/internal/config"
	"github.com/echotrace/echotrace/internal/handler"
	"github.com/echotrace/echotrace/internal/response"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
	recent *RecentStore
}

// New builds the Echo server and registers routes. app may be nil when the
// New Relic agent is disabled.
func New(cfg *config.Config, log zerolog.Logger, app *newrelic.Application) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.Logger())
	if app != nil {
		e.Use(nrecho.Middleware(app))
	}
	if len(cfg.Server.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Server.CORSOrigins,
		}))
	}

	recent := newRecentStore(cfg.Server.RecentCapacity)

	// Root route: GET and POST only. Other methods get Echo's default 405.
	hello := &handler.Hello{Log: log, Recorder: recent}
	e.GET("/", hello.Handle)
	e.POST("/", hello.Handle)

	e.GET("/healthz", func(c echo.Context) error {
		service := "echotrace"
		if cfg.Observability != nil && cfg.Observability.ServiceName != "" {
			service = cfg.Observability.ServiceName
		}
		return response.OK(c, map[string]any{
			"service": service,
			"env":     cfg.Primary.Env,
		}, "")
	})

	e.GET("/requests/recent", func(c echo.Context) error {
		list := recent.Recent()
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return response.BadRequest(c, "invalid limit", "query param limit must be a non-negative integer")
			}
			if n < len(list) {
				list = list[:n]
			}
		}
		return response.OK(c, map[string]any{"requests": list}, "")
	})

	return &Server{Echo: e, Config: cfg, recent: recent}
}

// Start starts the HTTP server. Blocks until the context is cancelled or the
// server fails. On context cancel, Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	s.Echo.Server.ReadTimeout = time.Duration(s.Config.Server.ReadTimeout) * time.Second
	s.Echo.Server.WriteTimeout = time.Duration(s.Config.Server.WriteTimeout) * time.Second
	s.Echo.Server.IdleTimeout = time.Duration(s.Config.Server.IdleTimeout) * time.Second
	addr := ":" + s.Config.Server.Port
	return s.Echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
