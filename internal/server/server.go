package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diegoclair/presenter-rotation/internal/config"
	"github.com/diegoclair/presenter-rotation/internal/handlers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	web    *handlers.WebHandler
	slack  *handlers.SlackHandler
}

// NewServer builds the HTTP server. slack may be nil, in which case the slash
// command route is not served.
func NewServer(cfg *config.Config, web *handlers.WebHandler, slack *handlers.SlackHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				slog.Error("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.Debug("Request handled", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	srv := &Server{
		echo:   e,
		config: cfg,
		web:    web,
		slack:  slack,
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port, "slack_commands", s.slack != nil)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP lets the server be exercised without a listener
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
