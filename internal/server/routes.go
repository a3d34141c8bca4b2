package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Rotation page and its actions
	s.echo.GET("/", s.web.HandleIndex)
	s.echo.POST("/swap", s.web.HandleSwap)
	s.echo.POST("/swap/cancel", s.web.HandleCancelSwap)
	s.echo.POST("/edit", s.web.HandleToggleEdit)
	s.echo.POST("/presenters", s.web.HandleAddPresenter)
	s.echo.POST("/presenters/:id/remove", s.web.HandleRemovePresenter)
	s.echo.POST("/settings", s.web.HandleSetDay)

	s.echo.GET("/api/schedule", s.web.HandleSchedule)

	// Slack slash command (signature verified by the handler)
	if s.slack != nil {
		s.echo.POST("/slack/commands", echo.WrapHandler(http.HandlerFunc(s.slack.HandleSlashCommand)))
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
