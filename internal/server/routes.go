package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/proteinmuffins/muffins/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.Any("/send-email", s.signupHandler.SendEmail, middleware.SignupRateLimiter())

	s.E.GET("/packs", s.packHandler.List)
	s.E.GET("/packs/:filename", s.packHandler.Preview)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Generated pages and their assets.
	s.E.Static("/", s.Cfg.GetSiteOutDir())
}
