package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/domain"
	"github.com/proteinmuffins/muffins/internal/handlers"
	appmiddleware "github.com/proteinmuffins/muffins/internal/middleware"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E             *echo.Echo
	Cfg           config.Provider
	signupHandler *handlers.SignupHandler
	packHandler   *handlers.PackHandler
}

// New creates a new Server instance serving the generated site from the
// configured output directory alongside the signup endpoint.
func New(cfg config.Provider, emailer domain.EmailSender, catalog []packs.PageConfig) *Server {
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)

	s := &Server{
		E:             e,
		Cfg:           cfg,
		signupHandler: handlers.NewSignupHandler(emailer, cfg.GetNotifyToEmail()),
		packHandler:   handlers.NewPackHandler(catalog, renderer),
	}
	s.RegisterRoutes()
	return s
}

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace. Errors that are already *echo.HTTPError keep echo's
// default rendering. Middleware such as the rate limiter may report a nil
// error after writing its own response; those are ignored.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if err == nil {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"stack_trace", string(debug.Stack()),
		)
		if c.Response().Committed {
			return
		}
		if err := c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{Error: "Internal server error"}); err != nil {
			slog.Error("Failed to write error response", "error", err)
		}
	}
}
