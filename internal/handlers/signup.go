package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/proteinmuffins/muffins/internal/domain"
	"github.com/proteinmuffins/muffins/internal/email"
	"github.com/proteinmuffins/muffins/internal/middleware"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidJSON      = "Invalid JSON body"
	msgEmailRequired    = "Email is required"
	msgNotConfigured    = "Email service not configured"
	msgSendFailed       = "Failed to send email"
	msgSent             = "Email sent successfully"
)

// SignupHandler forwards pack signups to the site owner by email.
type SignupHandler struct {
	sender    domain.EmailSender
	validator echo.Validator
	notifyTo  string
	now       func() time.Time
}

// NewSignupHandler creates a SignupHandler that notifies notifyTo.
func NewSignupHandler(sender domain.EmailSender, notifyTo string) *SignupHandler {
	return &SignupHandler{
		sender:    sender,
		validator: NewValidator(),
		notifyTo:  notifyTo,
		now:       time.Now,
	}
}

// WithClock replaces the time source used to stamp notifications.
func (h *SignupHandler) WithClock(now func() time.Time) *SignupHandler {
	h.now = now
	return h
}

// SendEmail handles /send-email. It is registered for every method so that
// non-POST requests get the JSON 405 envelope before the body is read.
func (h *SignupHandler) SendEmail(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: msgMethodNotAllowed})
	}

	var req domain.SignupRequest
	if err := decodeBody(c.Request().Body, &req); err != nil {
		logger.Debug("Rejected signup with invalid body", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidJSON})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmailRequired})
	}

	msg := req.Notification(h.notifyTo, h.now())
	if err := h.sender.Send(ctx, msg); err != nil {
		var upstream *email.UpstreamError
		switch {
		case errors.Is(err, domain.ErrEmailNotConfigured):
			logger.Error("SendGrid environment variables not configured")
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgNotConfigured})
		case errors.As(err, &upstream):
			logger.Error("SendGrid error",
				slog.Int("status", upstream.StatusCode),
				slog.String("body", upstream.Body))
		default:
			logger.Error("SendGrid request failed", slog.String("error", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgSendFailed})
	}

	logger.Info("Forwarded signup", slog.String("pack", req.PackName), slog.String("source", req.Source))
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: msgSent})
}

// decodeBody decodes exactly one JSON value from r. Anything after it other
// than whitespace is an error.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
