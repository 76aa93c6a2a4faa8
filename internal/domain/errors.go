package domain

import "errors"

// Sentinel errors shared by the email senders and the HTTP layer.
var (
	ErrEmailNotConfigured = errors.New("email service not configured")
	ErrEmailUpstream      = errors.New("email provider rejected the request")
)
