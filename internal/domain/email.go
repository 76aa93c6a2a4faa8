package domain

import "context"

// Message is a plain-text email ready to hand to a provider.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

// EmailSender defines the interface for sending emails. This allows for
// different implementations (e.g., for logging, SendGrid).
type EmailSender interface {
	Send(ctx context.Context, msg Message) error
}
