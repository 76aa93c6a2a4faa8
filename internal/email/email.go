package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/proteinmuffins/muffins/internal/domain"
)

// --- LogSender (for development) ---

// LogSender prints emails to the log instead of sending them.
type LogSender struct {
	senderAddress string
}

// NewLogSender creates a LogSender that reports from as the sender.
func NewLogSender(from string) *LogSender {
	return &LogSender{senderAddress: from}
}

// Send logs the email content.
func (s *LogSender) Send(ctx context.Context, msg domain.Message) error {
	slog.InfoContext(ctx, "Email sent (logged)",
		"from", s.senderAddress,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body)
	return nil
}

// --- SendGridSender (for production) ---

// SendGridSender sends emails through the SendGrid v3 mail/send API. Each
// call is a single attempt.
type SendGridSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

// NewSendGridSender creates a SendGridSender. Empty credentials are accepted
// here and reported as domain.ErrEmailNotConfigured by Send.
func NewSendGridSender(apiKey, from, endpoint string, timeout time.Duration) *SendGridSender {
	return &SendGridSender{
		apiKey:        apiKey,
		senderAddress: from,
		endpoint:      endpoint,
		client:        &http.Client{Timeout: timeout},
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPayload struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

// UpstreamError carries the provider's response when it rejects a message.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("sendgrid API returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return domain.ErrEmailUpstream }

// Send dispatches msg using the SendGrid API.
func (s *SendGridSender) Send(ctx context.Context, msg domain.Message) error {
	if s.apiKey == "" || s.senderAddress == "" {
		return domain.ErrEmailNotConfigured
	}

	from := msg.From
	if from == "" {
		from = s.senderAddress
	}
	payload := sendGridPayload{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: msg.To}}}},
		From:             sendGridAddress{Email: from},
		Subject:          msg.Subject,
		Content:          []sendGridContent{{Type: "text/plain", Value: msg.Body}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sendgrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to sendgrid: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	slog.InfoContext(ctx, "Successfully sent email via SendGrid", "to", msg.To, "subject", msg.Subject)
	return nil
}
