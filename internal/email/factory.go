package email

import (
	"fmt"

	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/domain"
)

// NewEmailService creates and returns an email sender based on the configuration.
func NewEmailService(cfg config.Provider) (domain.EmailSender, error) {
	switch cfg.GetEmailProvider() {
	case "log":
		return NewLogSender(cfg.GetSendGridFromEmail()), nil
	case "sendgrid":
		return NewSendGridSender(
			cfg.GetSendGridAPIKey(),
			cfg.GetSendGridFromEmail(),
			cfg.GetSendGridAPIURL(),
			cfg.GetEmailTimeout(),
		), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
