package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultNotifyTo      = "muffs@proteinmuffins.com"
	DefaultSendGridURL   = "https://api.sendgrid.com/v3/mail/send"
	DefaultEmailProvider = "sendgrid"
	DefaultServerAddr    = ":8080"
	DefaultEmailTimeout  = 10 * time.Second
)

// Provider exposes configuration values to the rest of the application.
// Consumers depend on this interface so tests can supply their own values.
type Provider interface {
	GetEmailProvider() string
	GetSendGridAPIKey() string
	GetSendGridFromEmail() string
	GetSendGridAPIURL() string
	GetNotifyToEmail() string
	GetEmailTimeout() time.Duration
	GetServerAddr() string
	GetSiteOutDir() string
	GetPacksFile() string
}

// Config holds all configuration for the application.
type Config struct {
	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridAPIURL    string
	NotifyToEmail     string
	EmailTimeout      time.Duration
	ServerAddr        string
	SiteOutDir        string
	PacksFile         string
}

// New loads a .env file if one exists and then reads configuration from the
// environment. Missing SendGrid credentials are not fatal here: the signup
// endpoint reports them per request.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment without touching .env.
func FromEnv() *Config {
	cfg := &Config{
		EmailProvider:     getenv("EMAIL_PROVIDER", DefaultEmailProvider),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridAPIURL:    getenv("SENDGRID_API_URL", DefaultSendGridURL),
		NotifyToEmail:     getenv("NOTIFY_TO_EMAIL", DefaultNotifyTo),
		EmailTimeout:      DefaultEmailTimeout,
		ServerAddr:        getenv("SERVER_ADDR", DefaultServerAddr),
		SiteOutDir:        getenv("SITE_OUT_DIR", "."),
		PacksFile:         os.Getenv("PACKS_FILE"),
	}

	if raw := os.Getenv("EMAIL_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			slog.Warn("Ignoring invalid EMAIL_TIMEOUT", "value", raw)
		} else {
			cfg.EmailTimeout = d
		}
	}

	if cfg.EmailProvider == DefaultEmailProvider && (cfg.SendGridAPIKey == "" || cfg.SendGridFromEmail == "") {
		slog.Warn("SendGrid environment variables not configured; signups will fail until SENDGRID_API_KEY and SENDGRID_FROM_EMAIL are set")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetEmailProvider() string       { return c.EmailProvider }
func (c *Config) GetSendGridAPIKey() string      { return c.SendGridAPIKey }
func (c *Config) GetSendGridFromEmail() string   { return c.SendGridFromEmail }
func (c *Config) GetSendGridAPIURL() string      { return c.SendGridAPIURL }
func (c *Config) GetNotifyToEmail() string       { return c.NotifyToEmail }
func (c *Config) GetEmailTimeout() time.Duration { return c.EmailTimeout }
func (c *Config) GetServerAddr() string          { return c.ServerAddr }
func (c *Config) GetSiteOutDir() string          { return c.SiteOutDir }
func (c *Config) GetPacksFile() string           { return c.PacksFile }
