package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load, NewSite),
)

const (
	defaultOrchestratorURL = "http://localhost:3001"
	defaultAPIURL          = "http://localhost:5252"
	defaultSiteURL         = "https://www.openautomate.io"
)

// Config holds the process configuration for the public website.
type Config struct {
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Orchestrator owns authentication; auth paths are redirected to it.
	OrchestratorURL string `env:"ORCHESTRATOR_URL"`

	// APIURL is the backend used by the outbound request helper.
	APIURL     string        `env:"API_URL"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`

	// SiteURL is the public origin used for canonical and Open Graph URLs.
	SiteURL string `env:"SITE_URL"`

	Contact ContactConfig

	// TrustProxyHeaders makes the server take the client address from
	// True-Client-IP, X-Real-IP or X-Forwarded-For. Enable it only behind a
	// proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ContactConfig controls where contact form submissions are delivered.
type ContactConfig struct {
	// Delivery is one of "log", "api" or "mailgun".
	Delivery string `env:"CONTACT_DELIVERY" envDefault:"log"`
	// Endpoint is resolved against APIURL when Delivery is "api".
	Endpoint string `env:"CONTACT_API_ENDPOINT" envDefault:"/api/contact"`
	// Inbox receives submissions when Delivery is "mailgun".
	Inbox string `env:"CONTACT_INBOX" envDefault:"contact@openautomate.io"`

	RequestsPerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	Burst             int `env:"CONTACT_RATE_BURST" envDefault:"3"`

	Mailgun MailgunConfig
}

// MailgunConfig holds Mailgun credentials for contact delivery.
type MailgunConfig struct {
	Domain    string `env:"MAILGUN_DOMAIN"`
	APIKey    string `env:"MAILGUN_API_KEY"`
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@openautomate.io"`
	FromName  string `env:"EMAIL_FROM_NAME" envDefault:"OpenAutomate Website"`
}

// IsConfigured reports whether the credentials needed to send are present.
func (m MailgunConfig) IsConfigured() bool {
	return m.Domain != "" && m.APIKey != ""
}

// Addr returns the listen address, always prefixed with ':'.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// IsProduction reports whether the process runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the configuration from the environment. The NEXT_PUBLIC_*
// names used by earlier deployments are accepted as fallbacks.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.OrchestratorURL = trimURL(firstNonEmpty(cfg.OrchestratorURL, os.Getenv("NEXT_PUBLIC_ORCHESTRATOR_URL"), defaultOrchestratorURL))
	cfg.APIURL = trimURL(firstNonEmpty(cfg.APIURL, os.Getenv("NEXT_PUBLIC_API_URL"), defaultAPIURL))
	cfg.SiteURL = trimURL(firstNonEmpty(cfg.SiteURL, os.Getenv("NEXT_PUBLIC_SITE_URL"), defaultSiteURL))

	if cfg.Port == "" {
		cfg.Port = "4002"
	}

	switch cfg.Contact.Delivery {
	case "log", "api", "mailgun":
	default:
		return nil, fmt.Errorf("unknown CONTACT_DELIVERY %q", cfg.Contact.Delivery)
	}

	return cfg, nil
}

// LoadEnvFiles loads .env and then .env.local from the working directory.
// Missing files are ignored. .env never overrides the process environment,
// .env.local overrides everything.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func trimURL(u string) string {
	return strings.TrimRight(u, "/")
}
