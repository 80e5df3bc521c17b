package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WEBSITE_PORT", "ORCHESTRATOR_URL", "API_URL", "SITE_URL",
		"NEXT_PUBLIC_ORCHESTRATOR_URL", "NEXT_PUBLIC_API_URL", "NEXT_PUBLIC_SITE_URL",
		"CONTACT_DELIVERY", "TRUST_PROXY_HEADERS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":4002", cfg.Addr())
	assert.Equal(t, "http://localhost:3001", cfg.OrchestratorURL)
	assert.Equal(t, "http://localhost:5252", cfg.APIURL)
	assert.Equal(t, "https://www.openautomate.io", cfg.SiteURL)
	assert.Equal(t, "log", cfg.Contact.Delivery)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBSITE_PORT", ":8080")
	t.Setenv("ORCHESTRATOR_URL", "https://cloud.openautomate.io/")
	t.Setenv("API_URL", "https://api.openautomate.io")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://cloud.openautomate.io", cfg.OrchestratorURL)
	assert.Equal(t, "https://api.openautomate.io", cfg.APIURL)
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestLoad_NextPublicFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEXT_PUBLIC_ORCHESTRATOR_URL", "https://orchestrator.test")
	t.Setenv("NEXT_PUBLIC_SITE_URL", "https://site.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://orchestrator.test", cfg.OrchestratorURL)
	assert.Equal(t, "https://site.test", cfg.SiteURL)
}

func TestLoad_UnknownDelivery(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTACT_DELIVERY", "carrier-pigeon")

	_, err := Load()
	assert.Error(t, err)
}

func TestMailgunConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config MailgunConfig
		want   bool
	}{
		{"empty", MailgunConfig{}, false},
		{"domain only", MailgunConfig{Domain: "mg.example.com"}, false},
		{"key only", MailgunConfig{APIKey: "key"}, false},
		{"complete", MailgunConfig{Domain: "mg.example.com", APIKey: "key"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.IsConfigured())
		})
	}
}

func TestNewSite(t *testing.T) {
	cfg := &Config{SiteURL: "https://example.com", OrchestratorURL: "https://app.example.com"}

	site := NewSite(cfg)

	assert.Equal(t, "https://example.com", site.URL)
	assert.Equal(t, "https://example.com", site.Organization.URL)
	assert.Equal(t, "https://app.example.com", site.OrchestratorURL)
	require.NotEmpty(t, site.Pages)
	assert.True(t, site.Pages[0].IsHome())
	assert.Equal(t, "/", site.Pages[0].Path)
}
