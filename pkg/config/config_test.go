package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flipped-1121/prometheus-notice/pkg/errors"
)

const validConfig = `
email:
  smtp_server: smtp.example.com
  smtp_port: 465
  from_name: Ops Reporter
  username: reporter@example.com
  password: secret
  use_tls: true
  recipients:
    - a@example.com
    - b@example.com
prometheus:
  url: http://prometheus:9090
report:
  cron: "0 8 * * *"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Run("loads a valid config", func(t *testing.T) {
		cfg, err := LoadConfigFromFile(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com", cfg.Email.SMTPServer)
		assert.Equal(t, 465, cfg.Email.SMTPPort)
		assert.True(t, cfg.Email.UseTLS)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Email.Recipients)
		assert.Equal(t, "http://prometheus:9090", cfg.Prometheus.URL)
		assert.Equal(t, "0 8 * * *", cfg.Report.Cron)
	})

	t.Run("missing file is an initialize error", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeInitializeError, errors.Code(err))
	})

	t.Run("malformed yaml is an initialize error", func(t *testing.T) {
		_, err := LoadConfigFromFile(writeConfig(t, "email: ["))
		require.Error(t, err)
		assert.Equal(t, errors.CodeInitializeError, errors.Code(err))
	})
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Email: EmailConfig{
				SMTPServer: "smtp.example.com",
				SMTPPort:   587,
				FromName:   "Ops Reporter",
				Username:   "reporter@example.com",
				Password:   "secret",
				Recipients: []string{"a@example.com"},
			},
			Prometheus: PrometheusConfig{URL: "http://prometheus:9090"},
		}
	}

	t.Run("complete config passes", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"smtp_server", func(c *Config) { c.Email.SMTPServer = "" }},
		{"smtp_port", func(c *Config) { c.Email.SMTPPort = 0 }},
		{"from_name", func(c *Config) { c.Email.FromName = "" }},
		{"username", func(c *Config) { c.Email.Username = "" }},
		{"password", func(c *Config) { c.Email.Password = "" }},
		{"recipients", func(c *Config) { c.Email.Recipients = nil }},
		{"prometheus url", func(c *Config) { c.Prometheus.URL = "" }},
	}
	for _, tc := range cases {
		t.Run("missing "+tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.CodeLackOfConfig, errors.Code(err))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Run("subject falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultSubject, EmailConfig{}.GetSubject())
		assert.Equal(t, "weekly usage", EmailConfig{Subject: "weekly usage"}.GetSubject())
	})

	t.Run("warning threshold defaults to 85", func(t *testing.T) {
		assert.Equal(t, 85.0, ReportConfig{}.GetWarningThreshold())
		v := 90.0
		assert.Equal(t, 90.0, ReportConfig{WarningThreshold: &v}.GetWarningThreshold())
	})

	t.Run("query timeout defaults to 10s", func(t *testing.T) {
		assert.Equal(t, 10*time.Second, PrometheusConfig{}.GetQueryTimeout())
		assert.Equal(t, 30*time.Second, PrometheusConfig{TimeoutSeconds: 30}.GetQueryTimeout())
	})
}
