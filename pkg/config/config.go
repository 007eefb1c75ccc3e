package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/flipped-1121/prometheus-notice/pkg/errors"
	"github.com/flipped-1121/prometheus-notice/pkg/logger/conf"
)

const (
	DefaultSubject          = "Node Usage Report"
	DefaultWarningThreshold = 85.0
	DefaultQueryTimeout     = 10 * time.Second
)

type Config struct {
	Email      EmailConfig      `json:"email" yaml:"email"`
	Prometheus PrometheusConfig `json:"prometheus" yaml:"prometheus"`
	Report     ReportConfig     `json:"report" yaml:"report"`
	Log        *conf.LogConfig  `json:"log" yaml:"log"`
}

// EmailConfig contains SMTP settings and the recipient list.
type EmailConfig struct {
	SMTPServer string   `json:"smtp_server" yaml:"smtp_server"`
	SMTPPort   int      `json:"smtp_port" yaml:"smtp_port"`
	FromName   string   `json:"from_name" yaml:"from_name"`
	Username   string   `json:"username" yaml:"username"`
	Password   string   `json:"password" yaml:"password"`
	Subject    string   `json:"subject" yaml:"subject"`
	Recipients []string `json:"recipients" yaml:"recipients"`
	UseTLS     bool     `json:"use_tls" yaml:"use_tls"` // true = 465 SSL, false = 587 STARTTLS
}

// PrometheusConfig contains the metrics backend endpoint.
type PrometheusConfig struct {
	URL            string `json:"url" yaml:"url"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}

func (c PrometheusConfig) GetQueryTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultQueryTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ReportConfig contains report generation settings.
type ReportConfig struct {
	Cron             string   `json:"cron" yaml:"cron"`
	WarningThreshold *float64 `json:"warning_threshold" yaml:"warning_threshold"`
	AttachCSV        bool     `json:"attach_csv" yaml:"attach_csv"`
	CompanyName      string   `json:"company_name" yaml:"company_name"`
}

func (c ReportConfig) GetWarningThreshold() float64 {
	if c.WarningThreshold == nil {
		return DefaultWarningThreshold
	}
	return *c.WarningThreshold
}

func (c EmailConfig) GetSubject() string {
	if c.Subject == "" {
		return DefaultSubject
	}
	return c.Subject
}

func LoadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	return LoadConfigFromFile(configPath)
}

func LoadConfigFromFile(path string) (*Config, error) {
	configFile, err := os.Open(path)
	if err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("failed to open config file").
			WithError(err)
	}
	defer configFile.Close()

	cfg := &Config{}
	decoder := yaml.NewDecoder(configFile)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.NewError().
			WithCode(errors.CodeInitializeError).
			WithMessage("failed to parse config file").
			WithError(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every required field is present.
func (c *Config) Validate() error {
	missing := ""
	switch {
	case c.Email.SMTPServer == "":
		missing = "email.smtp_server"
	case c.Email.SMTPPort == 0:
		missing = "email.smtp_port"
	case c.Email.FromName == "":
		missing = "email.from_name"
	case c.Email.Username == "":
		missing = "email.username"
	case c.Email.Password == "":
		missing = "email.password"
	case len(c.Email.Recipients) == 0:
		missing = "email.recipients"
	case c.Prometheus.URL == "":
		missing = "prometheus.url"
	}
	if missing != "" {
		return errors.NewError().
			WithCode(errors.CodeLackOfConfig).
			WithMessagef("missing required config field: %s", missing)
	}
	return nil
}
