package channel

import (
	"context"

	"github.com/flipped-1121/prometheus-notice/pkg/notification/model"
)

type Config struct {
	Email *EmailConfig `json:"email,omitempty" yaml:"email"`
}

type EmailConfig struct {
	SMTPHost string `json:"smtp_host" yaml:"smtp_host"`
	SMTPPort int    `json:"smtp_port" yaml:"smtp_port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	FromName string `json:"from_name" yaml:"from_name"`
	UseTLS   bool   `json:"use_tls" yaml:"use_tls"`
}

type Channel interface {
	Init(cfg Config) error
	Name() string
	Send(ctx context.Context, message *model.Message) error
}

// InitChannels initializes all notification channels from the configuration.
func InitChannels(ctx context.Context, conf *Config) (map[string]Channel, error) {
	channels := make(map[string]Channel)
	if conf.Email != nil {
		emailChannel := &EmailChannel{}
		if err := emailChannel.Init(*conf); err != nil {
			return nil, err
		}
		channels[emailChannel.Name()] = emailChannel
	}
	return channels, nil
}
