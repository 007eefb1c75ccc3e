package channel

import (
	"context"
	"fmt"
	"io"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/flipped-1121/prometheus-notice/pkg/errors"
	"github.com/flipped-1121/prometheus-notice/pkg/notification/model"
)

type EmailChannel struct {
	cfg *EmailConfig
}

// Name returns the name of the channel.
func (e *EmailChannel) Name() string {
	return model.ChannelEmail
}

// Init initializes the notification channel with the provided configuration.
func (e *EmailChannel) Init(cfg Config) error {
	if cfg.Email == nil {
		return fmt.Errorf("email config not provided")
	}
	e.cfg = cfg.Email
	return nil
}

// Send delivers one message over an authenticated SMTP session. There is no
// retry; a failed delivery fails the run.
func (e *EmailChannel) Send(ctx context.Context, message *model.Message) error {
	if e.cfg == nil {
		return fmt.Errorf("email channel not initialized")
	}
	if message == nil || message.Email == nil {
		return fmt.Errorf("message is nil")
	}

	msg := message.Email
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients provided for email")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.cfg.Username, e.cfg.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Title)
	m.SetBody("text/html", msg.Content)
	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	d := gomail.NewDialer(e.cfg.SMTPHost, e.cfg.SMTPPort, e.cfg.Username, e.cfg.Password)
	d.SSL = e.cfg.UseTLS // true = 465 SSL, false = 587 STARTTLS

	if err := d.DialAndSend(m); err != nil {
		return classifySendError(err)
	}

	return nil
}

// classifySendError separates credential rejections from every other SMTP
// failure.
func classifySendError(err error) error {
	if isAuthRejection(err) {
		return errors.NewError().
			WithCode(errors.CodeAuthError).
			WithMessage("smtp authentication rejected").
			WithError(err)
	}
	return errors.NewError().
		WithCode(errors.CodeDeliveryError).
		WithMessage("failed to send email").
		WithError(err)
}

func isAuthRejection(err error) bool {
	if tpErr, ok := err.(*textproto.Error); ok {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return true
		}
	}
	// net/smtp surfaces some auth rejections as plain errors.
	return strings.Contains(strings.ToLower(err.Error()), "auth")
}
