package service

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/tkexclusiv/catalog_api/internal/config"
)

// Mailer delivers composed messages.
type Mailer interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// SMTPMailer sends through the configured SMTP relay, one connection per send.
type SMTPMailer struct {
	client *mail.Client
}

func NewSMTPMailer(cfg *config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create SMTP client: %w", err)
	}
	return &SMTPMailer{client: client}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg *mail.Msg) error {
	return m.client.DialAndSendWithContext(ctx, msg)
}
