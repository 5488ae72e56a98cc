// Package mail implements the new-user notifier on top of an SMTP relay.
package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/pneumatic/guestbook/internal/core/domain"
	"github.com/pneumatic/guestbook/internal/infrastructure/config"
	"github.com/pneumatic/guestbook/internal/web"
)

const newUserTemplate = "new_user"

// SMTPNotifier composes the two-part new-user message and hands it to the
// configured relay. Delivery is best-effort; the caller never learns the
// outcome beyond the returned error, which the queue only logs.
type SMTPNotifier struct {
	client *gomail.Client
	cfg    config.MailConfig
	log    zerolog.Logger
}

// NewSMTPNotifier builds the relay client from configuration.
func NewSMTPNotifier(cfg config.MailConfig, log zerolog.Logger) (*SMTPNotifier, error) {
	opts := []gomail.Option{gomail.WithPort(cfg.Port)}
	if cfg.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPNotifier{client: client, cfg: cfg, log: log}, nil
}

// NotifyNewUser sends the "New User" notification to the admin recipient.
func (n *SMTPNotifier) NotifyNewUser(ctx context.Context, user *domain.User) error {
	text, html, err := web.RenderMail(newUserTemplate, user)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.Sender); err != nil {
		return fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(n.cfg.Admin); err != nil {
		return fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(n.cfg.SubjectPrefix + "New User")
	msg.SetBodyString(gomail.TypeTextPlain, text)
	msg.AddAlternativeString(gomail.TypeTextHTML, html)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", n.cfg.Admin, err)
	}

	n.log.Info().
		Str("username", user.Username).
		Str("recipient", n.cfg.Admin).
		Msg("new user notification sent")
	return nil
}
