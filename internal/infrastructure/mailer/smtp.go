package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Pavel771123/nataliya/internal/config"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/wneessen/go-mail"
)

// SMTP opens a fresh connection per email so concurrent submissions never share client state.
type SMTP struct {
	host    string
	options []mail.Option
}

func NewSMTP(cfg config.Mail) *SMTP {
	options := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if cfg.Timeout > 0 {
		options = append(options, mail.WithTimeout(cfg.Timeout))
	}

	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTP{
		host:    cfg.Host,
		options: options,
	}
}

func (s *SMTP) Send(ctx context.Context, email *domain.Email) error {
	msg, err := NewMessage(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.options...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver email: %w", err)
	}

	return nil
}

// NewMessage renders the email as a plain text MIME message with its attachments.
func NewMessage(email *domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(email.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", email.From, err)
	}

	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipients %v: %w", email.To, err)
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	for _, file := range email.Attachments {
		var opts []mail.FileOption
		if file.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(file.ContentType)))
		}

		msg.AttachReadSeeker(file.Name, bytes.NewReader(file.Content), opts...)
	}

	return msg, nil
}
